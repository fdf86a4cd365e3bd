package handlers

import (
	"errors"
	"net/http"
	"strconv"

	listingRepo "homematch/database/repository/listing"
	"homematch/models"
	"homematch/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ListingHandler exposes listing browse and admin endpoints.
type ListingHandler struct {
	repo listingRepo.ListingRepository
}

// NewListingHandler creates a ListingHandler backed by the given repository.
func NewListingHandler(repo listingRepo.ListingRepository) *ListingHandler {
	return &ListingHandler{repo: repo}
}

// GetListingsHandler returns listings, optionally filtered by query params
// (type, country, minPrice, maxPrice, limit).
func (h *ListingHandler) GetListingsHandler(c *gin.Context) {
	criteria := listingRepo.ListingSearchCriteria{
		Type:    c.Query("type"),
		Country: c.Query("country"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MinPrice = v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MaxPrice = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			criteria.Limit = v
		}
	}

	listings, err := h.repo.Search(criteria)
	if err != nil {
		utils.GetLogger().Error("Listing search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch listings", err.Error())
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "count": len(listings)})
}

// GetListingByIDHandler returns a single listing by its ID.
func (h *ListingHandler) GetListingByIDHandler(c *gin.Context) {
	id := c.Param("id")
	listing, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Listing not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch listing", err.Error())
		return
	}
	c.JSON(http.StatusOK, listing)
}

// CreateListingHandler inserts a new listing (admin only).
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid listing payload", err.Error())
		return
	}
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}

	if err := h.repo.Create(&listing); err != nil {
		utils.GetLogger().Error("Failed to create listing", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create listing", err.Error())
		return
	}
	c.JSON(http.StatusCreated, listing)
}

// DeleteListingHandler removes a listing by its ID (admin only).
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete listing", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
}
