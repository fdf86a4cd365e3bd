package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Assistant endpoints
	ChatHandler         gin.HandlerFunc
	MoreResultsHandler  gin.HandlerFunc
	ResetSessionHandler gin.HandlerFunc

	// Listing endpoints
	GetListingsHandler    gin.HandlerFunc
	GetListingByIDHandler gin.HandlerFunc
	CreateListingHandler  gin.HandlerFunc
	DeleteListingHandler  gin.HandlerFunc
}
