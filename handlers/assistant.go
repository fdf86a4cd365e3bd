package handlers

import (
	"net/http"
	"strconv"

	"homematch/models"
	"homematch/services/assistant"
	"homematch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the conversational assistant over HTTP.
type AssistantHandler struct {
	svc assistant.AssistantService
}

// NewAssistantHandler creates an AssistantHandler backed by the given service.
func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// ChatHandler processes one chat turn.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	resp, err := h.svc.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to process chat turn", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MoreResultsHandler pages through the ranked listings of the last search.
func (h *AssistantHandler) MoreResultsHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing session id", "")
		return
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid offset", err.Error())
			return
		}
		offset = parsed
	}

	resp, err := h.svc.MoreResults(c.Request.Context(), sessionID, offset)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch more results", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResetSessionHandler discards the stored conversation state for a session.
func (h *AssistantHandler) ResetSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing session id", "")
		return
	}

	if err := h.svc.ResetSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset", "session_id": sessionID})
}
