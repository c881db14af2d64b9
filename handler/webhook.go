package handler

import (
	"net/http"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/pkg/logger"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/service"
	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	documents *service.DocumentStore
}

func NewWebhookHandler(documents *service.DocumentStore) *WebhookHandler {
	return &WebhookHandler{documents: documents}
}

type AIAnalysisWebhook struct {
	DocumentID string `json:"document_id"`
	Analysis   any    `json:"analysis"`
}

// HandleAIAnalysis receives asynchronous AI analysis results and attaches
// them to the referenced document when it exists
func (h *WebhookHandler) HandleAIAnalysis(c *gin.Context) {
	var payload AIAnalysisWebhook
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	ctx := c.Request.Context()
	logger.Info(ctx, "received AI analysis webhook", "document_id", payload.DocumentID)

	if payload.DocumentID != "" && payload.Analysis != nil {
		if !h.documents.UpdateAnalysis(payload.DocumentID, payload.Analysis) {
			logger.Warn(ctx, "webhook referenced unknown document", "document_id", payload.DocumentID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
