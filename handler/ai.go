package handler

import (
	"net/http"
	"time"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/service"
	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	assistant *service.AssistantService
}

func NewAIHandler(assistant *service.AssistantService) *AIHandler {
	return &AIHandler{assistant: assistant}
}

type AnalyzeContractRequest struct {
	ContractText string `json:"contract_text" binding:"required"`
	ContractType string `json:"contract_type"`
}

type GenerateContractRequest struct {
	ContractType string         `json:"contract_type" binding:"required"`
	Parties      []string       `json:"parties" binding:"required"`
	KeyTerms     map[string]any `json:"key_terms"`
}

type AssessRiskRequest struct {
	Description string         `json:"description" binding:"required"`
	Context     map[string]any `json:"context"`
}

type ResearchRequest struct {
	Query string `json:"query" binding:"required"`
}

type ChatRequest struct {
	Message string         `json:"message" binding:"required"`
	Context map[string]any `json:"context"`
}

// AnalyzeContract runs an AI contract review
func (h *AIHandler) AnalyzeContract(c *gin.Context) {
	var req AnalyzeContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	analysis := h.assistant.AnalyzeContract(c.Request.Context(), req.ContractText)
	c.JSON(http.StatusOK, analysis)
}

// GenerateContract drafts a contract document
func (h *AIHandler) GenerateContract(c *gin.Context) {
	var req GenerateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	draft := h.assistant.GenerateDraft(c.Request.Context(), req.ContractType, req.Parties, req.KeyTerms)

	c.JSON(http.StatusOK, gin.H{
		"contract_draft": draft,
		"contract_type":  req.ContractType,
		"parties":        req.Parties,
		"generated_at":   time.Now().UTC().Format(time.RFC3339),
	})
}

// AssessRisk evaluates the legal risk of a situation
func (h *AIHandler) AssessRisk(c *gin.Context) {
	var req AssessRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	riskContext := req.Context
	if riskContext == nil {
		riskContext = map[string]any{}
	}

	assessment := h.assistant.AssessRisk(c.Request.Context(), req.Description, riskContext)

	c.JSON(http.StatusOK, gin.H{
		"risk_assessment": assessment,
		"assessed_at":     time.Now().UTC().Format(time.RFC3339),
	})
}

// Research answers a legal research query
func (h *AIHandler) Research(c *gin.Context) {
	var req ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := h.assistant.Research(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, result)
}

// Chat answers a free-form assistant message. Each call is independent;
// there is no conversation memory.
func (h *AIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := h.assistant.Research(c.Request.Context(), req.Message)

	response := result.Summary
	if response == "" {
		response = "I'm here to help with legal questions."
	}

	c.JSON(http.StatusOK, gin.H{
		"response":    response,
		"confidence":  0.85,
		"suggestions": result.Recommendations,
	})
}
