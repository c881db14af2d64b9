package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/model"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CompanyHandler struct {
	store *service.CompanyStore
}

func NewCompanyHandler(store *service.CompanyStore) *CompanyHandler {
	return &CompanyHandler{store: store}
}

type CreateCompanyRequest struct {
	CompanyName                 string           `json:"company_name" binding:"required"`
	EntityType                  string           `json:"entity_type"`
	JurisdictionOfIncorporation string           `json:"jurisdiction_of_incorporation" binding:"required"`
	IncorporationDate           string           `json:"incorporation_date" binding:"required"`
	RegisteredAddress           string           `json:"registered_address" binding:"required"`
	IndustrySector              string           `json:"industry_sector"`
	ShareholdersInfo            []map[string]any `json:"shareholders_info"`
	DirectorsInfo               []map[string]any `json:"directors_info"`
}

// Create creates a new company record
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	entityType := req.EntityType
	if entityType == "" {
		entityType = "subsidiary"
	}

	company := &model.Company{
		ID:                          uuid.New().String(),
		CompanyName:                 req.CompanyName,
		EntityType:                  entityType,
		JurisdictionOfIncorporation: req.JurisdictionOfIncorporation,
		IncorporationDate:           req.IncorporationDate,
		RegisteredAddress:           req.RegisteredAddress,
		CompanyStatus:               model.CompanyStatusActive,
		IndustrySector:              req.IndustrySector,
		ShareholdersInfo:            req.ShareholdersInfo,
		DirectorsInfo:               req.DirectorsInfo,
		CreatedAt:                   time.Now(),
	}
	h.store.Save(company)

	c.JSON(http.StatusCreated, company)
}

// List returns companies with offset pagination
func (h *CompanyHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	companies, total := h.store.List(skip, limit)

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"total":     total,
		"skip":      skip,
		"limit":     limit,
	})
}

// Get returns a company by ID
func (h *CompanyHandler) Get(c *gin.Context) {
	id := c.Param("id")

	company := h.store.Get(id)
	if company == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	c.JSON(http.StatusOK, company)
}

// Delete removes a company record
func (h *CompanyHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if h.store.Get(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}

// SeedSampleCompany inserts the demo record served before any real data exists
func SeedSampleCompany(store *service.CompanyStore) {
	store.Save(&model.Company{
		ID:                          uuid.New().String(),
		CompanyName:                 "Acme Corporation Ltd",
		EntityType:                  "subsidiary",
		JurisdictionOfIncorporation: "United Kingdom",
		IncorporationDate:           "2020-01-15",
		RegisteredAddress:           "123 Business Street, London, EC2V 8AS",
		CompanyStatus:               model.CompanyStatusActive,
		IndustrySector:              "Technology",
		ShareholdersInfo: []map[string]any{
			{"name": "John Smith", "percentage": 60},
			{"name": "Jane Doe", "percentage": 40},
		},
		DirectorsInfo: []map[string]any{
			{"name": "John Smith", "title": "CEO"},
			{"name": "Jane Doe", "title": "CTO"},
		},
		CreatedAt: time.Now(),
	})
}
