package model

import (
	"time"
)

// Company represents a corporate entity managed by the practice
type Company struct {
	ID                          string           `json:"id"`
	CompanyName                 string           `json:"company_name"`
	EntityType                  string           `json:"entity_type"`
	JurisdictionOfIncorporation string           `json:"jurisdiction_of_incorporation"`
	IncorporationDate           string           `json:"incorporation_date"`
	RegisteredAddress           string           `json:"registered_address"`
	CompanyStatus               string           `json:"company_status"`
	IndustrySector              string           `json:"industry_sector,omitempty"`
	ShareholdersInfo            []map[string]any `json:"shareholders_info,omitempty"`
	DirectorsInfo               []map[string]any `json:"directors_info,omitempty"`
	CreatedAt                   time.Time        `json:"created_at"`
	UpdatedAt                   time.Time        `json:"updated_at"`
}

// Company status constants
const (
	CompanyStatusActive    = "active"
	CompanyStatusDissolved = "dissolved"
	CompanyStatusDormant   = "dormant"
)
