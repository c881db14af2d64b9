package model

import (
	"time"
)

// Document represents an uploaded legal document
type Document struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	DocumentType string    `json:"document_type"`
	MatterID     string    `json:"matter_id,omitempty"`
	OwnerEmail   string    `json:"owner_email"`
	ObjectName   string    `json:"object_name"`
	DownloadURL  string    `json:"download_url,omitempty"`
	AIAnalysis   any       `json:"ai_analysis,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Document type constants
const (
	DocumentTypeContract       = "contract"
	DocumentTypeCorrespondence = "correspondence"
	DocumentTypeFiling         = "filing"
	DocumentTypeOther          = "other"
)
