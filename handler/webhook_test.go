package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/config"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/model"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/service"
	"github.com/gin-gonic/gin"
)

func TestWebhookHandlerHandleAIAnalysis(t *testing.T) {
	store := service.NewDocumentStore(&config.StoreConfig{MaxRecords: 1000})
	store.Save(&model.Document{
		ID:         "doc-1",
		Filename:   "msa.pdf",
		OwnerEmail: "a@firm.com",
		UploadedAt: time.Now(),
	})

	handler := NewWebhookHandler(store)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "known document",
			body:           `{"document_id":"doc-1","analysis":{"risk_score":7}}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown document still processed",
			body:           `{"document_id":"no-such-doc","analysis":{"risk_score":7}}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing analysis",
			body:           `{"document_id":"doc-1"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid payload",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/webhook", handler.HandleAIAnalysis)

			req := httptest.NewRequest("POST", "/webhook", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedStatus == http.StatusOK {
				var response map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Fatalf("Failed to parse response: %v", err)
				}
				if response["status"] != "processed" {
					t.Errorf("Expected status 'processed', got '%s'", response["status"])
				}
			}
		})
	}

	// The known-document case should have attached the analysis
	doc := store.Get("doc-1")
	if doc == nil || doc.AIAnalysis == nil {
		t.Error("Expected analysis attached to document")
	}
}
