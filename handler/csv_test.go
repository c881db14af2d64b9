package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/model"
	"github.com/gin-gonic/gin"
)

func buildCSVUpload(t *testing.T, module, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if module != "" {
		if err := writer.WriteField("module", module); err != nil {
			t.Fatalf("Failed to write module field: %v", err)
		}
	}
	if content != "" {
		part, err := writer.CreateFormFile("file", "import.csv")
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write file content: %v", err)
		}
	}
	writer.Close()

	return &buf, writer.FormDataContentType()
}

func TestCSVHandlerImport(t *testing.T) {
	handler := NewCSVHandler(newCompanyStore())

	tests := []struct {
		name           string
		module         string
		content        string
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "valid import",
			module:         "companies",
			content:        "name,jurisdiction\nGlobex Ltd,UK\nInitech Inc,US\n",
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "header only",
			module:         "companies",
			content:        "name,jurisdiction\n",
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "missing module",
			module:         "",
			content:        "name\nGlobex Ltd\n",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing file",
			module:         "companies",
			content:        "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed csv",
			module:         "companies",
			content:        "name,jurisdiction\n\"unterminated\n",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/import", handler.Import)

			body, contentType := buildCSVUpload(t, tt.module, tt.content)
			req := httptest.NewRequest("POST", "/import", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedStatus == http.StatusOK {
				var response struct {
					ImportedCount int              `json:"imported_count"`
					Records       []ImportedRecord `json:"records"`
					Module        string           `json:"module"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Fatalf("Failed to parse response: %v", err)
				}
				if response.ImportedCount != tt.expectedCount {
					t.Errorf("Expected %d imported records, got %d", tt.expectedCount, response.ImportedCount)
				}
				if response.Module != tt.module {
					t.Errorf("Expected module '%s', got '%s'", tt.module, response.Module)
				}
				for _, record := range response.Records {
					if record.ID == "" {
						t.Error("Expected generated record ID")
					}
				}
			}
		})
	}
}

func TestCSVHandlerImportRowMapping(t *testing.T) {
	handler := NewCSVHandler(newCompanyStore())

	router := gin.New()
	router.POST("/import", handler.Import)

	body, contentType := buildCSVUpload(t, "companies", "name,jurisdiction\nGlobex Ltd,UK\n")
	req := httptest.NewRequest("POST", "/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	var response struct {
		Records []ImportedRecord `json:"records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(response.Records))
	}

	data := response.Records[0].Data
	if data["name"] != "Globex Ltd" {
		t.Errorf("Expected name 'Globex Ltd', got '%s'", data["name"])
	}
	if data["jurisdiction"] != "UK" {
		t.Errorf("Expected jurisdiction 'UK', got '%s'", data["jurisdiction"])
	}
}

func TestCSVHandlerExportCompanies(t *testing.T) {
	store := newCompanyStore()
	store.Save(&model.Company{
		ID:                          "company-1",
		CompanyName:                 "Globex Ltd",
		EntityType:                  "subsidiary",
		JurisdictionOfIncorporation: "United Kingdom",
		IncorporationDate:           "2021-03-01",
		CompanyStatus:               model.CompanyStatusActive,
		CreatedAt:                   time.Now(),
	})

	handler := NewCSVHandler(store)

	router := gin.New()
	router.GET("/export", handler.Export)

	req := httptest.NewRequest("GET", "/export?module=companies", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if disposition := w.Header().Get("Content-Disposition"); !strings.Contains(disposition, "companies_export.csv") {
		t.Errorf("Expected attachment filename in Content-Disposition, got '%s'", disposition)
	}

	body := w.Body.String()
	if !strings.Contains(body, "id,company_name,entity_type") {
		t.Error("Expected header row in export")
	}
	if !strings.Contains(body, "Globex Ltd") {
		t.Error("Expected company row in export")
	}
}

func TestCSVHandlerExportDefaultModule(t *testing.T) {
	handler := NewCSVHandler(newCompanyStore())

	router := gin.New()
	router.GET("/export", handler.Export)

	req := httptest.NewRequest("GET", "/export?module=matters", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sample Company") {
		t.Error("Expected sample rows for unrecognized module")
	}
}

func TestCSVHandlerExportMissingModule(t *testing.T) {
	handler := NewCSVHandler(newCompanyStore())

	router := gin.New()
	router.GET("/export", handler.Export)

	req := httptest.NewRequest("GET", "/export", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
