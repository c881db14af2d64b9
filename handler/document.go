package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/middleware"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/model"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxInlineTextBytes caps how much of a plain-text upload is fed to the AI
const maxInlineTextBytes = 64 * 1024

type DocumentHandler struct {
	storage   *service.StorageService
	assistant *service.AssistantService
	store     *service.DocumentStore
}

func NewDocumentHandler(storage *service.StorageService, assistant *service.AssistantService, store *service.DocumentStore) *DocumentHandler {
	return &DocumentHandler{
		storage:   storage,
		assistant: assistant,
		store:     store,
	}
}

// Upload stores a document and, for contracts, attaches an AI analysis
func (h *DocumentHandler) Upload(c *gin.Context) {
	email := middleware.GetUserEmail(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	documentType := c.PostForm("document_type")
	if documentType == "" {
		documentType = model.DocumentTypeOther
	}
	matterID := c.PostForm("matter_id")

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Plain-text contracts are analyzed from their content. Binary formats
	// get a placeholder until real text extraction lands.
	var contractText string
	if documentType == model.DocumentTypeContract {
		contractText = "Contract document: " + header.Filename
		if isPlainText(header.Filename, contentType) {
			data, err := io.ReadAll(io.LimitReader(file, maxInlineTextBytes))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
				return
			}
			contractText = string(data)
			if _, err := file.Seek(0, io.SeekStart); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
				return
			}
		}
	}

	docID := uuid.New().String()
	objectName := fmt.Sprintf("%s/%s/%s", email, docID, header.Filename)

	err = h.storage.UploadFile(c.Request.Context(), objectName, file, header.Size, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file: " + err.Error()})
		return
	}

	downloadURL, err := h.storage.GetPresignedURL(c.Request.Context(), objectName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate URL: " + err.Error()})
		return
	}

	doc := &model.Document{
		ID:           docID,
		Filename:     header.Filename,
		DocumentType: documentType,
		MatterID:     matterID,
		OwnerEmail:   email,
		ObjectName:   objectName,
		DownloadURL:  downloadURL,
		UploadedAt:   time.Now(),
	}

	if documentType == model.DocumentTypeContract {
		analysis := h.assistant.AnalyzeContract(c.Request.Context(), contractText)
		doc.AIAnalysis = analysis
	}

	h.store.Save(doc)

	c.JSON(http.StatusOK, doc)
}

// List returns the caller's documents
func (h *DocumentHandler) List(c *gin.Context) {
	email := middleware.GetUserEmail(c)
	docs := h.store.ListByOwner(email)

	c.JSON(http.StatusOK, gin.H{
		"documents": docs,
		"total":     len(docs),
	})
}

// Get returns a single document record
func (h *DocumentHandler) Get(c *gin.Context) {
	email := middleware.GetUserEmail(c)
	id := c.Param("id")

	doc := h.store.Get(id)
	if doc == nil || doc.OwnerEmail != email {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Delete removes a document record and its stored object
func (h *DocumentHandler) Delete(c *gin.Context) {
	email := middleware.GetUserEmail(c)
	id := c.Param("id")

	doc := h.store.Get(id)
	if doc == nil || doc.OwnerEmail != email {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if err := h.storage.DeleteFile(c.Request.Context(), doc.ObjectName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file: " + err.Error()})
		return
	}

	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

func isPlainText(filename, contentType string) bool {
	if strings.Contains(contentType, "text/plain") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".txt" || ext == ".md"
}
