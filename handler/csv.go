package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CSVHandler struct {
	companies *service.CompanyStore
}

func NewCSVHandler(companies *service.CompanyStore) *CSVHandler {
	return &CSVHandler{companies: companies}
}

// ImportedRecord is one CSV row keyed by header, tagged with an ID and timestamp
type ImportedRecord struct {
	ID         string            `json:"id"`
	Data       map[string]string `json:"data"`
	ImportedAt string            `json:"imported_at"`
}

// Import parses an uploaded CSV file into records for the named module
func (h *CSVHandler) Import(c *gin.Context) {
	module := c.PostForm("module")
	if module == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Module is required"})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid CSV file: " + err.Error()})
		return
	}
	if len(rows) < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is empty"})
		return
	}

	headers := rows[0]
	records := make([]ImportedRecord, 0, len(rows)-1)
	importedAt := time.Now().UTC().Format(time.RFC3339)

	for _, row := range rows[1:] {
		data := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				data[header] = row[i]
			}
		}
		records = append(records, ImportedRecord{
			ID:         uuid.New().String(),
			Data:       data,
			ImportedAt: importedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"imported_count": len(records),
		"records":        records,
		"module":         module,
	})
}

// Export writes the named module's records as a CSV attachment
func (h *CSVHandler) Export(c *gin.Context) {
	module := c.Query("module")
	if module == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Module is required"})
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	switch module {
	case "companies":
		writer.Write([]string{"id", "company_name", "entity_type", "jurisdiction", "incorporation_date", "status"})
		companies, _ := h.companies.List(0, 0)
		for _, company := range companies {
			writer.Write([]string{
				company.ID,
				company.CompanyName,
				company.EntityType,
				company.JurisdictionOfIncorporation,
				company.IncorporationDate,
				company.CompanyStatus,
			})
		}
	default:
		writer.Write([]string{"id", "name", "type"})
		writer.Write([]string{"1", "Sample Company", "Corporation"})
		writer.Write([]string{"2", "Another Company", "LLC"})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CSV export failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_export.csv", module))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
