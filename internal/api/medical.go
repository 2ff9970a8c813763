package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/poshan-ai/backend/internal/service"
)

// 10 MB upload limit for report files.
const maxReportSize = 10 << 20

// MedicalHandler exposes report upload/analysis and the disease reference
// table.
type MedicalHandler struct {
	medicalService *service.MedicalService
}

func NewMedicalHandler(medicalService *service.MedicalService) *MedicalHandler {
	return &MedicalHandler{medicalService: medicalService}
}

func (h *MedicalHandler) RegisterRoutes(router *gin.RouterGroup) {
	medical := router.Group("/medical")
	{
		medical.GET("/reports", h.ListReports)
		medical.POST("/reports", h.UploadReport)
		medical.POST("/reports/:id/analyze", h.AnalyzeReport)
		medical.GET("/diseases", h.ListDiseases)
	}
}

func (h *MedicalHandler) ListReports(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	reports, err := h.medicalService.ListReports(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *MedicalHandler) UploadReport(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	reportType := c.PostForm("report_type")
	if reportType == "" {
		reportType = "other"
	}
	extractedText := c.PostForm("extracted_text")

	var fileName, contentType string
	var data []byte

	fileHeader, err := c.FormFile("file")
	if err == nil {
		if fileHeader.Size > maxReportSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
			return
		}
		defer func() { _ = file.Close() }()

		data, err = io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
			return
		}
		fileName = fileHeader.Filename
		contentType = fileHeader.Header.Get("Content-Type")
	}

	report, err := h.medicalService.UploadReport(c.Request.Context(), userID, reportType, fileName, data, contentType, extractedText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"report":  report,
		"message": "Report uploaded successfully. Use the analyze endpoint to process it.",
	})
}

func (h *MedicalHandler) AnalyzeReport(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	report, err := h.medicalService.AnalyzeReport(c.Request.Context(), userID, reportID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *MedicalHandler) ListDiseases(c *gin.Context) {
	diseases, err := h.medicalService.ListDiseases(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch diseases"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"diseases": diseases})
}
