package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poshan-ai/backend/internal/models"
)

// MedicalService handles report upload, analysis and disease lookup. Report
// files are stored in object storage; only the derived text and analysis live
// in the database.
type MedicalService struct {
	db      *gorm.DB
	scanner *ReportScanner
	files   FileStore
}

func NewMedicalService(db *gorm.DB, scanner *ReportScanner, files FileStore) *MedicalService {
	return &MedicalService{
		db:      db,
		scanner: scanner,
		files:   files,
	}
}

// UploadReport stores the report file and creates a pending report record.
// The extracted text is supplied by the upstream ingestion pipeline; this
// service never performs OCR.
func (s *MedicalService) UploadReport(ctx context.Context, userID uuid.UUID, reportType string, fileName string, data []byte, contentType, extractedText string) (*models.MedicalReport, error) {
	report := &models.MedicalReport{
		UserID:        userID,
		ReportType:    reportType,
		Status:        models.ReportPending,
		ExtractedText: extractedText,
	}

	if s.files != nil && len(data) > 0 {
		key := fmt.Sprintf("medical-reports/%s/%s-%s", userID, uuid.New(), fileName)
		if _, err := s.files.Put(ctx, key, data, contentType); err != nil {
			return nil, fmt.Errorf("failed to store report file: %w", err)
		}
		report.FileKey = key
	}

	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// AnalyzeReport runs the scanner over the report's extracted text, matches
// detected conditions against the disease table and persists the outcome.
// Conditions without a matching Disease row are silently skipped when
// assembling dietary recommendations.
func (s *MedicalService) AnalyzeReport(ctx context.Context, userID, reportID uuid.UUID) (*models.MedicalReport, error) {
	var report models.MedicalReport
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", reportID, userID).First(&report).Error; err != nil {
		return nil, err
	}

	if report.Status == models.ReportCompleted {
		return &report, nil
	}

	report.Status = models.ReportProcessing
	if err := s.db.WithContext(ctx).Save(&report).Error; err != nil {
		return nil, err
	}

	if strings.TrimSpace(report.ExtractedText) == "" {
		report.Status = models.ReportFailed
		report.Insights = "Unable to extract text from document."
		if err := s.db.WithContext(ctx).Save(&report).Error; err != nil {
			return nil, err
		}
		return &report, nil
	}

	result := s.scanner.Analyze(report.ExtractedText)

	report.DetectedConditions = strings.Join(result.Conditions, ", ")
	report.Insights = result.Insights
	metrics := make(models.JSONBMap, len(result.Metrics))
	for name, reading := range result.Metrics {
		metrics[name] = reading
	}
	report.HealthMetrics = metrics
	report.Status = models.ReportCompleted

	var diseases []models.Disease
	if len(result.Conditions) > 0 {
		if err := s.db.WithContext(ctx).Where("name IN ?", result.Conditions).Find(&diseases).Error; err != nil {
			return nil, err
		}
	}

	var recs []string
	for _, d := range diseases {
		recs = append(recs, fmt.Sprintf("For %s: %s", d.Name, d.DietaryGuidelines))
	}
	if len(recs) > 0 {
		report.DietaryRecs = strings.Join(recs, "\n\n")
	} else {
		report.DietaryRecs = "Maintain a balanced, wholesome diet."
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&report).Error; err != nil {
			return err
		}
		return tx.Model(&report).Association("Diseases").Replace(diseases)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[MedicalService] analyzed report %s: %d conditions, %d metrics", report.ID, len(result.Conditions), len(result.Metrics))
	return &report, nil
}

// ListReports returns a user's reports, newest first.
func (s *MedicalService) ListReports(ctx context.Context, userID uuid.UUID) ([]models.MedicalReport, error) {
	var reports []models.MedicalReport
	err := s.db.WithContext(ctx).
		Preload("Diseases").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// ReportFileURL returns a short-lived presigned URL for the stored file.
func (s *MedicalService) ReportFileURL(ctx context.Context, report *models.MedicalReport) (string, error) {
	if s.files == nil || report.FileKey == "" {
		return "", nil
	}
	return s.files.PresignGet(ctx, report.FileKey, 15*time.Minute)
}

// ListDiseases returns the disease reference table.
func (s *MedicalService) ListDiseases(ctx context.Context) ([]models.Disease, error) {
	var diseases []models.Disease
	if err := s.db.WithContext(ctx).Order("name").Find(&diseases).Error; err != nil {
		return nil, err
	}
	return diseases, nil
}
