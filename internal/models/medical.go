package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medical report statuses.
const (
	ReportPending    = "pending"
	ReportProcessing = "processing"
	ReportCompleted  = "completed"
	ReportFailed     = "failed"
)

// JSONBMap is a custom type for handling string-keyed maps in JSONB
type JSONBMap map[string]interface{}

// Value implements the driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Disease is a reference record pairing a condition name with dietary
// guidance. Names are lowercase and must stay in lexical sync with the
// scanner's keyword dictionary and the engine's condition map.
type Disease struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:20" json:"category"`
	Severity    string    `gorm:"size:20;default:'moderate'" json:"severity"`

	DietaryGuidelines string `gorm:"type:text" json:"dietary_guidelines"`
	FoodsToInclude    string `gorm:"type:text" json:"foods_to_include"`
	FoodsToAvoid      string `gorm:"type:text" json:"foods_to_avoid"`
}

func (Disease) TableName() string {
	return "diseases"
}

func (d *Disease) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// MedicalReport is an uploaded health report plus the analysis derived from
// its extracted text. The file itself lives in object storage under FileKey.
type MedicalReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ReportType string    `gorm:"size:20;not null" json:"report_type"`
	FileKey    string    `gorm:"size:500" json:"file_key"`

	Status             string   `gorm:"size:20;default:'pending'" json:"status"`
	ExtractedText      string   `gorm:"type:text" json:"extracted_text"`
	DetectedConditions string   `gorm:"type:text" json:"detected_conditions"`
	HealthMetrics      JSONBMap `gorm:"type:jsonb" json:"health_metrics"`
	Insights           string   `gorm:"type:text" json:"insights"`
	DietaryRecs        string   `gorm:"type:text" json:"dietary_recommendations"`

	Diseases []Disease `gorm:"many2many:medical_report_diseases" json:"diseases"`
}

func (MedicalReport) TableName() string {
	return "medical_reports"
}

func (r *MedicalReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
