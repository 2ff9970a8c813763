package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	FirstName    string         `gorm:"size:50;not null" json:"first_name"`
	LastName     string         `gorm:"size:50;not null" json:"last_name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile holds the physiological snapshot the recommendation engine reads.
// Weight is in kg, height in cm. Nil physiological fields are allowed; the
// engine falls back to a default calorie target when any of them is missing.
type UserProfile struct {
	ID            uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Age           *int           `json:"age"`
	Gender        string         `gorm:"size:1" json:"gender"` // M, F or O
	Weight        *float64       `json:"weight"`
	Height        *float64       `json:"height"`
	ActivityLevel string         `gorm:"size:20;default:'moderate'" json:"activity_level"`
	Goal          string         `gorm:"size:20;default:'health'" json:"goal"`
	Diseases      string         `gorm:"type:text" json:"diseases"` // comma-separated
	Allergies     string         `gorm:"type:text" json:"allergies"`
	DietaryPrefs  string         `gorm:"type:text" json:"dietary_preferences"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BMI returns the body mass index, or nil when weight or height is unknown.
func (p *UserProfile) BMI() *float64 {
	if p.Weight == nil || p.Height == nil || *p.Height == 0 {
		return nil
	}
	h := *p.Height / 100
	bmi := *p.Weight / (h * h)
	return &bmi
}
