package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal types recognized by the plan generator.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealRecommendation is a generated meal for one user, meal type and date.
// It is immutable once created; regeneration creates a new row.
type MealRecommendation struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	MealType  string    `gorm:"size:20;not null" json:"meal_type"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`

	MealName     string `gorm:"size:200;not null" json:"meal_name"`
	Instructions string `gorm:"type:text" json:"instructions"`
	PortionSize  string `gorm:"size:100" json:"portion_size"`

	// Totals are the selected foods' per-100g values scaled by the 0.5
	// portion assumption, rounded to 2 decimal places.
	TotalCalories float64 `gorm:"not null" json:"total_calories"`
	TotalProtein  float64 `gorm:"not null" json:"total_protein"`
	TotalCarbs    float64 `gorm:"not null" json:"total_carbs"`
	TotalFat      float64 `gorm:"not null" json:"total_fat"`

	Summary   string `gorm:"type:text" json:"summary"`
	Reasoning string `gorm:"type:text" json:"reasoning"`

	Foods []Food `gorm:"many2many:meal_recommendation_foods" json:"foods"`
}

func (MealRecommendation) TableName() string {
	return "meal_recommendations"
}

func (m *MealRecommendation) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
