package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NutritionPlan is a multi-day plan. It does not own its meals; the meals for
// a plan are found by querying MealRecommendation rows for the same user
// within [StartDate, EndDate).
type NutritionPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	DailyCalorieTarget float64 `gorm:"not null" json:"daily_calorie_target"`
	DailyProteinTarget float64 `gorm:"not null" json:"daily_protein_target"`
	DailyCarbsTarget   float64 `gorm:"not null" json:"daily_carbs_target"`
	DailyFatTarget     float64 `gorm:"not null" json:"daily_fat_target"`

	PlanDescription string `gorm:"type:text" json:"plan_description"`
	HealthFocus     string `gorm:"type:text" json:"health_focus"`

	IsActive bool `gorm:"default:true" json:"is_active"`
}

func (NutritionPlan) TableName() string {
	return "nutrition_plans"
}

func (p *NutritionPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
