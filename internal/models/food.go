package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Food categories. These names are shared with the condition-to-category map
// in the nutrition engine and must stay lowercase.
const (
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryGrain     = "grain"
	CategoryProtein   = "protein"
	CategoryDairy     = "dairy"
	CategoryNuts      = "nuts"
	CategorySpice     = "spice"
	CategoryBeverage  = "beverage"
)

// Seasons a food can be tagged with. SeasonAll matches every season.
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
	SeasonWinter = "winter"
	SeasonAll    = "all"
)

// Food is a catalog record. Nutrient values are per 100g; the engine scales
// them by a fixed 0.5 portion assumption. Read-only to the engine.
type Food struct {
	ID          uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	NameNepali  string         `gorm:"size:200" json:"name_nepali"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"size:20;not null;index" json:"category"`
	Season      string         `gorm:"size:20;not null;default:'all';index" json:"season"`

	// Per 100g
	Calories float64 `gorm:"not null" json:"calories"`
	Protein  float64 `gorm:"not null" json:"protein"`
	Carbs    float64 `gorm:"not null" json:"carbohydrates"`
	Fat      float64 `gorm:"not null" json:"fat"`
	Fiber    float64 `gorm:"default:0" json:"fiber"`

	// Micronutrients
	VitaminA float64 `gorm:"default:0" json:"vitamin_a"`
	VitaminC float64 `gorm:"default:0" json:"vitamin_c"`
	Calcium  float64 `gorm:"default:0" json:"calcium"`
	Iron     float64 `gorm:"default:0" json:"iron"`

	HealthBenefits string `gorm:"type:text" json:"health_benefits"`
	SuitableFor    string `gorm:"type:text" json:"suitable_for"`
	AvoidIn        string `gorm:"type:text" json:"avoid_in"`

	IsAvailable bool   `gorm:"default:true;index" json:"is_available"`
	ImageURL    string `gorm:"size:255" json:"image_url"`
}

func (Food) TableName() string {
	return "foods"
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
