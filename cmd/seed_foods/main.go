package main

import (
	"log"

	"github.com/poshan-ai/backend/config"
	"github.com/poshan-ai/backend/internal/database"
	"github.com/poshan-ai/backend/internal/models"
)

// Seeds the food catalog and disease reference table with a starter set of
// Nepali staples. Safe to re-run; existing names are skipped.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeded := 0
	for _, food := range catalogFoods() {
		var count int64
		if err := db.Model(&models.Food{}).Where("name = ?", food.Name).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check food %q: %v", food.Name, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&food).Error; err != nil {
			log.Fatalf("Failed to seed food %q: %v", food.Name, err)
		}
		seeded++
	}
	log.Printf("Seeded %d foods", seeded)

	seeded = 0
	for _, disease := range diseases() {
		var count int64
		if err := db.Model(&models.Disease{}).Where("name = ?", disease.Name).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check disease %q: %v", disease.Name, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&disease).Error; err != nil {
			log.Fatalf("Failed to seed disease %q: %v", disease.Name, err)
		}
		seeded++
	}
	log.Printf("Seeded %d diseases", seeded)
}

func catalogFoods() []models.Food {
	return []models.Food{
		{Name: "Spinach", NameNepali: "Palungo", Category: models.CategoryVegetable, Season: models.SeasonWinter, Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2, Iron: 2.7, HealthBenefits: "Rich in iron and folate", IsAvailable: true},
		{Name: "Mustard Greens", NameNepali: "Rayo ko Saag", Category: models.CategoryVegetable, Season: models.SeasonWinter, Calories: 27, Protein: 2.9, Carbs: 4.7, Fat: 0.4, Fiber: 3.2, IsAvailable: true},
		{Name: "Cauliflower", NameNepali: "Kauli", Category: models.CategoryVegetable, Season: models.SeasonWinter, Calories: 25, Protein: 1.9, Carbs: 5.0, Fat: 0.3, Fiber: 2.0, IsAvailable: true},
		{Name: "Bitter Gourd", NameNepali: "Karela", Category: models.CategoryVegetable, Season: models.SeasonSummer, Calories: 17, Protein: 1.0, Carbs: 3.7, Fat: 0.2, Fiber: 2.8, SuitableFor: "diabetes", IsAvailable: true},
		{Name: "Pumpkin", NameNepali: "Pharsi", Category: models.CategoryVegetable, Season: models.SeasonAutumn, Calories: 26, Protein: 1.0, Carbs: 6.5, Fat: 0.1, Fiber: 0.5, VitaminA: 426, IsAvailable: true},
		{Name: "Mango", NameNepali: "Aap", Category: models.CategoryFruit, Season: models.SeasonSummer, Calories: 60, Protein: 0.8, Carbs: 15.0, Fat: 0.4, Fiber: 1.6, VitaminC: 36, IsAvailable: true},
		{Name: "Orange", NameNepali: "Suntala", Category: models.CategoryFruit, Season: models.SeasonWinter, Calories: 47, Protein: 0.9, Carbs: 11.8, Fat: 0.1, Fiber: 2.4, VitaminC: 53, IsAvailable: true},
		{Name: "Banana", NameNepali: "Kera", Category: models.CategoryFruit, Season: models.SeasonAll, Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fiber: 2.6, IsAvailable: true},
		{Name: "Rice", NameNepali: "Bhat", Category: models.CategoryGrain, Season: models.SeasonAll, Calories: 130, Protein: 2.7, Carbs: 28.0, Fat: 0.3, Fiber: 0.4, IsAvailable: true},
		{Name: "Millet", NameNepali: "Kodo", Category: models.CategoryGrain, Season: models.SeasonAutumn, Calories: 119, Protein: 3.5, Carbs: 23.7, Fat: 1.0, Fiber: 1.3, IsAvailable: true},
		{Name: "Buckwheat", NameNepali: "Phapar", Category: models.CategoryGrain, Season: models.SeasonWinter, Calories: 92, Protein: 3.4, Carbs: 19.9, Fat: 0.6, Fiber: 2.7, SuitableFor: "diabetes", IsAvailable: true},
		{Name: "Lentils", NameNepali: "Dal", Category: models.CategoryProtein, Season: models.SeasonAll, Calories: 116, Protein: 9.0, Carbs: 20.1, Fat: 0.4, Fiber: 7.9, Iron: 3.3, IsAvailable: true},
		{Name: "Chicken", NameNepali: "Kukhura", Category: models.CategoryProtein, Season: models.SeasonAll, Calories: 165, Protein: 31.0, Carbs: 0, Fat: 3.6, IsAvailable: true},
		{Name: "Black Soybean", NameNepali: "Bhatmas", Category: models.CategoryProtein, Season: models.SeasonAll, Calories: 173, Protein: 16.6, Carbs: 9.9, Fat: 9.0, Fiber: 6.0, Iron: 5.1, SuitableFor: "anemia", IsAvailable: true},
		{Name: "Yogurt", NameNepali: "Dahi", Category: models.CategoryDairy, Season: models.SeasonAll, Calories: 59, Protein: 10.0, Carbs: 3.6, Fat: 0.4, Calcium: 110, IsAvailable: true},
		{Name: "Milk", NameNepali: "Dudh", Category: models.CategoryDairy, Season: models.SeasonAll, Calories: 42, Protein: 3.4, Carbs: 5.0, Fat: 1.0, Calcium: 125, IsAvailable: true},
		{Name: "Walnut", NameNepali: "Okhar", Category: models.CategoryNuts, Season: models.SeasonAutumn, Calories: 654, Protein: 15.2, Carbs: 13.7, Fat: 65.2, Fiber: 6.7, IsAvailable: true},
		{Name: "Peanut", NameNepali: "Badam", Category: models.CategoryNuts, Season: models.SeasonWinter, Calories: 567, Protein: 25.8, Carbs: 16.1, Fat: 49.2, Fiber: 8.5, IsAvailable: true},
		{Name: "Turmeric", NameNepali: "Besar", Category: models.CategorySpice, Season: models.SeasonAll, Calories: 312, Protein: 9.7, Carbs: 67.1, Fat: 3.2, Fiber: 22.7, HealthBenefits: "Anti-inflammatory", IsAvailable: true},
		{Name: "Green Tea", NameNepali: "Hariyo Chiya", Category: models.CategoryBeverage, Season: models.SeasonAll, Calories: 1, Protein: 0.2, Carbs: 0, Fat: 0, IsAvailable: true},
	}
}

func diseases() []models.Disease {
	return []models.Disease{
		{
			Name:              "diabetes",
			Description:       "Chronic condition affecting blood glucose regulation",
			Category:          "metabolic",
			Severity:          "moderate",
			DietaryGuidelines: "Prefer low glycemic index foods, high fiber vegetables and lean protein. Limit refined grains and added sugar.",
			FoodsToInclude:    "bitter gourd, buckwheat, leafy greens, lentils",
			FoodsToAvoid:      "white rice, sweets, sugary drinks",
		},
		{
			Name:              "hypertension",
			Description:       "Persistently elevated blood pressure",
			Category:          "cardiovascular",
			Severity:          "moderate",
			DietaryGuidelines: "Reduce sodium, increase potassium-rich fruits and vegetables, prefer unsalted nuts.",
			FoodsToInclude:    "banana, spinach, walnut",
			FoodsToAvoid:      "pickles, salted snacks, processed meat",
		},
		{
			Name:              "anemia",
			Description:       "Low hemoglobin or red blood cell count",
			Category:          "nutritional",
			Severity:          "moderate",
			DietaryGuidelines: "Increase iron-rich foods paired with vitamin C sources for absorption.",
			FoodsToInclude:    "black soybean, spinach, lentils, orange",
			FoodsToAvoid:      "tea with meals",
		},
		{
			Name:              "obesity",
			Description:       "Excess body weight with elevated BMI",
			Category:          "metabolic",
			Severity:          "moderate",
			DietaryGuidelines: "Favor low calorie, high fiber foods and lean protein. Limit refined grains and fried food.",
			FoodsToInclude:    "vegetables, fruits, lean protein",
			FoodsToAvoid:      "fried snacks, refined grains, sugary drinks",
		},
		{
			Name:              "cholesterol",
			Description:       "Elevated blood lipid levels",
			Category:          "cardiovascular",
			Severity:          "moderate",
			DietaryGuidelines: "Increase soluble fiber and omega-3 sources; limit saturated fat.",
			FoodsToInclude:    "oats, walnuts, lentils",
			FoodsToAvoid:      "fried food, fatty meat",
		},
	}
}
