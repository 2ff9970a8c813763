package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poshan-ai/backend/internal/models"
)

// SeasonFunc maps a date to a season tag. The default mapping is a coarse,
// regionally specific policy constant, not a general calendar algorithm.
type SeasonFunc func(t time.Time) string

// DefaultSeasonOf approximates the Nepali season from the Gregorian month.
func DefaultSeasonOf(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return models.SeasonSpring
	case time.June, time.July, time.August:
		return models.SeasonSummer
	case time.September, time.October:
		return models.SeasonAutumn
	default:
		return models.SeasonWinter
	}
}

// Share of the daily calorie target assigned to each meal type.
var mealCalorieShares = map[string]float64{
	models.MealBreakfast: 0.25,
	models.MealLunch:     0.35,
	models.MealDinner:    0.30,
	models.MealSnack:     0.10,
}

const defaultMealShare = 0.30

// planMealTypes are the slots generated for every day of a full plan. Snack
// is intentionally excluded from plan generation.
var planMealTypes = []string{models.MealBreakfast, models.MealLunch, models.MealDinner}

// PlanGenerator orchestrates the requirement calculator and food selector
// across meal types and days, persisting the results. It is stateless and
// reentrant; every call recomputes requirements from the current profile.
type PlanGenerator struct {
	db       *gorm.DB
	calc     *RequirementCalculator
	selector *FoodSelector
	profiles ProfileStore
	seasonOf SeasonFunc
}

func NewPlanGenerator(db *gorm.DB, calc *RequirementCalculator, selector *FoodSelector, profiles ProfileStore, seasonOf SeasonFunc) *PlanGenerator {
	if seasonOf == nil {
		seasonOf = DefaultSeasonOf
	}
	return &PlanGenerator{
		db:       db,
		calc:     calc,
		selector: selector,
		profiles: profiles,
		seasonOf: seasonOf,
	}
}

// GenerateMealRecommendation builds and persists one meal for the given user,
// meal type and date. The meal and its food associations are written in a
// single transaction; on error nothing is committed.
func (g *PlanGenerator) GenerateMealRecommendation(ctx context.Context, userID uuid.UUID, mealType string, date time.Time) (*models.MealRecommendation, error) {
	profile, err := g.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	reqs := g.calc.ComputeRequirements(profile)

	var meal *models.MealRecommendation
	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		meal, err = g.generateMeal(ctx, tx, profile, reqs, mealType, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// generateMeal is the shared meal-building step. It runs inside the caller's
// transaction so that single-meal and full-plan generation each commit as one
// unit of work.
func (g *PlanGenerator) generateMeal(ctx context.Context, tx *gorm.DB, profile *models.UserProfile, reqs *RequirementSet, mealType string, date time.Time) (*models.MealRecommendation, error) {
	share, ok := mealCalorieShares[mealType]
	if !ok {
		share = defaultMealShare
	}
	targetCalories := reqs.Calories * share

	season := g.seasonOf(date)
	foods, err := g.selector.SelectFoods(ctx, season, reqs, targetCalories)
	if err != nil {
		return nil, fmt.Errorf("food selection failed: %w", err)
	}

	var totalCalories, totalProtein, totalCarbs, totalFat float64
	names := make([]string, len(foods))
	for i, f := range foods {
		totalCalories += f.Calories * PortionFactor
		totalProtein += f.Protein * PortionFactor
		totalCarbs += f.Carbs * PortionFactor
		totalFat += f.Fat * PortionFactor
		names[i] = f.Name
	}

	meal := &models.MealRecommendation{
		UserID:        profile.UserID,
		MealType:      mealType,
		Date:          date,
		MealName:      fmt.Sprintf("Healthy %s Bowl", titleCase(mealType)),
		Instructions:  mealInstructions(mealType, names, reqs.FocusAreas),
		PortionSize:   "Standard serving",
		TotalCalories: round2(totalCalories),
		TotalProtein:  round2(totalProtein),
		TotalCarbs:    round2(totalCarbs),
		TotalFat:      round2(totalFat),
		Summary:       fmt.Sprintf("A balanced %s with %d calories, featuring seasonal Nepali ingredients.", mealType, int(totalCalories)),
		Reasoning:     mealReasoning(profile.Goal, reqs.FocusAreas),
		Foods:         foods,
	}

	// Omit the food records themselves; only the join rows are new.
	if err := tx.Omit("Foods.*").Create(meal).Error; err != nil {
		return nil, fmt.Errorf("failed to persist meal: %w", err)
	}
	return meal, nil
}

// CreateNutritionPlan persists a plan for [today, today+durationDays) along
// with breakfast, lunch and dinner for every day, all in one transaction. An
// empty catalog degrades individual meals to zero totals but never aborts the
// plan; persistence errors roll the whole call back.
func (g *PlanGenerator) CreateNutritionPlan(ctx context.Context, userID uuid.UUID, durationDays int) (*models.NutritionPlan, error) {
	profile, err := g.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	reqs := g.calc.ComputeRequirements(profile)

	startDate := truncateToDay(time.Now())
	endDate := startDate.AddDate(0, 0, durationDays)

	healthFocus := "General wellness"
	if len(reqs.FocusAreas) > 0 {
		healthFocus = "Managing " + strings.Join(reqs.FocusAreas, ", ")
	}

	plan := &models.NutritionPlan{
		UserID:             userID,
		StartDate:          startDate,
		EndDate:            endDate,
		DailyCalorieTarget: reqs.Calories,
		DailyProteinTarget: reqs.Protein,
		DailyCarbsTarget:   reqs.Carbs,
		DailyFatTarget:     reqs.Fat,
		PlanDescription: fmt.Sprintf(
			"Personalized %d-day nutrition plan designed for your %s goal. This plan provides approximately %d calories per day with balanced macronutrients.",
			durationDays, profile.Goal, int(reqs.Calories)),
		HealthFocus: healthFocus,
		IsActive:    true,
	}

	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return fmt.Errorf("failed to persist plan: %w", err)
		}
		for day := 0; day < durationDays; day++ {
			mealDate := startDate.AddDate(0, 0, day)
			for _, mealType := range planMealTypes {
				if _, err := g.generateMeal(ctx, tx, profile, reqs, mealType, mealDate); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// PlanMeals reconstructs the meals belonging to a plan by querying the user's
// meal records within the plan's date range. The plan does not own its meals;
// this derived query is the only association.
func (g *PlanGenerator) PlanMeals(ctx context.Context, plan *models.NutritionPlan) ([]models.MealRecommendation, error) {
	var meals []models.MealRecommendation
	err := g.db.WithContext(ctx).
		Preload("Foods").
		Where("user_id = ? AND date >= ? AND date < ?", plan.UserID, plan.StartDate, plan.EndDate).
		Order("date, meal_type").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

func mealInstructions(mealType string, names []string, focusAreas []string) string {
	var sb strings.Builder
	switch len(names) {
	case 0:
		sb.WriteString(fmt.Sprintf("No seasonal foods are currently available for this %s.", mealType))
	case 1:
		sb.WriteString(fmt.Sprintf("Enjoy %s for a nutritious %s. ", names[0], mealType))
	default:
		sb.WriteString(fmt.Sprintf("Combine %s and %s for a nutritious %s. ",
			strings.Join(names[:len(names)-1], ", "), names[len(names)-1], mealType))
	}
	if len(focusAreas) > 0 {
		sb.WriteString(fmt.Sprintf("This meal is specially designed for managing %s.", strings.Join(focusAreas, ", ")))
	}
	return sb.String()
}

func mealReasoning(goal string, focusAreas []string) string {
	reasoning := fmt.Sprintf("Selected based on your health profile: %s goal", goal)
	if len(focusAreas) > 0 {
		reasoning += " and " + strings.Join(focusAreas, ", ") + " management"
	}
	return reasoning
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
