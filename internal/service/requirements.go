package service

import (
	"strings"

	"github.com/poshan-ai/backend/internal/models"
)

const defaultCalorieTarget = 2000

// kcal per gram of each macronutrient.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

var activityMultipliers = map[string]float64{
	"sedentary": 1.20,
	"light":     1.375,
	"moderate":  1.55,
	"very":      1.725,
	"extra":     1.90,
}

// ConditionProfile describes how a recognized medical condition shifts food
// selection: categories to prefer, categories to exclude, and keywords used
// in rationale text.
type ConditionProfile struct {
	Preferred []string
	Excluded  []string
	Keywords  []string
}

// DefaultConditionMap pairs lowercase condition names with their dietary
// profiles. The names must stay in lexical sync with the medical scanner's
// keyword dictionary.
func DefaultConditionMap() map[string]ConditionProfile {
	return map[string]ConditionProfile{
		"diabetes": {
			Preferred: []string{models.CategoryVegetable, models.CategoryProtein, models.CategoryNuts},
			Excluded:  []string{models.CategoryGrain},
			Keywords:  []string{"low glycemic", "high fiber", "protein"},
		},
		"hypertension": {
			Preferred: []string{models.CategoryVegetable, models.CategoryFruit, models.CategoryNuts},
			Keywords:  []string{"low sodium", "potassium", "magnesium"},
		},
		"anemia": {
			Preferred: []string{models.CategoryProtein, models.CategoryVegetable, models.CategoryNuts},
			Keywords:  []string{"iron", "vitamin c", "folate"},
		},
		"obesity": {
			Preferred: []string{models.CategoryVegetable, models.CategoryFruit, models.CategoryProtein},
			Excluded:  []string{models.CategoryGrain},
			Keywords:  []string{"low calorie", "high fiber", "protein"},
		},
	}
}

// RequirementSet holds the derived calorie and macro targets for one profile
// at one point in time. It is recomputed on every engine call and never
// persisted or cached.
type RequirementSet struct {
	Calories float64 // kcal per day
	Protein  float64 // grams per day
	Carbs    float64
	Fat      float64

	PreferredCategories []string
	ExcludedCategories  []string
	FocusAreas          []string
}

// RequirementCalculator converts a physiological profile into daily targets
// and condition-driven category preferences. The condition map is injected at
// construction so tests can supply alternate tables.
type RequirementCalculator struct {
	conditions map[string]ConditionProfile
}

func NewRequirementCalculator(conditions map[string]ConditionProfile) *RequirementCalculator {
	if conditions == nil {
		conditions = DefaultConditionMap()
	}
	return &RequirementCalculator{conditions: conditions}
}

// BMR computes the basal metabolic rate via Mifflin-St Jeor. It returns nil
// when any of weight, height, age or gender is missing; callers must treat a
// nil BMR as "use the default calorie target", not as an error.
func (c *RequirementCalculator) BMR(profile *models.UserProfile) *float64 {
	if profile.Weight == nil || profile.Height == nil || profile.Age == nil || profile.Gender == "" {
		return nil
	}
	bmr := 10*(*profile.Weight) + 6.25*(*profile.Height) - 5*float64(*profile.Age)
	if profile.Gender == "M" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return &bmr
}

// DailyCalories is the BMR scaled by the profile's activity multiplier.
// Unrecognized activity levels fall back to the moderate multiplier.
func (c *RequirementCalculator) DailyCalories(profile *models.UserProfile) float64 {
	bmr := c.BMR(profile)
	if bmr == nil {
		return defaultCalorieTarget
	}
	mult, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		mult = activityMultipliers["moderate"]
	}
	return *bmr * mult
}

// ComputeRequirements derives the full requirement set for a profile. It is a
// pure function of the profile and the injected condition map.
func (c *RequirementCalculator) ComputeRequirements(profile *models.UserProfile) *RequirementSet {
	reqs := &RequirementSet{
		Calories: c.DailyCalories(profile),
	}

	switch profile.Goal {
	case "lose":
		reqs.Calories *= 0.80
		reqs.Protein = reqs.Calories * 0.30 / kcalPerGramProtein
		reqs.Carbs = reqs.Calories * 0.40 / kcalPerGramCarbs
		reqs.Fat = reqs.Calories * 0.30 / kcalPerGramFat
	case "gain":
		reqs.Calories *= 1.15
		reqs.Protein = reqs.Calories * 0.25 / kcalPerGramProtein
		reqs.Carbs = reqs.Calories * 0.50 / kcalPerGramCarbs
		reqs.Fat = reqs.Calories * 0.25 / kcalPerGramFat
	default: // maintain, health
		reqs.Protein = reqs.Calories * 0.25 / kcalPerGramProtein
		reqs.Carbs = reqs.Calories * 0.50 / kcalPerGramCarbs
		reqs.Fat = reqs.Calories * 0.25 / kcalPerGramFat
	}

	c.applyConditions(profile.Diseases, reqs)
	return reqs
}

// applyConditions parses the profile's comma-separated condition list and
// folds every recognized condition into the preference and exclusion sets.
// Unrecognized condition strings are ignored.
func (c *RequirementCalculator) applyConditions(diseases string, reqs *RequirementSet) {
	if diseases == "" {
		return
	}
	for _, raw := range strings.Split(diseases, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		cond, ok := c.conditions[name]
		if !ok {
			continue
		}
		reqs.PreferredCategories = appendUnique(reqs.PreferredCategories, cond.Preferred...)
		reqs.ExcludedCategories = appendUnique(reqs.ExcludedCategories, cond.Excluded...)
		reqs.FocusAreas = appendUnique(reqs.FocusAreas, name)
	}
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, existing := range dst {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}
