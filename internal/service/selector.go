package service

import (
	"context"
	"math/rand"

	"github.com/poshan-ai/backend/internal/models"
)

// PortionFactor scales per-100g nutrient values to the assumed 50g serving.
const PortionFactor = 0.5

const maxFoodsPerMeal = 5

// ShuffleFunc permutes n elements via swap. Production uses rand.Shuffle;
// tests inject a seeded rand.Rand's Shuffle for deterministic output.
type ShuffleFunc func(n int, swap func(i, j int))

// FoodSelector picks a bounded, varied subset of catalog foods for one meal.
type FoodSelector struct {
	catalog CatalogStore
	shuffle ShuffleFunc
}

func NewFoodSelector(catalog CatalogStore, shuffle ShuffleFunc) *FoodSelector {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &FoodSelector{catalog: catalog, shuffle: shuffle}
}

// SelectFoods returns at most 5 foods for the given season and requirement
// set, in acceptance order. Availability is the only hard constraint: when no
// food matches the season and category filters, selection falls back to all
// available foods. Excluded categories are removed on every path, including
// the fallback. An empty catalog yields an empty, non-error result.
func (s *FoodSelector) SelectFoods(ctx context.Context, season string, reqs *RequirementSet, targetCalories float64) ([]models.Food, error) {
	pool, err := s.catalog.QueryAvailable(ctx, season, reqs.PreferredCategories, reqs.ExcludedCategories)
	if err != nil {
		return nil, err
	}

	if len(pool) == 0 {
		pool, err = s.catalog.QueryAvailable(ctx, "", nil, reqs.ExcludedCategories)
		if err != nil {
			return nil, err
		}
	}

	s.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	var selected []models.Food
	var totalCalories float64
	categoriesUsed := make(map[string]bool)

	for _, food := range pool {
		if len(selected) >= maxFoodsPerMeal {
			break
		}
		// Accept a food when it adds a new category, or while the meal is
		// still below the 3-item variety floor.
		if !categoriesUsed[food.Category] || len(selected) < 3 {
			selected = append(selected, food)
			totalCalories += food.Calories * PortionFactor
			categoriesUsed[food.Category] = true

			if totalCalories >= targetCalories*0.9 {
				break
			}
		}
	}

	return selected, nil
}
