package service_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poshan-ai/backend/internal/models"
	"github.com/poshan-ai/backend/internal/service"
)

// fakeCatalog answers QueryAvailable from a slice, applying the same filters
// the database-backed store would.
type fakeCatalog struct {
	foods []models.Food
	err   error
}

func (f *fakeCatalog) QueryAvailable(ctx context.Context, season string, categoryIn, categoryNotIn []string) ([]models.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Food
	for _, food := range f.foods {
		if !food.IsAvailable {
			continue
		}
		if season != "" && food.Season != season && food.Season != models.SeasonAll {
			continue
		}
		if len(categoryIn) > 0 && !containsString(categoryIn, food.Category) {
			continue
		}
		if containsString(categoryNotIn, food.Category) {
			continue
		}
		out = append(out, food)
	}
	return out, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// noShuffle keeps the pool in insertion order for deterministic assertions.
func noShuffle(n int, swap func(i, j int)) {}

func testFood(name, category, season string, calories float64) models.Food {
	return models.Food{
		Name:        name,
		Category:    category,
		Season:      season,
		Calories:    calories,
		IsAvailable: true,
	}
}

func TestSelectFoodsBasic(t *testing.T) {
	catalog := &fakeCatalog{foods: []models.Food{
		testFood("Spinach", models.CategoryVegetable, models.SeasonWinter, 23),
		testFood("Orange", models.CategoryFruit, models.SeasonWinter, 47),
		testFood("Rice", models.CategoryGrain, models.SeasonAll, 130),
		testFood("Lentils", models.CategoryProtein, models.SeasonAll, 116),
		testFood("Yogurt", models.CategoryDairy, models.SeasonAll, 59),
		testFood("Peanut", models.CategoryNuts, models.SeasonWinter, 567),
	}}
	selector := service.NewFoodSelector(catalog, noShuffle)

	foods, err := selector.SelectFoods(context.Background(), models.SeasonWinter, &service.RequirementSet{}, 10000)
	require.NoError(t, err)

	// Six candidates in six categories, but the meal caps at five foods.
	assert.Len(t, foods, 5)
}

func TestSelectFoodsCategoryVariety(t *testing.T) {
	// Ten vegetables followed by one fruit and one grain. After the first
	// three items the selector only accepts foods from unseen categories.
	var pool []models.Food
	for _, name := range []string{"V1", "V2", "V3", "V4", "V5", "V6", "V7", "V8", "V9", "V10"} {
		pool = append(pool, testFood(name, models.CategoryVegetable, models.SeasonAll, 20))
	}
	pool = append(pool,
		testFood("Mango", models.CategoryFruit, models.SeasonAll, 60),
		testFood("Rice", models.CategoryGrain, models.SeasonAll, 130),
	)
	selector := service.NewFoodSelector(&fakeCatalog{foods: pool}, noShuffle)

	foods, err := selector.SelectFoods(context.Background(), "", &service.RequirementSet{}, 10000)
	require.NoError(t, err)

	require.Len(t, foods, 5)
	assert.Equal(t, "V1", foods[0].Name)
	assert.Equal(t, "V2", foods[1].Name)
	assert.Equal(t, "V3", foods[2].Name)
	assert.Equal(t, "Mango", foods[3].Name)
	assert.Equal(t, "Rice", foods[4].Name)
}

func TestSelectFoodsStopsNearTarget(t *testing.T) {
	catalog := &fakeCatalog{foods: []models.Food{
		testFood("Walnut", models.CategoryNuts, models.SeasonAll, 654),
		testFood("Peanut", models.CategoryProtein, models.SeasonAll, 567),
		testFood("Rice", models.CategoryGrain, models.SeasonAll, 130),
	}}
	selector := service.NewFoodSelector(catalog, noShuffle)

	// 654*0.5 = 327 >= 0.9*300, so one food suffices.
	foods, err := selector.SelectFoods(context.Background(), "", &service.RequirementSet{}, 300)
	require.NoError(t, err)
	assert.Len(t, foods, 1)
	assert.Equal(t, "Walnut", foods[0].Name)
}

func TestSelectFoodsPreferredCategories(t *testing.T) {
	catalog := &fakeCatalog{foods: []models.Food{
		testFood("Spinach", models.CategoryVegetable, models.SeasonAll, 23),
		testFood("Rice", models.CategoryGrain, models.SeasonAll, 130),
		testFood("Lentils", models.CategoryProtein, models.SeasonAll, 116),
	}}
	selector := service.NewFoodSelector(catalog, noShuffle)

	reqs := &service.RequirementSet{
		PreferredCategories: []string{models.CategoryVegetable, models.CategoryProtein},
		ExcludedCategories:  []string{models.CategoryGrain},
	}
	foods, err := selector.SelectFoods(context.Background(), "", reqs, 10000)
	require.NoError(t, err)

	require.Len(t, foods, 2)
	for _, f := range foods {
		assert.NotEqual(t, models.CategoryGrain, f.Category)
	}
}

func TestSelectFoodsFallbackKeepsExclusions(t *testing.T) {
	// No dairy exists, so the preferred filter empties the pool and selection
	// falls back to everything available. Grain must still be absent.
	catalog := &fakeCatalog{foods: []models.Food{
		testFood("Spinach", models.CategoryVegetable, models.SeasonAll, 23),
		testFood("Rice", models.CategoryGrain, models.SeasonAll, 130),
		testFood("Lentils", models.CategoryProtein, models.SeasonAll, 116),
	}}
	selector := service.NewFoodSelector(catalog, noShuffle)

	reqs := &service.RequirementSet{
		PreferredCategories: []string{models.CategoryDairy},
		ExcludedCategories:  []string{models.CategoryGrain},
	}
	foods, err := selector.SelectFoods(context.Background(), "", reqs, 10000)
	require.NoError(t, err)

	require.NotEmpty(t, foods)
	for _, f := range foods {
		assert.NotEqual(t, models.CategoryGrain, f.Category)
	}
}

func TestSelectFoodsSeasonFallback(t *testing.T) {
	catalog := &fakeCatalog{foods: []models.Food{
		testFood("Mango", models.CategoryFruit, models.SeasonSummer, 60),
	}}
	selector := service.NewFoodSelector(catalog, noShuffle)

	// Nothing matches winter, so the summer mango is still offered.
	foods, err := selector.SelectFoods(context.Background(), models.SeasonWinter, &service.RequirementSet{}, 10000)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Mango", foods[0].Name)
}

func TestSelectFoodsEmptyCatalog(t *testing.T) {
	selector := service.NewFoodSelector(&fakeCatalog{}, noShuffle)

	foods, err := selector.SelectFoods(context.Background(), models.SeasonSummer, &service.RequirementSet{}, 500)
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestSelectFoodsCatalogError(t *testing.T) {
	selector := service.NewFoodSelector(&fakeCatalog{err: errors.New("connection refused")}, noShuffle)

	_, err := selector.SelectFoods(context.Background(), "", &service.RequirementSet{}, 500)
	assert.Error(t, err)
}

func TestSelectFoodsDeterministicWithSeededShuffle(t *testing.T) {
	var pool []models.Food
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		pool = append(pool, testFood(name, models.CategoryVegetable, models.SeasonAll, 50))
	}

	pick := func(seed int64) []string {
		r := rand.New(rand.NewSource(seed))
		selector := service.NewFoodSelector(&fakeCatalog{foods: pool}, r.Shuffle)
		foods, err := selector.SelectFoods(context.Background(), "", &service.RequirementSet{}, 10000)
		require.NoError(t, err)
		names := make([]string, len(foods))
		for i, f := range foods {
			names[i] = f.Name
		}
		return names
	}

	assert.Equal(t, pick(42), pick(42))
}
