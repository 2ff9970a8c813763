package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/poshan-ai/backend/internal/models"
)

const seasonalCacheTTL = 15 * time.Minute

// FoodService is the catalog store backed by the database, with an optional
// Redis cache in front of the seasonal listing. A nil Redis client disables
// caching.
type FoodService struct {
	db    *gorm.DB
	redis *redis.Client
}

// Ensure FoodService implements CatalogStore
var _ CatalogStore = (*FoodService)(nil)

func NewFoodService(db *gorm.DB, redisClient *redis.Client) *FoodService {
	return &FoodService{
		db:    db,
		redis: redisClient,
	}
}

// GetFood retrieves a single catalog record by ID.
func (s *FoodService) GetFood(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// ListFoods returns all available catalog foods.
func (s *FoodService) ListFoods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.WithContext(ctx).Where("is_available = ?", true).Order("name").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// QueryAvailable returns available foods filtered by season and category
// sets. An empty season skips the season filter; empty category slices skip
// the respective filter.
func (s *FoodService) QueryAvailable(ctx context.Context, season string, categoryIn, categoryNotIn []string) ([]models.Food, error) {
	query := s.db.WithContext(ctx).Where("is_available = ?", true)
	if season != "" {
		query = query.Where("season = ? OR season = ?", season, models.SeasonAll)
	}
	if len(categoryIn) > 0 {
		query = query.Where("category IN ?", categoryIn)
	}
	if len(categoryNotIn) > 0 {
		query = query.Where("category NOT IN ?", categoryNotIn)
	}

	var foods []models.Food
	if err := query.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// SeasonalFoods lists available foods for a season, serving from the Redis
// cache when possible.
func (s *FoodService) SeasonalFoods(ctx context.Context, season string) ([]models.Food, error) {
	key := fmt.Sprintf("foods:seasonal:%s", season)

	if s.redis != nil {
		data, err := s.redis.Get(ctx, key).Bytes()
		if err == nil {
			var foods []models.Food
			if err := json.Unmarshal(data, &foods); err == nil {
				return foods, nil
			}
		}
	}

	foods, err := s.QueryAvailable(ctx, season, nil, nil)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		data, err := json.Marshal(foods)
		if err == nil {
			if err := s.redis.Set(ctx, key, data, seasonalCacheTTL).Err(); err != nil {
				log.Printf("[FoodService] failed to cache seasonal foods: %v", err)
			}
		}
	}

	return foods, nil
}
