package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	venueRepo "mandapbook/database/repository/venue"
	"mandapbook/models"
	"mandapbook/utils"
)

// ListVenues returns a page of the public catalog, served from Redis when
// the page was listed recently. The cache is best effort: a Redis failure
// falls through to Mongo and only logs.
func (s *DefaultVenueService) ListVenues(page, limit int) ([]models.Venue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client := utils.GetCacheClient()
	key := fmt.Sprintf("%sactive:%d:%d", utils.VenueCachePrefix, page, limit)

	if client != nil {
		if cached, err := client.Get(ctx, key).Result(); err == nil {
			var venues []models.Venue
			if err := json.Unmarshal([]byte(cached), &venues); err == nil {
				return venues, nil
			}
		}
	}

	venues, err := s.Repo.GetAllActive(page, limit)
	if err != nil {
		return nil, err
	}

	if client != nil {
		if data, err := json.Marshal(venues); err == nil {
			if err := client.Set(ctx, key, data, utils.VenueCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("venue listing cache write failed", zap.Error(err))
			}
		}
	}
	return venues, nil
}

// SearchVenues runs a filtered catalog query. Search results are not
// cached; the criteria space is too wide to get useful hit rates.
func (s *DefaultVenueService) SearchVenues(criteria venueRepo.VenueSearchCriteria, page, limit int) ([]models.Venue, error) {
	if criteria.AvailableOn != "" {
		day, err := models.ParseDay(criteria.AvailableOn)
		if err != nil {
			return nil, utils.Validationf("invalid availableOn date: %v", err)
		}
		criteria.AvailableOn = day
	}
	return s.Repo.Search(criteria, page, limit)
}

// invalidateListings drops every cached catalog page after a mutation.
func (s *DefaultVenueService) invalidateListings() {
	client := utils.GetCacheClient()
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	iter := client.Scan(ctx, 0, utils.VenueCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Warn("venue cache invalidation failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("venue cache scan failed", zap.Error(err))
	}
}
