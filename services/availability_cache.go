package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/services/logger"
)

const (
	availabilityKeyPrefix = "availability:"
	categoriesKey         = "room_categories:all"
)

// CachedDirectory puts a redis JSON cache in front of a Directory's reads.
// Redis errors never fail a read; the source is used instead.
type CachedDirectory struct {
	Directory
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedDirectory(source Directory, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedDirectory {
	if log == nil {
		log = logger.Nop()
	}
	return &CachedDirectory{Directory: source, rdb: rdb, ttl: ttl, logger: log}
}

func availabilityKey(year int, month time.Month, categoryID string) string {
	if categoryID == "" {
		categoryID = constants.CategoryAll
	}
	return fmt.Sprintf("%s%04d-%02d:%s", availabilityKeyPrefix, year, int(month), strings.ToLower(categoryID))
}

func (c *CachedDirectory) MonthlyAvailability(ctx context.Context, year int, month time.Month, categoryID string) ([]models.RoomCategoryDay, error) {
	key := availabilityKey(year, month, categoryID)
	if c.rdb != nil {
		var cached []models.RoomCategoryDay
		found, err := GetFromRedis(ctx, c.rdb, key, &cached)
		if err != nil {
			c.logger.Warn("Không đọc được cache %s: %v", key, err)
		} else if found {
			return cached, nil
		}
	}
	return c.fetchMonth(ctx, key, year, month, categoryID)
}

func (c *CachedDirectory) Categories(ctx context.Context) ([]dto.RoomCategoryResponse, error) {
	if c.rdb != nil {
		var cached []dto.RoomCategoryResponse
		found, err := GetFromRedis(ctx, c.rdb, categoriesKey, &cached)
		if err != nil {
			c.logger.Warn("Không đọc được cache %s: %v", categoriesKey, err)
		} else if found {
			return cached, nil
		}
	}

	categories, err := c.Directory.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, categoriesKey, categories)
	return categories, nil
}

// Warm reloads the month from the source into the cache.
func (c *CachedDirectory) Warm(ctx context.Context, year int, month time.Month, categoryID string) error {
	_, err := c.fetchMonth(ctx, availabilityKey(year, month, categoryID), year, month, categoryID)
	return err
}

// Invalidate drops every cached availability month.
func (c *CachedDirectory) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	n, err := DeleteByPattern(ctx, c.rdb, availabilityKeyPrefix+"*")
	if err != nil {
		return err
	}
	c.logger.Debug("Đã xóa %d key availability", n)
	return nil
}

// OnOutcome invalidates the cache after each successful mutation.
func (c *CachedDirectory) OnOutcome(outcome models.MutationOutcome) {
	if outcome.State != models.MutationSucceeded {
		return
	}
	if err := c.Invalidate(context.Background()); err != nil {
		c.logger.Warn("Không xóa được cache sau khi cập nhật %s: %v", outcome.Request.TargetID, err)
	}
}

func (c *CachedDirectory) fetchMonth(ctx context.Context, key string, year int, month time.Month, categoryID string) ([]models.RoomCategoryDay, error) {
	records, err := c.Directory.MonthlyAvailability(ctx, year, month, categoryID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, records)
	return records, nil
}

func (c *CachedDirectory) store(ctx context.Context, key string, value interface{}) {
	if c.rdb == nil {
		return
	}
	if err := SetToRedis(ctx, c.rdb, key, value, c.ttl); err != nil {
		c.logger.Warn("Không ghi được cache %s: %v", key, err)
	}
}
