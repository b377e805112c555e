package services

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"frontdesk/dto"
)

const lastQueryTTL = 30 * time.Minute

func lastQueryKey(sessionID string) string {
	return "last_conflict_query:" + sessionID
}

// SaveLastQuery nhớ truy vấn xung đột gần nhất của phiên
func SaveLastQuery(ctx context.Context, rdb *redis.Client, sessionID string, query dto.ConflictQuery) error {
	if rdb == nil || sessionID == "" {
		return nil
	}
	return SetToRedis(ctx, rdb, lastQueryKey(sessionID), query, lastQueryTTL)
}

// GetLastQuery trả về nil khi phiên chưa có truy vấn nào
func GetLastQuery(ctx context.Context, rdb *redis.Client, sessionID string) (*dto.ConflictQuery, error) {
	if rdb == nil || sessionID == "" {
		return nil, nil
	}
	var query dto.ConflictQuery
	found, err := GetFromRedis(ctx, rdb, lastQueryKey(sessionID), &query)
	if err != nil || !found {
		return nil, err
	}
	return &query, nil
}

func ClearLastQuery(ctx context.Context, rdb *redis.Client, sessionID string) error {
	if rdb == nil {
		return nil
	}
	return DeleteFromRedis(ctx, rdb, lastQueryKey(sessionID))
}

// Merge truy vấn cũ với truy vấn mới: trường trống lấy giá trị cũ
func MergeQuery(old *dto.ConflictQuery, new dto.ConflictQuery) dto.ConflictQuery {
	if old == nil {
		return new
	}
	new.CheckIn = orString(new.CheckIn, old.CheckIn)
	new.CheckOut = orString(new.CheckOut, old.CheckOut)
	new.CategoryID = orString(new.CategoryID, old.CategoryID)
	if new.Alternates == 0 {
		new.Alternates = old.Alternates
	}
	return new
}

func orString(newVal, oldVal string) string {
	if strings.TrimSpace(newVal) != "" {
		return newVal
	}
	return oldVal
}
