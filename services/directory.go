package services

import (
	"context"
	"time"

	"frontdesk/dto"
	"frontdesk/models"
)

// AvailabilitySource yields raw inventory rows for a calendar month.
type AvailabilitySource interface {
	MonthlyAvailability(ctx context.Context, year int, month time.Month, categoryID string) ([]models.RoomCategoryDay, error)
}

// Directory is the booking directory as seen by the console: the remote
// HTTP API or the local database.
type Directory interface {
	AvailabilitySource
	Dispatcher
	DateDetail(ctx context.Context, date string) (*dto.DateDetail, error)
	Categories(ctx context.Context) ([]dto.RoomCategoryResponse, error)
}

// ScopeChecker decides whether an operator may mutate a target.
type ScopeChecker interface {
	CheckScope(ctx context.Context, operatorID uint, targetID string) error
}

type tokenKey struct{}

// WithToken attaches the operator's token to ctx for directory reads.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the token set by WithToken, if any.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
