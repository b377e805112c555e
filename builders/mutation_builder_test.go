package builders

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/constants"
	apperrors "frontdesk/errors"
)

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
}

func TestMutationBuilder_Build(t *testing.T) {
	req, err := NewMutationBuilder(fixedNow).
		WithTarget(" room-12 ").
		WithKind(constants.MutationCheckIn).
		WithDesiredState("Checked-In").
		WithNotes(" late arrival ").
		WithOrigin("desk-1").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "room-12", req.TargetID)
	assert.Equal(t, constants.StateCheckedIn, req.DesiredState)
	assert.Equal(t, "late arrival", req.Notes)
	assert.Equal(t, "desk-1", req.Origin)
	assert.Equal(t, fixedNow(), req.IssuedAt)
	_, err = uuid.Parse(req.IdempotencyKey)
	assert.NoError(t, err)
}

func TestMutationBuilder_KeepsClientKey(t *testing.T) {
	req, err := NewMutationBuilder(fixedNow).
		WithTarget("7").
		WithDesiredState(constants.StateCleaning).
		WithIdempotencyKey("abc").
		Build()
	require.NoError(t, err)
	assert.Equal(t, constants.MutationStatus, req.Kind)
	assert.Equal(t, "abc", req.IdempotencyKey)
}

func TestMutationBuilder_FreshKeyPerBuild(t *testing.T) {
	b := NewMutationBuilder(nil).WithTarget("7").WithDesiredState(constants.StateAvailable)
	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)
	assert.NotEqual(t, first.IdempotencyKey, second.IdempotencyKey)
}

func TestMutationBuilder_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		code  apperrors.ErrorCode
	}{
		{"missing target", func() error {
			_, err := NewMutationBuilder(fixedNow).WithDesiredState(constants.StateAvailable).Build()
			return err
		}, apperrors.ErrCodeRequiredField},
		{"unknown state", func() error {
			_, err := NewMutationBuilder(fixedNow).WithTarget("1").WithDesiredState("flooded").Build()
			return err
		}, apperrors.ErrCodeValidation},
		{"check-in to available", func() error {
			_, err := NewMutationBuilder(fixedNow).WithTarget("1").WithKind(constants.MutationCheckIn).WithDesiredState(constants.StateAvailable).Build()
			return err
		}, apperrors.ErrCodeValidation},
		{"check-out to occupied", func() error {
			_, err := NewMutationBuilder(fixedNow).WithTarget("1").WithKind(constants.MutationCheckOut).WithDesiredState(constants.StateOccupied).Build()
			return err
		}, apperrors.ErrCodeValidation},
		{"unknown kind", func() error {
			_, err := NewMutationBuilder(fixedNow).WithTarget("1").WithKind("move").WithDesiredState(constants.StateAvailable).Build()
			return err
		}, apperrors.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.CodeOf(err))
		})
	}
}
