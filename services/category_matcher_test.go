package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/dto"
)

func sampleCategories() []dto.RoomCategoryResponse {
	return []dto.RoomCategoryResponse{
		{ID: "std", Name: "Phòng tiêu chuẩn", NightlyRate: 800},
		{ID: "dlx", Name: "Phòng Deluxe", NightlyRate: 1500},
		{ID: "ste", Name: "Suite hướng biển", NightlyRate: 2500},
	}
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "phong tieu chuan", normalizeInput("  Phòng Tiêu Chuẩn "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.Equal(t, 1.0, calculateSimilarity("suite", "suite"))
	// substitutions cost 2 with the default options
	assert.InDelta(t, 0.6, calculateSimilarity("suite", "suits"), 1e-9)
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"exact id", "dlx", "dlx"},
		{"accented name", "Phòng Deluxe", "dlx"},
		{"unaccented name", "phong deluxe", "dlx"},
		{"typo", "suite huong bein", "ste"},
		{"partial", "deluxe", "dlx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := ResolveCategory(tt.query, sampleCategories(), 1)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.want, matches[0].Category.ID)
		})
	}
}

func TestResolveCategory_NoMatch(t *testing.T) {
	assert.Empty(t, ResolveCategory("xyzzy", sampleCategories(), 3))
	assert.Nil(t, ResolveCategory("   ", sampleCategories(), 3))
	assert.Nil(t, ResolveCategory("suite", nil, 3))
}
