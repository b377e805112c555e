package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/constants"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

func day(date string, total, available int) models.DayOccupancy {
	if total == 0 {
		return models.DayOccupancy{Date: date, StatusBand: constants.BandNoData}
	}
	rate := OccupancyRate(total, available)
	return models.DayOccupancy{
		Date:           date,
		TotalRooms:     total,
		AvailableRooms: available,
		OccupancyRate:  rate,
		StatusBand:     constants.BandFor(rate),
	}
}

func window(t *testing.T, checkIn, checkOut string) models.StayWindow {
	t.Helper()
	in, err := models.ParseDate(checkIn)
	require.NoError(t, err)
	out, err := models.ParseDate(checkOut)
	require.NoError(t, err)
	return models.NewStayWindow(in, out, "")
}

func TestAnalyze_FiveNightsWithOneFullNight(t *testing.T) {
	w := window(t, "2024-05-01", "2024-05-06")
	nights := []models.DayOccupancy{
		day("2024-05-01", 10, 4),
		day("2024-05-02", 10, 4),
		day("2024-05-03", 10, 0),
		day("2024-05-04", 10, 4),
		day("2024-05-05", 10, 4),
	}

	report, err := Analyze(w, nights)
	require.NoError(t, err)

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "2024-05-03", report.Conflicts[0].Date)
	assert.Empty(t, report.Bottlenecks)
	assert.Len(t, report.Nights, 5)
	assert.False(t, report.Safe())
	assert.Contains(t, report.Summary(), "fully booked on 1 night(s)")
}

func TestAnalyze_SafeWhenNothingIsTight(t *testing.T) {
	w := window(t, "2024-05-01", "2024-05-03")
	report, err := Analyze(w, []models.DayOccupancy{
		day("2024-05-01", 10, 9),
		day("2024-05-02", 10, 2),
	})
	require.NoError(t, err)

	assert.True(t, report.Safe())
	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, models.RecommendSafe, report.Recommendations[0].Code)
	assert.Equal(t, "no conflicts, safe to book", report.Summary())
}

func TestAnalyze_ConflictsBeforeBottlenecks(t *testing.T) {
	w := window(t, "2024-05-01", "2024-05-04")
	report, err := Analyze(w, []models.DayOccupancy{
		day("2024-05-01", 10, 1),
		day("2024-05-02", 10, 0),
		day("2024-05-03", 20, 1),
	})
	require.NoError(t, err)

	assert.Len(t, report.Conflicts, 1)
	assert.Len(t, report.Bottlenecks, 2)
	require.Len(t, report.Recommendations, 2)
	assert.Equal(t, models.RecommendFullyBooked, report.Recommendations[0].Code)
	assert.Equal(t, models.RecommendLimited, report.Recommendations[1].Code)
	assert.Equal(t, "fully booked on 1 night(s), suggest alternate dates; limited availability on 2 night(s), book promptly", report.Summary())
}

func TestAnalyze_BottleneckBoundary(t *testing.T) {
	w := window(t, "2024-05-01", "2024-05-04")
	nights := []models.DayOccupancy{
		day("2024-05-01", 10, 1),   // exactly 90%, one room left
		day("2024-05-02", 100, 11), // 89%
		day("2024-05-03", 20, 2),   // 90% again
	}

	report, err := Analyze(w, nights)
	require.NoError(t, err)
	require.Len(t, report.Bottlenecks, 2)
	assert.Equal(t, "2024-05-01", report.Bottlenecks[0].Date)
	assert.Equal(t, "2024-05-03", report.Bottlenecks[1].Date)
	assert.Equal(t, constants.BandHigh, report.Bottlenecks[0].StatusBand)
	assert.Empty(t, report.Conflicts)
	assert.Contains(t, report.Summary(), "limited availability on 2 night(s)")
}

func TestAnalyze_NoDataNightsAreNotConflicts(t *testing.T) {
	w := window(t, "2024-05-01", "2024-05-03")
	report, err := Analyze(w, []models.DayOccupancy{
		day("2024-05-01", 0, 0),
		day("2024-05-02", 10, 5),
	})
	require.NoError(t, err)

	assert.Empty(t, report.Conflicts)
	require.Len(t, report.NoDataNights, 1)
	assert.Equal(t, "2024-05-01", report.NoDataNights[0].Date)
}

func TestAnalyze_IncompleteData(t *testing.T) {
	w := window(t, "2024-05-01", "2024-05-04")

	t.Run("missing night", func(t *testing.T) {
		_, err := Analyze(w, []models.DayOccupancy{
			day("2024-05-01", 10, 5),
			day("2024-05-03", 10, 5),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrIncompleteData)

		var incomplete *apperrors.IncompleteDataError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, []string{"2024-05-02"}, incomplete.Missing)
	})

	t.Run("duplicated night", func(t *testing.T) {
		_, err := Analyze(w, []models.DayOccupancy{
			day("2024-05-01", 10, 5),
			day("2024-05-02", 10, 5),
			day("2024-05-02", 10, 0),
			day("2024-05-03", 10, 5),
		})
		var incomplete *apperrors.IncompleteDataError
		require.ErrorAs(t, err, &incomplete)
		assert.Empty(t, incomplete.Missing)
		assert.Equal(t, []string{"2024-05-02"}, incomplete.Duplicated)
	})

	t.Run("entries outside the window are ignored", func(t *testing.T) {
		report, err := Analyze(w, []models.DayOccupancy{
			day("2024-04-30", 10, 0),
			day("2024-05-01", 10, 5),
			day("2024-05-02", 10, 5),
			day("2024-05-03", 10, 5),
			day("2024-05-04", 10, 0),
		})
		require.NoError(t, err)
		assert.True(t, report.Safe())
	})
}

func TestAnalyze_InvalidWindow(t *testing.T) {
	in := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	w := models.NewStayWindow(in, in, "all")

	_, err := Analyze(w, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidWindow)
}

// Lowering availability on any night never removes a conflict.
func TestAnalyze_ConflictsAreMonotone(t *testing.T) {
	w := window(t, "2024-05-01", "2024-05-04")
	base := []models.DayOccupancy{
		day("2024-05-01", 10, 3),
		day("2024-05-02", 10, 0),
		day("2024-05-03", 10, 6),
	}
	before, err := Analyze(w, base)
	require.NoError(t, err)

	for i := range base {
		for avail := base[i].AvailableRooms; avail >= 0; avail-- {
			tighter := make([]models.DayOccupancy, len(base))
			copy(tighter, base)
			tighter[i] = day(base[i].Date, 10, avail)

			after, err := Analyze(w, tighter)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(after.Conflicts), len(before.Conflicts))
		}
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name        string
		conflicts   int
		bottlenecks int
		codes       []string
	}{
		{"clean", 0, 0, []string{models.RecommendSafe}},
		{"conflicts only", 2, 0, []string{models.RecommendFullyBooked}},
		{"bottlenecks only", 0, 3, []string{models.RecommendLimited}},
		{"both", 1, 1, []string{models.RecommendFullyBooked, models.RecommendLimited}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend(tt.conflicts, tt.bottlenecks)
			var codes []string
			for _, r := range recs {
				codes = append(codes, r.Code)
			}
			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestSuggestAlternateWindows(t *testing.T) {
	month := []models.DayOccupancy{
		day("2024-05-05", 10, 5),
		day("2024-05-01", 10, 5),
		day("2024-05-02", 10, 0),
		day("2024-05-03", 10, 1),
		day("2024-05-04", 10, 5),
		day("2024-05-06", 0, 0),
		day("2024-05-07", 10, 5),
	}

	got := SuggestAlternateWindows(month, 2, 0)
	assert.Equal(t, []models.AlternateWindow{
		{CheckIn: "2024-05-04", CheckOut: "2024-05-06", Bottlenecks: 0},
		{CheckIn: "2024-05-03", CheckOut: "2024-05-05", Bottlenecks: 1},
	}, got)

	assert.Len(t, SuggestAlternateWindows(month, 2, 1), 1)
	assert.Nil(t, SuggestAlternateWindows(month, 0, 5))
	assert.Nil(t, SuggestAlternateWindows(month[:1], 2, 5))
}
