package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

type staticHolidays []models.Holiday

func (h staticHolidays) Holidays(ctx context.Context) ([]models.Holiday, error) {
	return h, nil
}

func monthOf(year int, month time.Month, days int, total int, available func(day int) int) []models.RoomCategoryDay {
	var out []models.RoomCategoryDay
	for d := 1; d <= days; d++ {
		out = append(out, models.RoomCategoryDay{
			Date:           models.FormatDate(time.Date(year, month, d, 0, 0, 0, 0, time.UTC)),
			CategoryID:     "deluxe",
			TotalRooms:     total,
			AvailableRooms: available(d),
		})
	}
	return out
}

func newTestFacade(dir Directory, now time.Time) *BookingFacade {
	return NewBookingFacade(BookingFacadeOptions{
		Directory: dir,
		Clock:     NewFakeClock(now),
	})
}

func TestBookingFacade_MonthCalendar(t *testing.T) {
	dir := &memoryDirectory{records: monthOf(2024, time.May, 10, 10, func(int) int { return 5 })}
	f := newTestFacade(dir, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	days, err := f.MonthCalendar(context.Background(), 2024, time.May, "deluxe")
	require.NoError(t, err)
	require.Len(t, days, 31)
	assert.InDelta(t, 50.0, days[0].OccupancyRate, 1e-9)
	assert.False(t, days[20].HasData())
}

func TestBookingFacade_CheckConflictsAcrossMonths(t *testing.T) {
	records := append(
		monthOf(2024, time.May, 31, 10, func(d int) int {
			if d == 31 {
				return 0
			}
			return 6
		}),
		monthOf(2024, time.June, 30, 10, func(int) int { return 6 })...,
	)
	dir := &memoryDirectory{records: records}
	f := newTestFacade(dir, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	window, err := models.ParseStayWindow("30/05/2024", "02/06/2024", "deluxe")
	require.NoError(t, err)

	report, alternates, err := f.CheckConflicts(context.Background(), window, 2)
	require.NoError(t, err)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "2024-05-31", report.Conflicts[0].Date)
	require.Len(t, alternates, 2)
	for _, alt := range alternates {
		assert.Zero(t, alt.Bottlenecks)
		assert.NotEqual(t, "2024-05-30", alt.CheckIn)
	}
	assert.Equal(t, "2024-05-16", alternates[0].CheckIn)
	assert.Equal(t, "2024-05-19", alternates[0].CheckOut)
}

func TestBookingFacade_CheckConflictsMissingMonthIsIncomplete(t *testing.T) {
	dir := &memoryDirectory{records: monthOf(2024, time.May, 31, 10, func(int) int { return 6 })}
	f := newTestFacade(dir, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	window, err := models.ParseStayWindow("30/05/2024", "02/06/2024", "deluxe")
	require.NoError(t, err)

	report, _, err := f.CheckConflicts(context.Background(), window, 0)
	require.ErrorIs(t, err, apperrors.ErrIncompleteData)
	assert.Nil(t, report)

	var incomplete *apperrors.IncompleteDataError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"2024-06-01"}, incomplete.Missing)
}

func TestBookingFacade_CheckConflictsEmptyDirectory(t *testing.T) {
	f := newTestFacade(&memoryDirectory{}, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	window, err := models.ParseStayWindow("10/06/2024", "13/06/2024", "deluxe")
	require.NoError(t, err)

	_, _, err = f.CheckConflicts(context.Background(), window, 2)
	var incomplete *apperrors.IncompleteDataError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"2024-06-10", "2024-06-11", "2024-06-12"}, incomplete.Missing)
}

func TestBookingFacade_CheckConflictsReportedNoDataNight(t *testing.T) {
	records := monthOf(2024, time.June, 30, 10, func(int) int { return 6 })
	for i := range records {
		if records[i].Date == "2024-06-11" {
			records[i].TotalRooms, records[i].AvailableRooms = 0, 0
		}
	}
	f := newTestFacade(&memoryDirectory{records: records}, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	window, err := models.ParseStayWindow("10/06/2024", "13/06/2024", "deluxe")
	require.NoError(t, err)

	report, _, err := f.CheckConflicts(context.Background(), window, 0)
	require.NoError(t, err)
	require.Len(t, report.NoDataNights, 1)
	assert.Equal(t, "2024-06-11", report.NoDataNights[0].Date)
	assert.Len(t, report.Nights, 3)
	assert.True(t, report.Safe())
}

func TestBookingFacade_Quote(t *testing.T) {
	dir := &memoryDirectory{categories: []dto.RoomCategoryResponse{{ID: "deluxe", NightlyRate: 2500}}}
	now := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	f := NewBookingFacade(BookingFacadeOptions{
		Directory: dir,
		Clock:     NewFakeClock(now),
		Holidays: staticHolidays{
			{ID: 1, Name: "Quốc khánh", FromDate: "01/09/2024", ToDate: "03/09/2024", Price: 10},
		},
	})

	t.Run("category rate and dates", func(t *testing.T) {
		b, err := f.Quote(context.Background(), dto.QuoteRequest{CategoryID: "DELUXE", CheckIn: "10/08/2024", CheckOut: "13/08/2024"})
		require.NoError(t, err)
		assert.Equal(t, 2500.0, b.NightlyRate)
		assert.Equal(t, 3, b.Nights)
		assert.Equal(t, 8025.0, b.NetPayable)
	})

	t.Run("explicit rate wins", func(t *testing.T) {
		rate := 1000.0
		b, err := f.Quote(context.Background(), dto.QuoteRequest{NightlyRate: &rate, Nights: 2, DiscountPercent: 10})
		require.NoError(t, err)
		assert.Equal(t, 200.0, b.DiscountAmount)
		assert.Equal(t, 1800.0, b.Subtotal)
	})

	t.Run("surcharges", func(t *testing.T) {
		b, err := f.Quote(context.Background(), dto.QuoteRequest{
			CategoryID:      "deluxe",
			CheckIn:         "31/08/2024",
			CheckOut:        "02/09/2024",
			ApplySurcharges: true,
		})
		require.NoError(t, err)
		// 5000 room base + 10% holiday; check-in is a month away so no rush fee
		assert.Equal(t, 5500.0, b.BaseAmount)
	})

	t.Run("rush", func(t *testing.T) {
		b, err := f.Quote(context.Background(), dto.QuoteRequest{
			CategoryID:      "deluxe",
			CheckIn:         "02/08/2024",
			CheckOut:        "03/08/2024",
			ApplySurcharges: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 2625.0, b.BaseAmount)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := f.Quote(context.Background(), dto.QuoteRequest{CategoryID: "villa", Nights: 1})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("no rate source", func(t *testing.T) {
		_, err := f.Quote(context.Background(), dto.QuoteRequest{Nights: 1})
		assert.Equal(t, apperrors.ErrCodeRequiredField, apperrors.CodeOf(err))
	})

	t.Run("reversed dates", func(t *testing.T) {
		_, err := f.Quote(context.Background(), dto.QuoteRequest{CategoryID: "deluxe", CheckIn: "13/08/2024", CheckOut: "10/08/2024"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidWindow)
	})
}

func TestBookingFacade_Settle(t *testing.T) {
	rate := 2500.0
	f := newTestFacade(&memoryDirectory{}, time.Now())

	b, err := f.Settle(context.Background(), dto.SettleRequest{
		QuoteRequest:    dto.QuoteRequest{NightlyRate: &rate, Nights: 3},
		AmountCollected: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, 3025.0, b.AmountDue())
}

func TestBookingFacade_ResolveCategory(t *testing.T) {
	f := newTestFacade(&memoryDirectory{categories: sampleCategories()}, time.Now())
	matches, err := f.ResolveCategory(context.Background(), "suite", 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "ste", matches[0].Category.ID)
}

func TestBookingFacade_DateOccupancy(t *testing.T) {
	dir := &memoryDirectory{records: monthOf(2024, time.May, 3, 10, func(int) int { return 2 })}
	f := newTestFacade(dir, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	day, err := f.DateOccupancy(context.Background(), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), "all")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", day.Date)
	assert.InDelta(t, 80.0, day.OccupancyRate, 1e-9)

	empty, err := f.DateOccupancy(context.Background(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "all")
	require.NoError(t, err)
	assert.False(t, empty.HasData())
}
