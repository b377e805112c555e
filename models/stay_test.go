package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/constants"
)

func TestStayWindow(t *testing.T) {
	in := time.Date(2024, 5, 30, 14, 0, 0, 0, time.UTC)
	w := NewStayWindow(in, in.AddDate(0, 0, 3), "")

	assert.Equal(t, constants.CategoryAll, w.CategoryID)
	assert.Equal(t, 3, w.Nights())
	assert.True(t, w.Valid())
	assert.Equal(t, []string{"2024-05-30", "2024-05-31", "2024-06-01"}, w.NightDates())
	assert.True(t, w.Contains(in.AddDate(0, 0, 2)))
	assert.False(t, w.Contains(in.AddDate(0, 0, 3)))
}

func TestStayWindow_Invalid(t *testing.T) {
	in := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	w := NewStayWindow(in, in, "deluxe")
	assert.False(t, w.Valid())
	assert.Nil(t, w.NightDates())

	backwards := NewStayWindow(in, in.AddDate(0, 0, -2), "deluxe")
	assert.False(t, backwards.Valid())
}

func TestParseStayWindow(t *testing.T) {
	w, err := ParseStayWindow("30/05/2024", "2024-06-02", "deluxe")
	require.NoError(t, err)
	assert.Equal(t, 3, w.Nights())
	assert.Equal(t, "deluxe", w.CategoryID)

	_, err = ParseStayWindow("30-05-2024", "02/06/2024", "")
	assert.Error(t, err)
	_, err = ParseStayWindow("30/05/2024", "", "")
	assert.Error(t, err)
}

func TestConflictReport_Summary(t *testing.T) {
	r := &ConflictReport{Recommendations: []Recommendation{
		{Code: RecommendFullyBooked, Message: "a"},
		{Code: RecommendLimited, Message: "b"},
	}, Conflicts: []DayOccupancy{{Date: "2024-05-01"}}}
	assert.Equal(t, "a; b", r.Summary())
	assert.False(t, r.Safe())
}

func TestBillingBreakdown_Derived(t *testing.T) {
	b := BillingBreakdown{NetPayable: 100.25, AmountPaid: 40}
	assert.Equal(t, 60.25, b.AmountDue())
	assert.Zero(t, b.ChangeDue())

	b.AmountPaid = 150
	assert.Zero(t, b.AmountDue())
	assert.Equal(t, 49.75, b.ChangeDue())
}

func TestHolidayOverlaps(t *testing.T) {
	h := Holiday{ID: 1, Name: "Quốc khánh", FromDate: "01/09/2030", ToDate: "03/09/2030", Price: 20}
	in := NewStayWindow(time.Date(2030, 8, 31, 0, 0, 0, 0, time.UTC), time.Date(2030, 9, 2, 0, 0, 0, 0, time.UTC), "all")
	out := NewStayWindow(time.Date(2030, 9, 5, 0, 0, 0, 0, time.UTC), time.Date(2030, 9, 7, 0, 0, 0, 0, time.UTC), "all")

	ok, err := h.Overlaps(in)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Overlaps(out)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Holiday{FromDate: "2030-09-01", ToDate: "03/09/2030"}.Overlaps(in)
	assert.Error(t, err)
}
