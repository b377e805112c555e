package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

// Aggregate turns raw inventory rows into one DayOccupancy per date present
// in records, sorted by date. A date whose rows all belong to other
// categories yields a no-data day.
func Aggregate(records []models.RoomCategoryDay, categoryFilter string) ([]models.DayOccupancy, error) {
	sums, err := sumByDate(records, categoryFilter)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(sums))
	for date := range sums {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]models.DayOccupancy, 0, len(dates))
	for _, date := range dates {
		out = append(out, sums[date].occupancy(date))
	}
	return out, nil
}

// AggregateRange returns one DayOccupancy for every day in [from, to].
func AggregateRange(records []models.RoomCategoryDay, categoryFilter string, from, to time.Time) ([]models.DayOccupancy, error) {
	from, to = models.TruncateDay(from), models.TruncateDay(to)
	if to.Before(from) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidWindow, "ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	sums, err := sumByDate(records, categoryFilter)
	if err != nil {
		return nil, err
	}

	var out []models.DayOccupancy
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := models.FormatDate(day)
		if s, ok := sums[date]; ok {
			out = append(out, s.occupancy(date))
			continue
		}
		out = append(out, models.NoDataDay(date))
	}
	return out, nil
}

// AggregateMonth covers every day of the calendar month.
func AggregateMonth(records []models.RoomCategoryDay, categoryFilter string, year int, month time.Month) ([]models.DayOccupancy, error) {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	return AggregateRange(records, categoryFilter, firstDay, lastDay)
}

// OccupancyFromDateDetails flattens date-detail payloads into inventory rows
// and aggregates them.
func OccupancyFromDateDetails(details []dto.DateDetail, categoryFilter string) ([]models.DayOccupancy, error) {
	var records []models.RoomCategoryDay
	for _, d := range details {
		if len(d.RoomTypes) == 0 {
			// keep the date visible so it surfaces as no-data rather than missing
			records = append(records, models.RoomCategoryDay{Date: d.Date})
			continue
		}
		for _, rt := range d.RoomTypes {
			records = append(records, models.RoomCategoryDay{
				Date:           d.Date,
				CategoryID:     rt.CategoryID,
				TotalRooms:     rt.TotalRooms,
				AvailableRooms: rt.AvailableRooms,
			})
		}
	}
	return Aggregate(records, categoryFilter)
}

// OccupancyRate is the share of unavailable rooms, in percent.
func OccupancyRate(total, available int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(total-available) / float64(total) * 100
}

type daySum struct {
	total     int
	available int
	matched   bool
}

func (s daySum) occupancy(date string) models.DayOccupancy {
	if !s.matched || s.total == 0 {
		return models.DayOccupancy{
			Date:           date,
			TotalRooms:     s.total,
			AvailableRooms: s.available,
			StatusBand:     constants.BandNoData,
		}
	}
	rate := OccupancyRate(s.total, s.available)
	return models.DayOccupancy{
		Date:           date,
		TotalRooms:     s.total,
		AvailableRooms: s.available,
		OccupancyRate:  rate,
		StatusBand:     constants.BandFor(rate),
	}
}

func sumByDate(records []models.RoomCategoryDay, categoryFilter string) (map[string]daySum, error) {
	all := isAllCategories(categoryFilter)
	sums := make(map[string]daySum)

	for i, r := range records {
		if err := validateRecord(i, r); err != nil {
			return nil, err
		}
		date := normalizeDate(r.Date)
		s := sums[date]
		if r.CategoryID != "" && (all || r.CategoryID == categoryFilter) {
			s.total += r.TotalRooms
			s.available += r.AvailableRooms
			s.matched = true
		}
		sums[date] = s
	}
	return sums, nil
}

func validateRecord(i int, r models.RoomCategoryDay) error {
	if _, err := models.ParseDate(normalizeDate(r.Date)); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidInventory, fmt.Sprintf("record %d: ngày không hợp lệ %q", i, r.Date), err)
	}
	if r.TotalRooms < 0 {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidInventory, fmt.Sprintf("record %d: totalRooms âm (%d)", i, r.TotalRooms), nil)
	}
	if r.AvailableRooms < 0 || r.AvailableRooms > r.TotalRooms {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidInventory,
			fmt.Sprintf("record %d: availableRooms %d ngoài khoảng [0,%d]", i, r.AvailableRooms, r.TotalRooms), nil)
	}
	return nil
}

func isAllCategories(filter string) bool {
	f := strings.TrimSpace(filter)
	return f == "" || strings.EqualFold(f, constants.CategoryAll)
}

// normalizeDate accepts ISO dates and full RFC3339 timestamps.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > len(models.DateLayout) && s[len(models.DateLayout)] == 'T' {
		return s[:len(models.DateLayout)]
	}
	return s
}
