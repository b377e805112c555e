package services

import (
	"fmt"
	"sort"

	"frontdesk/constants"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

// Analyze classifies every night of the window. perNight must hold exactly
// one entry for each night in [checkIn, checkOut); entries outside the window
// are ignored.
func Analyze(window models.StayWindow, perNight []models.DayOccupancy) (*models.ConflictReport, error) {
	if !window.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidWindow, "ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	nightDates := window.NightDates()
	wanted := make(map[string]bool, len(nightDates))
	for _, d := range nightDates {
		wanted[d] = true
	}

	byDate := make(map[string]models.DayOccupancy, len(nightDates))
	var duplicated []string
	for _, day := range perNight {
		date := normalizeDate(day.Date)
		if !wanted[date] {
			continue
		}
		if _, seen := byDate[date]; seen {
			duplicated = append(duplicated, date)
			continue
		}
		byDate[date] = day
	}

	var missing []string
	for _, d := range nightDates {
		if _, ok := byDate[d]; !ok {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 || len(duplicated) > 0 {
		sort.Strings(duplicated)
		return nil, &apperrors.IncompleteDataError{Missing: missing, Duplicated: duplicated}
	}

	report := &models.ConflictReport{
		Window:       window,
		Nights:       make([]models.DayOccupancy, 0, len(nightDates)),
		Conflicts:    []models.DayOccupancy{},
		Bottlenecks:  []models.DayOccupancy{},
		NoDataNights: []models.DayOccupancy{},
	}
	for _, d := range nightDates {
		day := byDate[d]
		report.Nights = append(report.Nights, day)
		switch {
		case !day.HasData():
			report.NoDataNights = append(report.NoDataNights, day)
		case isConflict(day):
			report.Conflicts = append(report.Conflicts, day)
		case isBottleneck(day):
			report.Bottlenecks = append(report.Bottlenecks, day)
		}
	}
	report.Recommendations = Recommend(len(report.Conflicts), len(report.Bottlenecks))
	return report, nil
}

// Recommend depends only on the two counts. Conflicts come first.
func Recommend(conflicts, bottlenecks int) []models.Recommendation {
	if conflicts == 0 && bottlenecks == 0 {
		return []models.Recommendation{{Code: models.RecommendSafe, Message: "no conflicts, safe to book"}}
	}
	var recs []models.Recommendation
	if conflicts > 0 {
		recs = append(recs, models.Recommendation{
			Code:    models.RecommendFullyBooked,
			Message: fmt.Sprintf("fully booked on %d night(s), suggest alternate dates", conflicts),
		})
	}
	if bottlenecks > 0 {
		recs = append(recs, models.Recommendation{
			Code:    models.RecommendLimited,
			Message: fmt.Sprintf("limited availability on %d night(s), book promptly", bottlenecks),
		})
	}
	return recs
}

// SuggestAlternateWindows scans occupancy for runs of consecutive nights of
// the given length that contain no conflict and no missing data. Results are
// ordered by fewest bottlenecks, then earliest check-in. limit <= 0 returns all.
func SuggestAlternateWindows(occupancy []models.DayOccupancy, nights, limit int) []models.AlternateWindow {
	if nights <= 0 || len(occupancy) < nights {
		return nil
	}

	days := make([]models.DayOccupancy, len(occupancy))
	copy(days, occupancy)
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	var out []models.AlternateWindow
	for start := 0; start+nights <= len(days); start++ {
		first, err := models.ParseDate(normalizeDate(days[start].Date))
		if err != nil {
			continue
		}

		ok := true
		bottlenecks := 0
		for i := 0; i < nights; i++ {
			day := days[start+i]
			if normalizeDate(day.Date) != models.FormatDate(first.AddDate(0, 0, i)) {
				ok = false
				break
			}
			if !day.HasData() || isConflict(day) {
				ok = false
				break
			}
			if isBottleneck(day) {
				bottlenecks++
			}
		}
		if !ok {
			continue
		}
		out = append(out, models.AlternateWindow{
			CheckIn:     models.FormatDate(first),
			CheckOut:    models.FormatDate(first.AddDate(0, 0, nights)),
			Bottlenecks: bottlenecks,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Bottlenecks != out[j].Bottlenecks {
			return out[i].Bottlenecks < out[j].Bottlenecks
		}
		return out[i].CheckIn < out[j].CheckIn
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func isConflict(day models.DayOccupancy) bool {
	return day.HasData() && day.AvailableRooms == 0
}

func isBottleneck(day models.DayOccupancy) bool {
	return day.HasData() && day.AvailableRooms > 0 && day.OccupancyRate >= constants.BottleneckMinRate
}
