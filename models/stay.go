package models

import (
	"fmt"
	"strings"
	"time"

	"frontdesk/constants"
)

// StayWindow là khoảng lưu trú khách yêu cầu
type StayWindow struct {
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	CategoryID string    `json:"categoryId"`
}

// NewStayWindow normalizes both ends to calendar days. An empty category means all.
func NewStayWindow(checkIn, checkOut time.Time, categoryID string) StayWindow {
	if categoryID == "" {
		categoryID = constants.CategoryAll
	}
	return StayWindow{
		CheckIn:    TruncateDay(checkIn),
		CheckOut:   TruncateDay(checkOut),
		CategoryID: categoryID,
	}
}

// ParseStayWindow builds a window from operator input dates.
func ParseStayWindow(checkIn, checkOut, categoryID string) (StayWindow, error) {
	in, err := ParseInputDate(strings.TrimSpace(checkIn))
	if err != nil {
		return StayWindow{}, fmt.Errorf("checkIn %q: %w", checkIn, err)
	}
	out, err := ParseInputDate(strings.TrimSpace(checkOut))
	if err != nil {
		return StayWindow{}, fmt.Errorf("checkOut %q: %w", checkOut, err)
	}
	return NewStayWindow(in, out, categoryID), nil
}

// Nights is the whole-day difference between check-in and check-out.
func (w StayWindow) Nights() int {
	return int(TruncateDay(w.CheckOut).Sub(TruncateDay(w.CheckIn)).Hours() / 24)
}

// Valid reports checkOut > checkIn by at least one night.
func (w StayWindow) Valid() bool {
	return w.Nights() >= 1
}

// NightDates lists every night in [checkIn, checkOut) as ISO dates.
func (w StayWindow) NightDates() []string {
	n := w.Nights()
	if n <= 0 {
		return nil
	}
	dates := make([]string, 0, n)
	start := TruncateDay(w.CheckIn)
	for i := 0; i < n; i++ {
		dates = append(dates, FormatDate(start.AddDate(0, 0, i)))
	}
	return dates
}

// Contains reports whether the night at date falls inside the window.
func (w StayWindow) Contains(date time.Time) bool {
	d := TruncateDay(date)
	return !d.Before(TruncateDay(w.CheckIn)) && d.Before(TruncateDay(w.CheckOut))
}

// Recommendation codes
const (
	RecommendSafe        = "safe_to_book"
	RecommendFullyBooked = "fully_booked"
	RecommendLimited     = "limited_availability"
)

// Recommendation là một gợi ý cho lễ tân
type Recommendation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConflictReport là kết quả phân tích xung đột cho một khoảng lưu trú
type ConflictReport struct {
	Window          StayWindow       `json:"window"`
	Nights          []DayOccupancy   `json:"nights"`
	Conflicts       []DayOccupancy   `json:"conflicts"`
	Bottlenecks     []DayOccupancy   `json:"bottlenecks"`
	NoDataNights    []DayOccupancy   `json:"noDataNights"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Safe reports whether the report carries no warning.
func (r *ConflictReport) Safe() bool {
	return len(r.Conflicts) == 0 && len(r.Bottlenecks) == 0
}

// Summary joins the recommendation messages in order.
func (r *ConflictReport) Summary() string {
	msgs := make([]string, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		msgs = append(msgs, rec.Message)
	}
	return strings.Join(msgs, "; ")
}

// AlternateWindow là một khoảng lưu trú thay thế được gợi ý
type AlternateWindow struct {
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Bottlenecks int    `json:"bottlenecks"`
}
