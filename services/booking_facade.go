package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"
)

// AlternateSearchDays là số ngày quét trước và sau khoảng lưu trú khi gợi ý
const AlternateSearchDays = 14

// HolidaySource lists holidays for surcharge pricing.
type HolidaySource interface {
	Holidays(ctx context.Context) ([]models.Holiday, error)
}

// BookingFacade đơn giản hóa việc tương tác giữa directory và các bước
// tính toán: lịch tháng, xung đột, báo giá.
type BookingFacade struct {
	directory  Directory
	calculator *Calculator
	holidays   HolidaySource
	clock      Clock
	logger     logger.Logger
}

type BookingFacadeOptions struct {
	Directory  Directory
	Calculator *Calculator
	Holidays   HolidaySource
	Clock      Clock
	Logger     logger.Logger
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	if opts.Calculator == nil {
		opts.Calculator = DefaultCalculator()
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &BookingFacade{
		directory:  opts.Directory,
		calculator: opts.Calculator,
		holidays:   opts.Holidays,
		clock:      opts.Clock,
		logger:     opts.Logger,
	}
}

// Calculator exposes the configured billing calculator.
func (f *BookingFacade) Calculator() *Calculator {
	return f.calculator
}

// MonthCalendar returns one DayOccupancy per day of the month.
func (f *BookingFacade) MonthCalendar(ctx context.Context, year int, month time.Month, categoryID string) ([]models.DayOccupancy, error) {
	records, err := f.directory.MonthlyAvailability(ctx, year, month, categoryID)
	if err != nil {
		return nil, err
	}
	return AggregateMonth(records, categoryID, year, month)
}

// RangeOccupancy returns one DayOccupancy per day in [from, to], reading
// every month the range touches.
func (f *BookingFacade) RangeOccupancy(ctx context.Context, from, to time.Time, categoryID string) ([]models.DayOccupancy, error) {
	from, to = models.TruncateDay(from), models.TruncateDay(to)
	if to.Before(from) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidWindow, "ngày kết thúc phải sau ngày bắt đầu", nil)
	}
	records, err := f.recordsBetween(ctx, from, to, categoryID)
	if err != nil {
		return nil, err
	}
	return AggregateRange(records, categoryID, from, to)
}

// NightlyOccupancy returns the nights of the window the directory actually
// reported. Nights it never returned are left out so Analyze reports them
// as missing instead of no-data.
func (f *BookingFacade) NightlyOccupancy(ctx context.Context, window models.StayWindow) ([]models.DayOccupancy, error) {
	if !window.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidWindow, "ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	from, to := models.TruncateDay(window.CheckIn), models.TruncateDay(window.CheckOut).AddDate(0, 0, -1)
	records, err := f.recordsBetween(ctx, from, to, window.CategoryID)
	if err != nil {
		return nil, err
	}
	days, err := Aggregate(records, window.CategoryID)
	if err != nil {
		return nil, err
	}
	first, last := models.FormatDate(from), models.FormatDate(to)
	var nights []models.DayOccupancy
	for _, d := range days {
		if d.Date >= first && d.Date <= last {
			nights = append(nights, d)
		}
	}
	return nights, nil
}

func (f *BookingFacade) recordsBetween(ctx context.Context, from, to time.Time, categoryID string) ([]models.RoomCategoryDay, error) {
	var records []models.RoomCategoryDay
	month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(to) {
		batch, err := f.directory.MonthlyAvailability(ctx, month.Year(), month.Month(), categoryID)
		if err != nil {
			return nil, err
		}
		records = append(records, batch...)
		month = month.AddDate(0, 1, 0)
	}
	return records, nil
}

// CheckConflicts analyzes the window and, when it is not safe and
// alternates > 0, suggests windows of the same length nearby.
func (f *BookingFacade) CheckConflicts(ctx context.Context, window models.StayWindow, alternates int) (*models.ConflictReport, []models.AlternateWindow, error) {
	nights, err := f.NightlyOccupancy(ctx, window)
	if err != nil {
		return nil, nil, err
	}
	report, err := Analyze(window, nights)
	if err != nil {
		return nil, nil, err
	}
	if alternates <= 0 || report.Safe() {
		return report, nil, nil
	}

	from := window.CheckIn.AddDate(0, 0, -AlternateSearchDays)
	if today := models.TruncateDay(f.clock.Now()); from.Before(today) {
		from = today
	}
	to := window.CheckOut.AddDate(0, 0, AlternateSearchDays)
	span, err := f.RangeOccupancy(ctx, from, to, window.CategoryID)
	if err != nil {
		f.logger.Warn("Không lấy được dữ liệu gợi ý khoảng thay thế: %v", err)
		return report, nil, nil
	}

	original := models.FormatDate(window.CheckIn)
	var out []models.AlternateWindow
	for _, alt := range SuggestAlternateWindows(span, window.Nights(), 0) {
		if alt.CheckIn == original {
			continue
		}
		out = append(out, alt)
		if len(out) == alternates {
			break
		}
	}
	return report, out, nil
}

// DateOccupancy aggregates the date-detail payload of a single day.
func (f *BookingFacade) DateOccupancy(ctx context.Context, date time.Time, categoryID string) (*models.DayOccupancy, error) {
	detail, err := f.directory.DateDetail(ctx, models.FormatDate(date))
	if err != nil {
		return nil, err
	}
	if detail.Date == "" {
		detail.Date = models.FormatDate(date)
	}
	days, err := OccupancyFromDateDetails([]dto.DateDetail{*detail}, categoryID)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		day := models.NoDataDay(models.FormatDate(date))
		return &day, nil
	}
	return &days[0], nil
}

// Categories lists room categories from the directory.
func (f *BookingFacade) Categories(ctx context.Context) ([]dto.RoomCategoryResponse, error) {
	return f.directory.Categories(ctx)
}

// ResolveCategory matches free text against the directory's categories.
func (f *BookingFacade) ResolveCategory(ctx context.Context, query string, limit int) ([]dto.CategoryMatch, error) {
	categories, err := f.directory.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveCategory(query, categories, limit), nil
}

// Quote prices a stay from operator input.
func (f *BookingFacade) Quote(ctx context.Context, req dto.QuoteRequest) (*models.BillingBreakdown, error) {
	var window *models.StayWindow
	if req.CheckIn != "" || req.CheckOut != "" {
		w, err := models.ParseStayWindow(req.CheckIn, req.CheckOut, req.CategoryID)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "ngày không hợp lệ, dùng dd/mm/yyyy", err)
		}
		if !w.Valid() {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidWindow, "ngày trả phòng phải sau ngày nhận phòng", nil)
		}
		window = &w
	}

	nights := req.Nights
	if nights == 0 && window != nil {
		nights = window.Nights()
	}

	rate, err := f.nightlyRate(ctx, req)
	if err != nil {
		return nil, err
	}

	charges := append([]models.Charge(nil), req.ExtraCharges...)
	roomBase := rate * float64(nights)
	if d := PercentDiscount(roomBase, req.DiscountPercent); d != nil {
		charges = append(charges, *d)
	}
	if req.ApplySurcharges && window != nil {
		extra, err := f.surcharges(ctx, *window, roomBase)
		if err != nil {
			return nil, err
		}
		charges = append(charges, extra...)
	}

	return f.calculator.PriceStay(rate, nights, req.Discount, charges)
}

// Settle prices the stay and records the amount collected.
func (f *BookingFacade) Settle(ctx context.Context, req dto.SettleRequest) (*models.BillingBreakdown, error) {
	breakdown, err := f.Quote(ctx, req.QuoteRequest)
	if err != nil {
		return nil, err
	}
	return f.calculator.Settle(breakdown, req.AmountCollected)
}

func (f *BookingFacade) nightlyRate(ctx context.Context, req dto.QuoteRequest) (float64, error) {
	if req.NightlyRate != nil {
		return *req.NightlyRate, nil
	}
	if req.CategoryID == "" {
		return 0, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "cần nightlyRate hoặc categoryId", nil)
	}
	categories, err := f.directory.Categories(ctx)
	if err != nil {
		return 0, err
	}
	for _, c := range categories {
		if strings.EqualFold(c.ID, req.CategoryID) {
			return c.NightlyRate, nil
		}
	}
	return 0, apperrors.NewAppError(apperrors.ErrCodeNotFound, fmt.Sprintf("không tìm thấy loại phòng %q", req.CategoryID), nil)
}

func (f *BookingFacade) surcharges(ctx context.Context, window models.StayWindow, roomBase float64) ([]models.Charge, error) {
	var out []models.Charge
	if f.holidays != nil {
		holidays, err := f.holidays.Holidays(ctx)
		if err != nil {
			return nil, err
		}
		ch, err := HolidaySurcharge(window, roomBase, holidays)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "dữ liệu ngày lễ không hợp lệ", err)
		}
		if ch != nil {
			out = append(out, *ch)
		}
	}
	if ch := RushSurcharge(window.CheckIn, f.clock.Now(), roomBase); ch != nil {
		out = append(out, *ch)
	}
	return out, nil
}
