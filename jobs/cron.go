package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"frontdesk/constants"
	"frontdesk/services/logger"
)

// AvailabilityWarmer nạp lại cache availability cho một tháng
type AvailabilityWarmer interface {
	Warm(ctx context.Context, year int, month time.Month, categoryID string) error
}

// WarmMonths là số tháng (tính cả tháng hiện tại) được làm nóng mỗi lần chạy
const WarmMonths = 2

// WarmAvailability loads the current and following months into the cache.
func WarmAvailability(ctx context.Context, warmer AvailabilityWarmer, now time.Time, log logger.Logger) error {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	var failed int
	for i := 0; i < WarmMonths; i++ {
		month := first.AddDate(0, i, 0)
		if err := warmer.Warm(ctx, month.Year(), month.Month(), constants.CategoryAll); err != nil {
			log.Error("Lỗi khi làm nóng cache %s: %v", month.Format("01/2006"), err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("warm availability: %d/%d months failed", failed, WarmMonths)
	}
	return nil
}

// GuardSweeper drops mutation guards nobody has used for a while.
type GuardSweeper interface {
	Sweep(idle time.Duration) int
}

// SweepSchedule là lịch dọn các guard không còn dùng
const SweepSchedule = "@every 5m"

// CronConfig gom các job nền của server
type CronConfig struct {
	WarmSchedule string
	Warmer       AvailabilityWarmer
	Sweeper      GuardSweeper
	GuardIdleTTL time.Duration
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, cfg CronConfig, log logger.Logger) error {
	_, err := c.AddFunc(cfg.WarmSchedule, func() {
		now := time.Now()
		log.Info("Đang làm nóng cache availability lúc: %v", now)
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := WarmAvailability(ctx, cfg.Warmer, now, log); err != nil {
			log.Warn("%v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule warm job %q: %w", cfg.WarmSchedule, err)
	}

	if cfg.Sweeper != nil && cfg.GuardIdleTTL > 0 {
		_, err = c.AddFunc(SweepSchedule, func() {
			SweepGuards(cfg.Sweeper, cfg.GuardIdleTTL, log)
		})
		if err != nil {
			return fmt.Errorf("failed to schedule guard sweep: %w", err)
		}
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}

// SweepGuards runs one eviction pass.
func SweepGuards(sweeper GuardSweeper, idle time.Duration, log logger.Logger) int {
	removed := sweeper.Sweep(idle)
	if removed > 0 {
		log.Info("Đã dọn %d guard không hoạt động", removed)
	}
	return removed
}
