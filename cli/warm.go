package cli

import (
	"time"

	"github.com/spf13/cobra"

	"frontdesk/jobs"
	"frontdesk/services"
)

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Load the current and next month of availability into the cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()
		if a.rdb == nil {
			a.log.Warn("Redis chưa cấu hình, không có gì để làm nóng")
			return nil
		}
		cached := services.NewCachedDirectory(a.directory, a.rdb, a.settings.CacheTTL, a.log)
		return jobs.WarmAvailability(cmd.Context(), cached, time.Now(), a.log)
	},
}
