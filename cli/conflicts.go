package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"frontdesk/constants"
	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services"
)

var conflictFlags struct {
	checkIn    string
	checkOut   string
	category   string
	alternates int
	token      string
}

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Check a stay window for fully booked and busy nights",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := models.ParseStayWindow(conflictFlags.checkIn, conflictFlags.checkOut, conflictFlags.category)
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Sai định dạng ngày, dùng dd/mm/yyyy", err)
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		facade := services.NewBookingFacade(services.BookingFacadeOptions{
			Directory: a.directory,
			Logger:    a.log,
		})
		ctx := cmd.Context()
		if conflictFlags.token != "" {
			ctx = services.WithToken(ctx, conflictFlags.token)
		}
		return runConflicts(ctx, cmd.OutOrStdout(), facade, window, conflictFlags.alternates)
	},
}

func runConflicts(ctx context.Context, w io.Writer, facade *services.BookingFacade, window models.StayWindow, alternates int) error {
	report, alts, err := facade.CheckConflicts(ctx, window, alternates)
	if err != nil {
		return err
	}
	res := dto.ConflictResponse{Report: report, Summary: report.Summary(), Alternates: alts}
	return printResult(w, res, func(w io.Writer) {
		fmt.Fprintf(w, "%s -> %s (%d đêm, %s)\n",
			models.FormatDate(window.CheckIn), models.FormatDate(window.CheckOut), window.Nights(), window.CategoryID)
		for _, night := range report.Nights {
			fmt.Fprintf(w, "  %s  %6.1f%%  %s\n", night.Date, night.OccupancyRate, night.StatusBand)
		}
		fmt.Fprintln(w, res.Summary)
		for _, alt := range alts {
			fmt.Fprintf(w, "  gợi ý: %s -> %s (%d đêm đông)\n", alt.CheckIn, alt.CheckOut, alt.Bottlenecks)
		}
	})
}

func init() {
	f := conflictsCmd.Flags()
	f.StringVar(&conflictFlags.checkIn, "check-in", "", "Check-in date (dd/mm/yyyy)")
	f.StringVar(&conflictFlags.checkOut, "check-out", "", "Check-out date (dd/mm/yyyy)")
	f.StringVar(&conflictFlags.category, "category", constants.CategoryAll, "Room category id")
	f.IntVar(&conflictFlags.alternates, "alternates", 0, "Number of alternate windows to suggest")
	f.StringVar(&conflictFlags.token, "token", "", "Operator token for the directory")
	_ = conflictsCmd.MarkFlagRequired("check-in")
	_ = conflictsCmd.MarkFlagRequired("check-out")
}
