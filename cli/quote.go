package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"frontdesk/dto"
	"frontdesk/services"
	"frontdesk/validator"
)

var quoteFlags struct {
	category        string
	rate            float64
	nights          int
	checkIn         string
	checkOut        string
	discount        float64
	discountPercent float64
	collected       float64
	surcharges      bool
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a stay",
	Long: `Price a stay with the configured tax and deposit rates.

With --rate the quote is computed offline; with --category the nightly rate
is read from the booking directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := dto.QuoteRequest{
			CategoryID:      quoteFlags.category,
			Nights:          quoteFlags.nights,
			CheckIn:         quoteFlags.checkIn,
			CheckOut:        quoteFlags.checkOut,
			Discount:        quoteFlags.discount,
			DiscountPercent: quoteFlags.discountPercent,
			ApplySurcharges: quoteFlags.surcharges,
		}
		if cmd.Flags().Changed("rate") {
			rate := quoteFlags.rate
			req.NightlyRate = &rate
		}
		settle := dto.SettleRequest{QuoteRequest: req, AmountCollected: quoteFlags.collected}
		if err := validator.ValidateStruct(settle); err != nil {
			return err
		}

		opts := services.BookingFacadeOptions{}
		if req.NightlyRate == nil || req.ApplySurcharges {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()
			opts.Directory = a.directory
			opts.Holidays = a.holidays
			opts.Calculator = services.NewCalculator(a.settings)
			opts.Logger = a.log
		} else {
			settings, log, err := loadSettings()
			if err != nil {
				return err
			}
			opts.Calculator = services.NewCalculator(settings)
			opts.Logger = log
		}
		return runQuote(cmd.Context(), cmd.OutOrStdout(), services.NewBookingFacade(opts), settle)
	},
}

func runQuote(ctx context.Context, w io.Writer, facade *services.BookingFacade, req dto.SettleRequest) error {
	if ctx == nil {
		ctx = context.Background()
	}
	breakdown, err := facade.Settle(ctx, req)
	if err != nil {
		return err
	}
	res := dto.NewBillingResponse(breakdown)
	return printResult(w, res, func(w io.Writer) {
		fmt.Fprintf(w, "Tiền phòng:   %12.2f\n", res.BaseAmount)
		fmt.Fprintf(w, "Giảm giá:     %12.2f\n", res.DiscountAmount)
		fmt.Fprintf(w, "Thuế:         %12.2f\n", res.TaxAmount)
		fmt.Fprintf(w, "Dịch vụ:      %12.2f\n", res.ServiceCharges)
		fmt.Fprintf(w, "Tổng cộng:    %12.2f\n", res.NetPayable)
		fmt.Fprintf(w, "Đặt cọc:      %12.2f\n", res.DepositSuggestion)
		if req.AmountCollected > 0 {
			fmt.Fprintf(w, "Đã thu:       %12.2f\n", res.AmountPaid)
			fmt.Fprintf(w, "Còn nợ:       %12.2f\n", res.AmountDue)
			fmt.Fprintf(w, "Tiền thối:    %12.2f\n", res.ChangeDue)
		}
	})
}

func init() {
	f := quoteCmd.Flags()
	f.StringVar(&quoteFlags.category, "category", "", "Room category id (reads the nightly rate from the directory)")
	f.Float64Var(&quoteFlags.rate, "rate", 0, "Nightly rate")
	f.IntVar(&quoteFlags.nights, "nights", 0, "Number of nights")
	f.StringVar(&quoteFlags.checkIn, "check-in", "", "Check-in date (dd/mm/yyyy)")
	f.StringVar(&quoteFlags.checkOut, "check-out", "", "Check-out date (dd/mm/yyyy)")
	f.Float64Var(&quoteFlags.discount, "discount", 0, "Flat discount")
	f.Float64Var(&quoteFlags.discountPercent, "discount-percent", 0, "Discount in percent of the room charge")
	f.Float64Var(&quoteFlags.collected, "collected", 0, "Amount already collected")
	f.BoolVar(&quoteFlags.surcharges, "surcharges", false, "Apply holiday and rush surcharges")
}
