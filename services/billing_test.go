package services

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/config"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

func TestPriceStay_ThreeNightsAtSevenPercent(t *testing.T) {
	calc := DefaultCalculator()

	b, err := calc.PriceStay(2500, 3, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 7500.0, b.BaseAmount)
	assert.Equal(t, 7500.0, b.Subtotal)
	assert.Equal(t, 525.0, b.TaxAmount)
	assert.Equal(t, 8025.0, b.NetPayable)
	assert.Equal(t, 2407.5, b.DepositSuggestion)

	full, err := calc.Settle(b, 8025)
	require.NoError(t, err)
	assert.Equal(t, 0.0, full.AmountDue())
	assert.Equal(t, 0.0, full.ChangeDue())

	partial, err := calc.Settle(b, 5000)
	require.NoError(t, err)
	assert.Equal(t, 3025.0, partial.AmountDue())
	assert.Equal(t, 0.0, partial.ChangeDue())

	over, err := calc.Settle(b, 10000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, over.AmountDue())
	assert.Equal(t, 1975.0, over.ChangeDue())

	// Settle works on a copy.
	assert.Zero(t, b.AmountPaid)
}

func TestPriceStay_DiscountClamp(t *testing.T) {
	b, err := DefaultCalculator().PriceStay(1000, 1, 5000, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Subtotal)
	assert.True(t, b.DiscountClamped)
	assert.Equal(t, 0.0, b.TaxAmount)
	assert.Equal(t, 0.0, b.NetPayable)
}

func TestPriceStay_ExtraCharges(t *testing.T) {
	calc := &Calculator{TaxRate: 0.10, DepositRate: 0.5}
	b, err := calc.PriceStay(100, 2, 10, []models.Charge{
		{Kind: models.ChargeRoom, Amount: 50, Label: "extra bed"},
		{Kind: models.ChargeDiscount, Amount: 40, Label: "voucher"},
		{Kind: models.ChargeService, Amount: 15, Label: "laundry"},
		{Kind: models.ChargeTax, Amount: 3, Label: "city tax"},
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, b.BaseAmount)
	assert.Equal(t, 50.0, b.DiscountAmount)
	assert.Equal(t, 200.0, b.Subtotal)
	assert.Equal(t, 23.0, b.TaxAmount)
	assert.Equal(t, 15.0, b.ServiceCharges)
	assert.Equal(t, 238.0, b.NetPayable)
	assert.Equal(t, 119.0, b.DepositSuggestion)
	assert.False(t, b.DiscountClamped)
}

func TestPriceStay_RoundsTaxToCents(t *testing.T) {
	b, err := DefaultCalculator().PriceStay(33.33, 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.33, b.TaxAmount)
	assert.Equal(t, 35.66, b.NetPayable)
}

func TestPriceStay_InvalidInput(t *testing.T) {
	calc := DefaultCalculator()
	tests := []struct {
		name    string
		rate    float64
		nights  int
		disc    float64
		charges []models.Charge
	}{
		{"zero nights", 100, 0, 0, nil},
		{"negative nights", 100, -2, 0, nil},
		{"negative rate", -1, 1, 0, nil},
		{"NaN rate", math.NaN(), 1, 0, nil},
		{"infinite rate", math.Inf(1), 1, 0, nil},
		{"negative discount", 100, 1, -5, nil},
		{"negative charge", 100, 1, 0, []models.Charge{{Kind: models.ChargeService, Amount: -1}}},
		{"unknown charge kind", 100, 1, 0, []models.Charge{{Kind: "tip", Amount: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := calc.PriceStay(tt.rate, tt.nights, tt.disc, tt.charges)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
		})
	}
}

func TestSettle_Invalid(t *testing.T) {
	calc := DefaultCalculator()
	b, err := calc.PriceStay(100, 1, 0, nil)
	require.NoError(t, err)

	_, err = calc.Settle(b, -1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	_, err = calc.Settle(nil, 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestSettle_RoundTrip(t *testing.T) {
	calc := DefaultCalculator()
	for _, rate := range []float64{0, 19.99, 100, 2500, 1234.56} {
		for nights := 1; nights <= 5; nights++ {
			b, err := calc.PriceStay(rate, nights, 0, nil)
			require.NoError(t, err)
			settled, err := calc.Settle(b, b.NetPayable)
			require.NoError(t, err)
			assert.Zero(t, settled.AmountDue())
			assert.Zero(t, settled.ChangeDue())
		}
	}
}

func TestNewCalculator_FromSettings(t *testing.T) {
	calc := NewCalculator(config.Settings{TaxRate: 0.1, DepositRate: 0.2})
	assert.Equal(t, 0.1, calc.TaxRate)
	assert.Equal(t, 0.2, calc.DepositRate)
}

func TestHolidaySurcharge(t *testing.T) {
	holidays := []models.Holiday{
		{ID: 1, Name: "Quốc khánh", FromDate: "01/09/2024", ToDate: "03/09/2024", Price: 20},
		{ID: 2, Name: "Tết", FromDate: "10/02/2024", ToDate: "14/02/2024", Price: 50},
	}
	in := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)
	w := models.NewStayWindow(in, in.AddDate(0, 0, 3), "all")

	ch, err := HolidaySurcharge(w, 1000, holidays)
	require.NoError(t, err)
	require.NotNil(t, ch)
	assert.Equal(t, models.ChargeRoom, ch.Kind)
	assert.Equal(t, 200.0, ch.Amount)
	assert.Contains(t, ch.Label, "Quốc khánh")

	quiet := models.NewStayWindow(in.AddDate(0, 1, 0), in.AddDate(0, 1, 2), "all")
	none, err := HolidaySurcharge(quiet, 1000, holidays)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = HolidaySurcharge(w, 1000, []models.Holiday{{FromDate: "2024-09-01", ToDate: "03/09/2024"}})
	assert.Error(t, err)
}

func TestRushSurcharge(t *testing.T) {
	booked := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)

	ch := RushSurcharge(booked.AddDate(0, 0, 2), booked, 1000)
	require.NotNil(t, ch)
	assert.Equal(t, 50.0, ch.Amount)

	assert.Nil(t, RushSurcharge(booked.AddDate(0, 0, 10), booked, 1000))
}

func TestPercentDiscount(t *testing.T) {
	assert.Nil(t, PercentDiscount(1000, 0))
	assert.Equal(t, 100.0, PercentDiscount(1000, 10).Amount)
	assert.Equal(t, 1000.0, PercentDiscount(1000, 150).Amount)
}
