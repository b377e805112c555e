package services

import (
	"fmt"
	"math"

	"frontdesk/config"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

// Calculator prices stays. Rates come from configuration only.
type Calculator struct {
	TaxRate     float64
	DepositRate float64
}

// NewCalculator builds a Calculator from the loaded settings.
func NewCalculator(s config.Settings) *Calculator {
	return &Calculator{TaxRate: s.TaxRate, DepositRate: s.DepositRate}
}

// DefaultCalculator uses the reference 7% tax and 30% deposit.
func DefaultCalculator() *Calculator {
	return &Calculator{TaxRate: config.DefaultTaxRate, DepositRate: config.DefaultDepositRate}
}

// PriceStay computes the breakdown of a stay.
//
// Room charges add to the base, discount charges add to the discount,
// tax charges are flat levies added on top of the computed tax and service
// charges are summed separately. The subtotal never goes below zero.
func (c *Calculator) PriceStay(nightlyRate float64, nights int, discount float64, extraCharges []models.Charge) (*models.BillingBreakdown, error) {
	if nights <= 0 {
		return nil, invalidAmount(fmt.Sprintf("số đêm phải lớn hơn 0 (nhận %d)", nights))
	}
	if err := checkAmount("nightlyRate", nightlyRate); err != nil {
		return nil, err
	}
	if err := checkAmount("discount", discount); err != nil {
		return nil, err
	}
	if err := checkRate("taxRate", c.TaxRate); err != nil {
		return nil, err
	}
	if err := checkRate("depositRate", c.DepositRate); err != nil {
		return nil, err
	}

	base := nightlyRate * float64(nights)
	totalDiscount := discount
	var flatTax, service float64
	for i, ch := range extraCharges {
		if err := checkAmount(fmt.Sprintf("charges[%d]", i), ch.Amount); err != nil {
			return nil, err
		}
		switch ch.Kind {
		case models.ChargeRoom:
			base += ch.Amount
		case models.ChargeDiscount:
			totalDiscount += ch.Amount
		case models.ChargeTax:
			flatTax += ch.Amount
		case models.ChargeService:
			service += ch.Amount
		default:
			return nil, invalidAmount(fmt.Sprintf("charges[%d]: loại phí không hợp lệ %q", i, ch.Kind))
		}
	}

	base = models.RoundMoney(base)
	totalDiscount = models.RoundMoney(totalDiscount)
	subtotal := base - totalDiscount
	clamped := false
	if subtotal < 0 {
		subtotal = 0
		clamped = true
	}

	tax := models.RoundMoney(subtotal*c.TaxRate) + models.RoundMoney(flatTax)
	service = models.RoundMoney(service)
	net := models.RoundMoney(math.Max(0, subtotal+tax+service))

	return &models.BillingBreakdown{
		NightlyRate:       nightlyRate,
		Nights:            nights,
		BaseAmount:        base,
		DiscountAmount:    totalDiscount,
		DiscountClamped:   clamped,
		Subtotal:          models.RoundMoney(subtotal),
		TaxRate:           c.TaxRate,
		TaxAmount:         models.RoundMoney(tax),
		ServiceCharges:    service,
		NetPayable:        net,
		DepositRate:       c.DepositRate,
		DepositSuggestion: models.RoundMoney(net * c.DepositRate),
		Charges:           extraCharges,
	}, nil
}

// Settle records the amount collected at the desk. The input breakdown is
// not modified.
func (c *Calculator) Settle(breakdown *models.BillingBreakdown, amountCollected float64) (*models.BillingBreakdown, error) {
	if breakdown == nil {
		return nil, invalidAmount("thiếu thông tin hóa đơn")
	}
	if err := checkAmount("amountCollected", amountCollected); err != nil {
		return nil, err
	}
	settled := *breakdown
	settled.AmountPaid = models.RoundMoney(amountCollected)
	return &settled, nil
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidAmount(fmt.Sprintf("%s không phải là số hữu hạn", field))
	}
	if v < 0 {
		return invalidAmount(fmt.Sprintf("%s không được âm (%v)", field, v))
	}
	return nil
}

func checkRate(field string, v float64) error {
	if err := checkAmount(field, v); err != nil {
		return err
	}
	if v > 1 {
		return invalidAmount(fmt.Sprintf("%s phải nằm trong khoảng [0,1] (%v)", field, v))
	}
	return nil
}

func invalidAmount(msg string) error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, msg, nil)
}
