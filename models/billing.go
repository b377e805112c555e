package models

import "math"

// Charge kinds
const (
	ChargeRoom     = "room"
	ChargeService  = "service"
	ChargeDiscount = "discount"
	ChargeTax      = "tax"
)

// Charge là một dòng phí phát sinh
type Charge struct {
	Kind   string  `json:"kind" validate:"required,oneof=room service discount tax"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Label  string  `json:"label"`
}

// BillingBreakdown is the financial breakdown of a stay. AmountDue and
// ChangeDue are derived from NetPayable and AmountPaid on every read.
type BillingBreakdown struct {
	NightlyRate       float64  `json:"nightlyRate"`
	Nights            int      `json:"nights"`
	BaseAmount        float64  `json:"baseAmount"`
	DiscountAmount    float64  `json:"discountAmount"`
	DiscountClamped   bool     `json:"discountClamped"`
	Subtotal          float64  `json:"subtotal"`
	TaxRate           float64  `json:"taxRate"`
	TaxAmount         float64  `json:"taxAmount"`
	ServiceCharges    float64  `json:"serviceCharges"`
	NetPayable        float64  `json:"netPayable"`
	AmountPaid        float64  `json:"amountPaid"`
	DepositRate       float64  `json:"depositRate"`
	DepositSuggestion float64  `json:"depositSuggestion"`
	Charges           []Charge `json:"charges,omitempty"`
}

// AmountDue là số tiền khách còn phải trả
func (b BillingBreakdown) AmountDue() float64 {
	return RoundMoney(math.Max(0, b.NetPayable-b.AmountPaid))
}

// ChangeDue là số tiền thối lại cho khách
func (b BillingBreakdown) ChangeDue() float64 {
	return RoundMoney(math.Max(0, b.AmountPaid-b.NetPayable))
}

// RoundMoney rounds to cents.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
