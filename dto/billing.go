package dto

import "frontdesk/models"

// QuoteRequest is the booking-time pricing input. Either NightlyRate or
// CategoryID is required; Nights may be derived from CheckIn/CheckOut.
type QuoteRequest struct {
	CategoryID      string          `json:"categoryId"`
	NightlyRate     *float64        `json:"nightlyRate" validate:"omitempty,gte=0"`
	Nights          int             `json:"nights" validate:"gte=0"`
	CheckIn         string          `json:"checkIn"`
	CheckOut        string          `json:"checkOut"`
	Discount        float64         `json:"discount" validate:"gte=0"`
	DiscountPercent float64         `json:"discountPercent" validate:"gte=0,lte=100"`
	ExtraCharges    []models.Charge `json:"extraCharges" validate:"dive"`
	ApplySurcharges bool            `json:"applySurcharges"`
}

// SettleRequest là request thanh toán lúc trả phòng
type SettleRequest struct {
	QuoteRequest
	AmountCollected float64 `json:"amountCollected" validate:"gte=0"`
}

// BillingResponse exposes a breakdown together with its derived amounts.
type BillingResponse struct {
	models.BillingBreakdown
	AmountDue float64 `json:"amountDue"`
	ChangeDue float64 `json:"changeDue"`
}

// NewBillingResponse copies b and evaluates the derived amounts.
func NewBillingResponse(b *models.BillingBreakdown) BillingResponse {
	return BillingResponse{
		BillingBreakdown: *b,
		AmountDue:        b.AmountDue(),
		ChangeDue:        b.ChangeDue(),
	}
}
