package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest records a completed transaction that happened
// outside the booking/order sessions (the demo admin screen uses it).
type RecordTransactionRequest struct {
	VenueID   string          `json:"venue_id"`
	VenueName string          `json:"venue_name"`
	Amount    decimal.Decimal `json:"amount"`
	Count     int             `json:"count"` // guests for bookings, items for orders
	Type      TransactionType `json:"type"`
}

func (r RecordTransactionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VenueID, validation.Required),
		validation.Field(&r.Count, validation.Min(0)),
		validation.Field(&r.Type, validation.Required, validation.In(TransactionBooking, TransactionOrder)),
		validation.Field(&r.Amount, validation.By(nonNegativeDecimal)),
	)
}

// AwardPointsRequest adds points directly (promo grants, support credits).
type AwardPointsRequest struct {
	Points int `json:"points"`
}

func (r AwardPointsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Points, validation.Required, validation.Min(1)),
	)
}

func nonNegativeDecimal(value interface{}) error {
	d, _ := value.(decimal.Decimal)
	if d.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}
