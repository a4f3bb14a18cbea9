package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	catalog "venuebook-backend/internal/domains/catalog/model"
)

// DiscountKind is the coupon's discount mechanism.
type DiscountKind string

const (
	DiscountKindPercentage DiscountKind = "percentage" // Value in (0, 100]
	DiscountKindFixed      DiscountKind = "fixed"      // Value >= 0, in currency units
)

// Coupon is a fixture discount code. Codes match case-insensitively.
type Coupon struct {
	ID    string          `json:"id"`
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Kind  DiscountKind    `json:"kind"`
	Value decimal.Decimal `json:"value"`

	// Applicability
	AppliesTo []catalog.BookingType `json:"applies_to,omitempty"` // booking flow
	ForOrders bool                  `json:"for_orders,omitempty"` // in-venue ordering flow

	MinimumSpend *decimal.Decimal `json:"minimum_spend,omitempty"`
	ExpiresAt    *time.Time       `json:"expires_at,omitempty"`
}

// MatchesCode compares codes case-insensitively.
func (c *Coupon) MatchesCode(code string) bool {
	return strings.EqualFold(c.Code, code)
}

// AppliesToBooking reports whether the coupon covers the given booking type.
func (c *Coupon) AppliesToBooking(t catalog.BookingType) bool {
	for _, bt := range c.AppliesTo {
		if bt == t {
			return true
		}
	}
	return false
}

// IsExpired reports whether the coupon has passed its expiry at the given time.
// Coupons without an expiry never expire.
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// Discount computes the raw discount for a subtotal, before any resolver
// checks. Percentage discounts round to the cent; fixed discounts are clamped
// to the subtotal so a line can never go negative.
func (c *Coupon) Discount(subtotal decimal.Decimal) decimal.Decimal {
	switch c.Kind {
	case DiscountKindPercentage:
		return subtotal.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountKindFixed:
		if c.Value.GreaterThan(subtotal) {
			return subtotal
		}
		return c.Value
	default:
		return decimal.Zero
	}
}
