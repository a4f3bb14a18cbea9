package model

import (
	"github.com/shopspring/decimal"

	catalog "venuebook-backend/internal/domains/catalog/model"
	coupon "venuebook-backend/internal/domains/coupon/model"
)

// BookingSelection is the pricing view of an in-progress booking. It carries
// raw id references; the calculator resolves them against the catalog and
// silently drops anything stale or inapplicable.
type BookingSelection struct {
	Type          catalog.BookingType
	GuestCount    int
	AddOnIDs      []string
	ExperienceIDs []string
	CouponCode    *string
}

// OrderLine is one cart line: a menu item, its quantity and the per-unit
// options chosen for it.
type OrderLine struct {
	MenuItemID string
	Quantity   int
	OptionIDs  []string
}

// OrderSelection is the pricing view of an in-progress venue order.
type OrderSelection struct {
	Lines      []OrderLine
	CouponCode *string
}

// Breakdown is the derived price of a selection. It is never stored; callers
// recompute it whenever the selection changes.
type Breakdown struct {
	BasePrice        decimal.Decimal `json:"base_price"`
	AddOnsTotal      decimal.Decimal `json:"add_ons_total"`
	ExperiencesTotal decimal.Decimal `json:"experiences_total"`
	ItemsTotal       decimal.Decimal `json:"items_total"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	Total            decimal.Decimal `json:"total"`

	// CouponCode echoes the applied code; CouponRejection is set when that
	// code currently resolves to no discount (e.g. the cart shrank below its
	// minimum spend after application).
	CouponCode      *string              `json:"coupon_code,omitempty"`
	CouponRejection *coupon.RejectReason `json:"coupon_rejection,omitempty"`
}
