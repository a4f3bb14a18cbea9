package model

import (
	"errors"

	"github.com/shopspring/decimal"

	pricing "venuebook-backend/internal/domains/pricing/model"
)

var (
	ErrUnknownMenuItem   = errors.New("menu item not found in catalog")
	ErrUnknownOption     = errors.New("option not offered for this menu item")
	ErrInvalidQuantity   = errors.New("quantity out of range")
	ErrLineNotFound      = errors.New("item is not in the cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnknownVenue      = errors.New("venue not found in catalog")
	ErrNoDiscountApplied = errors.New("no discount applied")
)

// MaxQuantity caps a single cart line.
const MaxQuantity = 20

// Line is one cart line as rendered to the presentation layer, with the
// pricing the engine derived for it.
type Line struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	OptionIDs  []string        `json:"option_ids,omitempty"`
	UnitPrice  decimal.Decimal `json:"unit_price"` // item price + chosen options, per unit
	LineTotal  decimal.Decimal `json:"line_total"`
}

// State is the snapshot of the in-progress order.
type State struct {
	VenueID    string  `json:"venue_id,omitempty"`
	VenueName  string  `json:"venue_name,omitempty"`
	Lines      []Line  `json:"lines"`
	ItemCount  int     `json:"item_count"`
	CouponCode *string `json:"coupon_code,omitempty"`

	Breakdown pricing.Breakdown `json:"breakdown"`
}

// Confirmation is returned when an order completes.
type Confirmation struct {
	Reference    string            `json:"reference"`
	VenueName    string            `json:"venue_name"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
	PointsEarned int               `json:"points_earned"`
}
