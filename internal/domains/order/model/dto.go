package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AddItemRequest puts a menu item in the cart, optionally with per-unit options.
type AddItemRequest struct {
	MenuItemID string   `json:"menu_item_id"`
	Quantity   int      `json:"quantity"`
	OptionIDs  []string `json:"option_ids"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MenuItemID, validation.Required),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(MaxQuantity)),
	)
}

// UpdateQuantityRequest changes a cart line's quantity; zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Min(0), validation.Max(MaxQuantity)),
	)
}

// SetVenueRequest picks the venue the order is placed at.
type SetVenueRequest struct {
	VenueID string `json:"venue_id"`
}

func (r SetVenueRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VenueID, validation.Required),
	)
}

// ApplyDiscountRequest applies a discount code to the cart.
type ApplyDiscountRequest struct {
	Code string `json:"code"`
}

func (r ApplyDiscountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Length(2, 32)),
	)
}
