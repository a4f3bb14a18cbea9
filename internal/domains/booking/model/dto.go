package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SetVenueRequest picks the venue being booked.
type SetVenueRequest struct {
	VenueID string `json:"venue_id"`
}

func (r SetVenueRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VenueID, validation.Required),
	)
}

// SetTypeRequest changes the booking type; stale add-on/experience selections
// are kept but priced at zero until they apply again.
type SetTypeRequest struct {
	BookingType string `json:"booking_type"`
}

func (r SetTypeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookingType, validation.Required),
	)
}

// SetGuestsRequest changes the party size.
type SetGuestsRequest struct {
	GuestCount int `json:"guest_count"`
}

func (r SetGuestsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GuestCount, validation.Required, validation.Min(1), validation.Max(MaxGuests)),
	)
}

// SetScheduleRequest sets the booking date and time slot.
type SetScheduleRequest struct {
	Date     string `json:"date"`      // 2006-01-02
	TimeSlot string `json:"time_slot"` // 15:04
}

func (r SetScheduleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.TimeSlot, validation.Required, validation.Date("15:04")),
	)
}

// SetContactRequest sets the contact details.
type SetContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (r SetContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Email, is.Email),
	)
}

// SelectionRequest adds or removes an add-on or experience by id.
type SelectionRequest struct {
	ID string `json:"id"`
}

func (r SelectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
	)
}

// ApplyCouponRequest applies a coupon code to the booking.
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

func (r ApplyCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Length(2, 32)),
	)
}
