package model

import (
	"errors"
	"time"

	catalog "venuebook-backend/internal/domains/catalog/model"
	pricing "venuebook-backend/internal/domains/pricing/model"
)

var (
	ErrUnknownAddOn      = errors.New("add-on not found in catalog")
	ErrUnknownExperience = errors.New("experience not found in catalog")
	ErrUnknownVenue      = errors.New("venue not found in catalog")
	ErrInvalidGuestCount = errors.New("guest count out of range")
	ErrIncompleteBooking = errors.New("booking is missing required details")
	ErrNoCouponApplied   = errors.New("no coupon applied")
)

// MaxGuests caps a single booking; larger parties go through the venue directly.
const MaxGuests = 20

// Contact is the booking's contact details.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// State is the snapshot of the in-progress booking the presentation renders.
type State struct {
	VenueID       string              `json:"venue_id,omitempty"`
	VenueName     string              `json:"venue_name,omitempty"`
	BookingType   catalog.BookingType `json:"booking_type"`
	GuestCount    int                 `json:"guest_count"`
	Date          *time.Time          `json:"date,omitempty"`
	TimeSlot      string              `json:"time_slot,omitempty"`
	AddOnIDs      []string            `json:"add_on_ids"`
	ExperienceIDs []string            `json:"experience_ids"`
	Contact       Contact             `json:"contact"`
	CouponCode    *string             `json:"coupon_code,omitempty"`

	Breakdown pricing.Breakdown `json:"breakdown"`
}

// Confirmation is returned when a booking completes.
type Confirmation struct {
	Reference    string            `json:"reference"`
	VenueName    string            `json:"venue_name"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
	PointsEarned int               `json:"points_earned"`
}
