package service

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"venuebook-backend/internal/domains/booking/model"
	catalog "venuebook-backend/internal/domains/catalog/model"
	"venuebook-backend/internal/domains/catalog/repository"
	couponService "venuebook-backend/internal/domains/coupon/service"
	loyaltyModel "venuebook-backend/internal/domains/loyalty/model"
	loyaltyService "venuebook-backend/internal/domains/loyalty/service"
	pricingModel "venuebook-backend/internal/domains/pricing/model"
	pricingService "venuebook-backend/internal/domains/pricing/service"
)

// Session is the mutable state of one in-progress booking. It owns no derived
// values: every read of the price goes back through the pricing calculator.
type Session struct {
	mu       sync.Mutex
	store    repository.Store
	calc     *pricingService.Calculator
	resolver *couponService.Resolver
	loyalty  *loyaltyService.Service

	venueID       string
	bookingType   catalog.BookingType
	guestCount    int
	date          *time.Time
	timeSlot      string
	addOnIDs      []string
	experienceIDs []string
	contact       model.Contact
	couponCode    *string
}

// NewSession starts a fresh booking with the UI's defaults: a standard table
// for two.
func NewSession(store repository.Store, calc *pricingService.Calculator, resolver *couponService.Resolver, loyalty *loyaltyService.Service) *Session {
	return &Session{
		store:       store,
		calc:        calc,
		resolver:    resolver,
		loyalty:     loyalty,
		bookingType: catalog.BookingTypeStandardTable,
		guestCount:  2,
	}
}

// SetVenue picks the venue being booked.
func (s *Session) SetVenue(venueID string) error {
	if _, ok := s.store.Venue(venueID); !ok {
		return model.ErrUnknownVenue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venueID = venueID
	return nil
}

// SetBookingType switches the seating type. Selected add-ons and experiences
// are kept; the pricing engine excludes any that no longer apply.
func (s *Session) SetBookingType(raw string) error {
	t, err := catalog.ParseBookingType(raw)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookingType = t
	return nil
}

// SetGuestCount changes the party size.
func (s *Session) SetGuestCount(n int) error {
	if n < 1 || n > model.MaxGuests {
		return model.ErrInvalidGuestCount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guestCount = n
	return nil
}

// SetSchedule sets the date and time slot.
func (s *Session) SetSchedule(date time.Time, timeSlot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = &date
	s.timeSlot = timeSlot
}

// SetContact sets the contact details.
func (s *Session) SetContact(c model.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contact = c
}

// AddAddOn selects an add-on. Unknown ids are rejected up front; an add-on
// that merely does not apply to the current booking type is accepted and
// priced at zero, matching the stale-selection rule.
func (s *Session) AddAddOn(id string) error {
	if _, ok := s.store.AddOn(id); !ok {
		return model.ErrUnknownAddOn
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addOnIDs = appendUnique(s.addOnIDs, id)
	return nil
}

// RemoveAddOn deselects an add-on; removing an unselected id is a no-op.
func (s *Session) RemoveAddOn(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addOnIDs = remove(s.addOnIDs, id)
}

// AddExperience selects an experience.
func (s *Session) AddExperience(id string) error {
	if _, ok := s.store.Experience(id); !ok {
		return model.ErrUnknownExperience
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.experienceIDs = appendUnique(s.experienceIDs, id)
	return nil
}

// RemoveExperience deselects an experience.
func (s *Session) RemoveExperience(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.experienceIDs = remove(s.experienceIDs, id)
}

// ApplyCoupon validates the code against the current selection and applies it.
// Applying a new code replaces any previous one; there is no stacking.
func (s *Session) ApplyCoupon(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.breakdownLocked(nil).Subtotal
	if _, rejection := s.resolver.ResolveForBooking(code, s.bookingType, subtotal); rejection != nil {
		return rejection.Err()
	}
	s.couponCode = &code
	return nil
}

// RemoveCoupon clears the applied coupon.
func (s *Session) RemoveCoupon() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.couponCode == nil {
		return model.ErrNoCouponApplied
	}
	s.couponCode = nil
	return nil
}

// Breakdown recomputes the price of the current selection.
func (s *Session) Breakdown() pricingModel.Breakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.breakdownLocked(s.couponCode)
}

// State snapshots the whole session for the presentation layer.
func (s *Session) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := model.State{
		VenueID:       s.venueID,
		BookingType:   s.bookingType,
		GuestCount:    s.guestCount,
		Date:          s.date,
		TimeSlot:      s.timeSlot,
		AddOnIDs:      append([]string(nil), s.addOnIDs...),
		ExperienceIDs: append([]string(nil), s.experienceIDs...),
		Contact:       s.contact,
		CouponCode:    s.couponCode,
		Breakdown:     s.breakdownLocked(s.couponCode),
	}
	if v, ok := s.store.Venue(s.venueID); ok {
		st.VenueName = v.Name
	}
	return st
}

// Complete finalizes the booking: it validates the session is complete,
// records the loyalty transaction, resets the session and returns the
// confirmation.
func (s *Session) Complete() (*model.Confirmation, error) {
	s.mu.Lock()

	venue, ok := s.store.Venue(s.venueID)
	if !ok || s.date == nil || s.timeSlot == "" || s.contact.Name == "" {
		s.mu.Unlock()
		return nil, model.ErrIncompleteBooking
	}

	breakdown := s.breakdownLocked(s.couponCode)
	guests := s.guestCount
	s.resetLocked()
	s.mu.Unlock()

	// Loyalty mutation happens outside the session lock; the ledger has its
	// own critical section.
	result, err := s.loyalty.RecordTransaction(venue.ID, venue.Name, breakdown.Total, guests, loyaltyModel.TransactionBooking)
	if err != nil {
		return nil, err
	}

	conf := &model.Confirmation{
		Reference:    newReference(),
		VenueName:    venue.Name,
		Breakdown:    breakdown,
		PointsEarned: result.TotalPoints,
	}

	log.Info().
		Str("reference", conf.Reference).
		Str("venue_id", venue.ID).
		Str("total", breakdown.Total.StringFixed(2)).
		Int("points_earned", result.TotalPoints).
		Msg("Booking completed")

	return conf, nil
}

// Reset abandons the in-progress booking.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.venueID = ""
	s.bookingType = catalog.BookingTypeStandardTable
	s.guestCount = 2
	s.date = nil
	s.timeSlot = ""
	s.addOnIDs = nil
	s.experienceIDs = nil
	s.contact = model.Contact{}
	s.couponCode = nil
}

func (s *Session) breakdownLocked(coupon *string) pricingModel.Breakdown {
	return s.calc.BookingBreakdown(pricingModel.BookingSelection{
		Type:          s.bookingType,
		GuestCount:    s.guestCount,
		AddOnIDs:      s.addOnIDs,
		ExperienceIDs: s.experienceIDs,
		CouponCode:    coupon,
	})
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func newReference() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
