package service

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"venuebook-backend/internal/domains/catalog/repository"
	couponService "venuebook-backend/internal/domains/coupon/service"
	loyaltyModel "venuebook-backend/internal/domains/loyalty/model"
	loyaltyService "venuebook-backend/internal/domains/loyalty/service"
	"venuebook-backend/internal/domains/order/model"
	pricingModel "venuebook-backend/internal/domains/pricing/model"
	pricingService "venuebook-backend/internal/domains/pricing/service"
)

// Session is the mutable state of one in-progress venue order. Like the
// booking session it stores only choices; prices are recomputed on every read.
type Session struct {
	mu       sync.Mutex
	store    repository.Store
	calc     *pricingService.Calculator
	resolver *couponService.Resolver
	loyalty  *loyaltyService.Service

	venueID    string
	lines      []pricingModel.OrderLine
	couponCode *string
}

// NewSession starts an empty cart.
func NewSession(store repository.Store, calc *pricingService.Calculator, resolver *couponService.Resolver, loyalty *loyaltyService.Service) *Session {
	return &Session{
		store:    store,
		calc:     calc,
		resolver: resolver,
		loyalty:  loyalty,
	}
}

// SetVenue picks the venue the order is placed at.
func (s *Session) SetVenue(venueID string) error {
	if _, ok := s.store.Venue(venueID); !ok {
		return model.ErrUnknownVenue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venueID = venueID
	return nil
}

// AddItem adds a menu item to the cart. Adding an item already in the cart
// with the same options bumps that line's quantity. Unknown items and options
// are rejected before any state changes.
func (s *Session) AddItem(menuItemID string, quantity int, optionIDs []string) error {
	if quantity < 1 || quantity > model.MaxQuantity {
		return model.ErrInvalidQuantity
	}
	item, ok := s.store.MenuItem(menuItemID)
	if !ok {
		return model.ErrUnknownMenuItem
	}
	for _, optID := range optionIDs {
		if item.Option(optID) == nil {
			return model.ErrUnknownOption
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuItemID == menuItemID && sameOptions(s.lines[i].OptionIDs, optionIDs) {
			next := s.lines[i].Quantity + quantity
			if next > model.MaxQuantity {
				return model.ErrInvalidQuantity
			}
			s.lines[i].Quantity = next
			return nil
		}
	}
	s.lines = append(s.lines, pricingModel.OrderLine{
		MenuItemID: menuItemID,
		Quantity:   quantity,
		OptionIDs:  append([]string(nil), optionIDs...),
	})
	return nil
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (s *Session) UpdateQuantity(menuItemID string, quantity int) error {
	if quantity < 0 || quantity > model.MaxQuantity {
		return model.ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuItemID == menuItemID {
			if quantity == 0 {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
			} else {
				s.lines[i].Quantity = quantity
			}
			return nil
		}
	}
	return model.ErrLineNotFound
}

// RemoveItem drops a line from the cart.
func (s *Session) RemoveItem(menuItemID string) error {
	return s.UpdateQuantity(menuItemID, 0)
}

// ApplyDiscount validates the code against the current cart and applies it,
// replacing any previous code.
func (s *Session) ApplyDiscount(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.breakdownLocked(nil).Subtotal
	if _, rejection := s.resolver.ResolveForOrder(code, subtotal); rejection != nil {
		return rejection.Err()
	}
	s.couponCode = &code
	return nil
}

// RemoveDiscount clears the applied discount.
func (s *Session) RemoveDiscount() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.couponCode == nil {
		return model.ErrNoDiscountApplied
	}
	s.couponCode = nil
	return nil
}

// Breakdown recomputes the price of the current cart.
func (s *Session) Breakdown() pricingModel.Breakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.breakdownLocked(s.couponCode)
}

// State snapshots the cart with per-line pricing.
func (s *Session) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := model.State{
		VenueID:    s.venueID,
		Lines:      make([]model.Line, 0, len(s.lines)),
		CouponCode: s.couponCode,
		Breakdown:  s.breakdownLocked(s.couponCode),
	}
	if v, ok := s.store.Venue(s.venueID); ok {
		st.VenueName = v.Name
	}
	for _, line := range s.lines {
		st.ItemCount += line.Quantity
		rendered := model.Line{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			OptionIDs:  append([]string(nil), line.OptionIDs...),
		}
		if item, ok := s.store.MenuItem(line.MenuItemID); ok {
			rendered.Name = item.Name
			unit := item.Price
			for _, optID := range line.OptionIDs {
				if opt := item.Option(optID); opt != nil {
					unit = unit.Add(opt.Price)
				}
			}
			rendered.UnitPrice = unit.Round(2)
			rendered.LineTotal = unit.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		}
		st.Lines = append(st.Lines, rendered)
	}
	return st
}

// Complete finalizes the order: records the loyalty transaction with the cart
// total and item count, resets the cart and returns the confirmation.
func (s *Session) Complete() (*model.Confirmation, error) {
	s.mu.Lock()

	venue, ok := s.store.Venue(s.venueID)
	if !ok {
		s.mu.Unlock()
		return nil, model.ErrUnknownVenue
	}
	if len(s.lines) == 0 {
		s.mu.Unlock()
		return nil, model.ErrEmptyCart
	}

	breakdown := s.breakdownLocked(s.couponCode)
	itemCount := 0
	for _, line := range s.lines {
		itemCount += line.Quantity
	}
	s.resetLocked()
	s.mu.Unlock()

	result, err := s.loyalty.RecordTransaction(venue.ID, venue.Name, breakdown.Total, itemCount, loyaltyModel.TransactionOrder)
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
		Msg("Order completed")

	return conf, nil
}

// Reset abandons the in-progress order.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.venueID = ""
	s.lines = nil
	s.couponCode = nil
}

func (s *Session) breakdownLocked(coupon *string) pricingModel.Breakdown {
	return s.calc.OrderBreakdown(pricingModel.OrderSelection{
		Lines:      s.lines,
		CouponCode: coupon,
	})
}

func sameOptions(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}

func newReference() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
