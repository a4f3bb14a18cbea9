package service

import (
	"time"

	"github.com/shopspring/decimal"

	catalog "venuebook-backend/internal/domains/catalog/model"
	"venuebook-backend/internal/domains/catalog/repository"
	"venuebook-backend/internal/domains/coupon/model"
)

// Resolver validates a coupon code against the current selection and computes
// the discount it yields. Rules run in a fixed order and the first failure
// wins: NotFound, NotApplicable, BelowMinimumSpend, Expired.
type Resolver struct {
	store repository.Store

	// Now is swappable so expiry checks are testable.
	Now func() time.Time
}

// NewResolver builds a Resolver over the catalog store.
func NewResolver(store repository.Store) *Resolver {
	return &Resolver{store: store, Now: time.Now}
}

// ResolveForBooking validates code against a booking selection and returns the
// discount for the given subtotal, or the reject reason.
func (r *Resolver) ResolveForBooking(code string, t catalog.BookingType, subtotal decimal.Decimal) (decimal.Decimal, *model.RejectReason) {
	c, found := r.store.CouponByCode(code)
	if !found {
		return decimal.Zero, reject(model.ReasonNotFound)
	}
	return r.resolve(c, c.AppliesToBooking(t), subtotal)
}

// ResolveForOrder validates code against the in-venue ordering flow.
func (r *Resolver) ResolveForOrder(code string, subtotal decimal.Decimal) (decimal.Decimal, *model.RejectReason) {
	c, found := r.store.CouponByCode(code)
	if !found {
		return decimal.Zero, reject(model.ReasonNotFound)
	}
	return r.resolve(c, c.ForOrders, subtotal)
}

func (r *Resolver) resolve(c *model.Coupon, applicable bool, subtotal decimal.Decimal) (decimal.Decimal, *model.RejectReason) {
	if !applicable {
		return decimal.Zero, reject(model.ReasonNotApplicable)
	}
	if c.MinimumSpend != nil && subtotal.LessThan(*c.MinimumSpend) {
		return decimal.Zero, reject(model.ReasonBelowMinimumSpend)
	}
	if c.IsExpired(r.Now()) {
		return decimal.Zero, reject(model.ReasonExpired)
	}
	return c.Discount(subtotal), nil
}

func reject(reason model.RejectReason) *model.RejectReason {
	return &reason
}
