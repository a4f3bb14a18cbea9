package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"venuebook-backend/internal/config"
	catalog "venuebook-backend/internal/domains/catalog/model"
	"venuebook-backend/internal/domains/catalog/repository"
	couponModel "venuebook-backend/internal/domains/coupon/model"
	couponService "venuebook-backend/internal/domains/coupon/service"
	"venuebook-backend/internal/domains/pricing/model"
)

// Calculator turns a selection into a price breakdown. It holds no mutable
// state: given the same selection, catalog and clock, the output is identical.
//
// All money is decimal; displayed amounts are rounded to the cent with
// round-half-up (Decimal.Round rounds half away from zero, which is the same
// thing for the non-negative amounts produced here).
type Calculator struct {
	store      repository.Store
	coverRates map[catalog.BookingType]decimal.Decimal
	resolver   *couponService.Resolver
}

// NewCalculator builds a Calculator. A cover-rate table that misses a booking
// type or carries a negative rate is rejected here, so an unrecognized
// discriminator can never price to a silent zero later.
func NewCalculator(store repository.Store, cfg config.PricingConfig, resolver *couponService.Resolver) (*Calculator, error) {
	rates := make(map[catalog.BookingType]decimal.Decimal, len(catalog.AllBookingTypes()))
	for _, t := range catalog.AllBookingTypes() {
		rate, ok := cfg.CoverRates[string(t)]
		if !ok {
			return nil, fmt.Errorf("no cover rate configured for booking type %q", t)
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("cover rate for %q is negative", t)
		}
		rates[t] = rate
	}
	return &Calculator{store: store, coverRates: rates, resolver: resolver}, nil
}

// CoverRate returns the per-guest cover charge for a booking type.
func (c *Calculator) CoverRate(t catalog.BookingType) decimal.Decimal {
	return c.coverRates[t]
}

// BookingBreakdown prices a booking selection.
//
// Base price is the per-guest cover rate times the guest count. Add-on and
// experience ids that no longer exist, are unavailable, or do not apply to the
// current booking type contribute zero; that models a stale selection kept
// around after the user switches booking type.
func (c *Calculator) BookingBreakdown(sel model.BookingSelection) model.Breakdown {
	base := c.coverRates[sel.Type].Mul(decimal.NewFromInt(int64(sel.GuestCount)))

	addOns := decimal.Zero
	for _, id := range sel.AddOnIDs {
		a, ok := c.store.AddOn(id)
		if !ok || !a.Available || !a.AppliesToType(sel.Type) {
			continue
		}
		addOns = addOns.Add(a.Price)
	}

	experiences := decimal.Zero
	for _, id := range sel.ExperienceIDs {
		e, ok := c.store.Experience(id)
		if !ok || !e.Available || !e.AppliesToType(sel.Type) {
			continue
		}
		experiences = experiences.Add(e.Price)
	}

	b := model.Breakdown{
		BasePrice:        base.Round(2),
		AddOnsTotal:      addOns.Round(2),
		ExperiencesTotal: experiences.Round(2),
		ItemsTotal:       decimal.Zero,
	}
	b.Subtotal = b.BasePrice.Add(b.AddOnsTotal).Add(b.ExperiencesTotal)
	c.applyCoupon(&b, sel.CouponCode, func(code string, subtotal decimal.Decimal) (decimal.Decimal, *couponModel.RejectReason) {
		return c.resolver.ResolveForBooking(code, sel.Type, subtotal)
	})
	return b
}

// OrderBreakdown prices a cart. Each line is unit price × quantity plus the
// line's options, priced once per unit and multiplied by that line's quantity.
func (c *Calculator) OrderBreakdown(sel model.OrderSelection) model.Breakdown {
	items := decimal.Zero
	for _, line := range sel.Lines {
		if line.Quantity <= 0 {
			continue
		}
		item, ok := c.store.MenuItem(line.MenuItemID)
		if !ok || !item.Available {
			continue
		}
		unit := item.Price
		for _, optID := range line.OptionIDs {
			if opt := item.Option(optID); opt != nil {
				unit = unit.Add(opt.Price)
			}
		}
		items = items.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	b := model.Breakdown{
		BasePrice:        decimal.Zero,
		AddOnsTotal:      decimal.Zero,
		ExperiencesTotal: decimal.Zero,
		ItemsTotal:       items.Round(2),
	}
	b.Subtotal = b.ItemsTotal
	c.applyCoupon(&b, sel.CouponCode, c.resolver.ResolveForOrder)
	return b
}

// applyCoupon re-resolves the applied coupon against the current subtotal. A
// coupon that no longer qualifies contributes zero and the rejection reason is
// surfaced on the breakdown; the code itself stays applied so the discount
// comes back if the selection grows again.
func (c *Calculator) applyCoupon(b *model.Breakdown, code *string, resolve func(string, decimal.Decimal) (decimal.Decimal, *couponModel.RejectReason)) {
	b.Discount = decimal.Zero
	if code == nil || *code == "" {
		b.Total = b.Subtotal
		return
	}
	b.CouponCode = code

	discount, rejection := resolve(*code, b.Subtotal)
	b.CouponRejection = rejection
	b.Discount = discount
	b.Total = b.Subtotal.Sub(b.Discount)
	if b.Total.IsNegative() {
		b.Total = decimal.Zero
	}
}
