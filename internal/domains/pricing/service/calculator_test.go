package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook-backend/internal/config"
	catalog "venuebook-backend/internal/domains/catalog/model"
	"venuebook-backend/internal/domains/catalog/repository"
	couponModel "venuebook-backend/internal/domains/coupon/model"
	couponService "venuebook-backend/internal/domains/coupon/service"
	"venuebook-backend/internal/domains/pricing/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	store, err := repository.NewDefaultMemory()
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)

	calc, err := NewCalculator(store, cfg.Pricing, couponService.NewResolver(store))
	require.NoError(t, err)
	return calc
}

func strPtr(s string) *string { return &s }

func TestBookingBreakdown_VIPCouchBasePrice(t *testing.T) {
	calc := newTestCalculator(t)

	b := calc.BookingBreakdown(model.BookingSelection{
		Type:       catalog.BookingTypeVIPCouch,
		GuestCount: 2,
	})

	assert.Equal(t, "150.00", b.BasePrice.StringFixed(2))
	assert.Equal(t, "150.00", b.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", b.Discount.StringFixed(2))
	assert.Equal(t, "150.00", b.Total.StringFixed(2))
}

func TestBookingBreakdown_StandardTableHasNoCoverCharge(t *testing.T) {
	calc := newTestCalculator(t)

	b := calc.BookingBreakdown(model.BookingSelection{
		Type:       catalog.BookingTypeStandardTable,
		GuestCount: 6,
	})

	assert.True(t, b.BasePrice.IsZero())
	assert.True(t, b.Total.IsZero())
}

func TestBookingBreakdown_AddOnsAndExperiences(t *testing.T) {
	calc := newTestCalculator(t)

	b := calc.BookingBreakdown(model.BookingSelection{
		Type:          catalog.BookingTypeVIPCouch,
		GuestCount:    2,
		AddOnIDs:      []string{"flowers", "bottle_service"}, // 25 + 95
		ExperienceIDs: []string{"wine_tasting"},              // 60
	})

	assert.Equal(t, "150.00", b.BasePrice.StringFixed(2))
	assert.Equal(t, "120.00", b.AddOnsTotal.StringFixed(2))
	assert.Equal(t, "60.00", b.ExperiencesTotal.StringFixed(2))
	assert.Equal(t, "330.00", b.Subtotal.StringFixed(2))
	assert.Equal(t, "330.00", b.Total.StringFixed(2))
}

func TestBookingBreakdown_StaleSelectionsContributeZero(t *testing.T) {
	calc := newTestCalculator(t)

	// bottle_service applies to vip_couch/private_room only; after switching to
	// a bar seat it must silently price at zero, not error.
	sel := model.BookingSelection{
		Type:       catalog.BookingTypeBarSeat,
		GuestCount: 2,
		AddOnIDs:   []string{"bottle_service", "flowers", "no_such_addon"},
	}
	b := calc.BookingBreakdown(sel)

	assert.Equal(t, "25.00", b.AddOnsTotal.StringFixed(2), "only flowers should be priced")
}

func TestBookingBreakdown_UnavailableAddOnExcluded(t *testing.T) {
	calc := newTestCalculator(t)

	b := calc.BookingBreakdown(model.BookingSelection{
		Type:       catalog.BookingTypeStandardTable,
		GuestCount: 2,
		AddOnIDs:   []string{"parking"}, // fixture flagged unavailable
	})

	assert.True(t, b.AddOnsTotal.IsZero())
}

func TestBookingBreakdown_Deterministic(t *testing.T) {
	calc := newTestCalculator(t)

	sel := model.BookingSelection{
		Type:          catalog.BookingTypeVIPCouch,
		GuestCount:    4,
		AddOnIDs:      []string{"flowers", "photographer"},
		ExperienceIDs: []string{"wine_tasting", "mixology_class"},
		CouponCode:    strPtr("VIP20"),
	}

	first := calc.BookingBreakdown(sel)
	second := calc.BookingBreakdown(sel)

	assert.Equal(t, first, second)
}

func TestBookingBreakdown_CouponApplied(t *testing.T) {
	calc := newTestCalculator(t)

	b := calc.BookingBreakdown(model.BookingSelection{
		Type:       catalog.BookingTypeVIPCouch,
		GuestCount: 2,
		CouponCode: strPtr("VIP20"), // 20%, min spend 150
	})

	assert.Equal(t, "30.00", b.Discount.StringFixed(2))
	assert.Equal(t, "120.00", b.Total.StringFixed(2))
	assert.Nil(t, b.CouponRejection)
}

func TestBookingBreakdown_CouponReResolvedWhenSelectionShrinks(t *testing.T) {
	calc := newTestCalculator(t)

	// One guest on a VIP couch is $75, below VIP20's $150 minimum: the applied
	// code stays but yields no discount, and the rejection is surfaced.
	b := calc.BookingBreakdown(model.BookingSelection{
		Type:       catalog.BookingTypeVIPCouch,
		GuestCount: 1,
		CouponCode: strPtr("VIP20"),
	})

	assert.True(t, b.Discount.IsZero())
	assert.Equal(t, b.Subtotal, b.Total)
	require.NotNil(t, b.CouponRejection)
	assert.Equal(t, couponModel.ReasonBelowMinimumSpend, *b.CouponRejection)
}

func TestBookingBreakdown_TotalNeverNegative(t *testing.T) {
	calc := newTestCalculator(t)

	// WELCOME10 is a $10 fixed discount; an empty standard booking subtotals
	// at $0 but WELCOME10 has no minimum spend, so the clamp must hold.
	b := calc.BookingBreakdown(model.BookingSelection{
		Type:       catalog.BookingTypeStandardTable,
		GuestCount: 2,
		CouponCode: strPtr("WELCOME10"),
	})

	assert.False(t, b.Total.IsNegative())
	assert.True(t, b.Discount.LessThanOrEqual(b.Subtotal))
}

func TestOrderBreakdown_LinesAndOptions(t *testing.T) {
	calc := newTestCalculator(t)

	// wagyu_burger 24 + truffle_fries 4.50 = 28.50/unit × 2 = 57
	// flat_white 4.50 + extra_shot 1.50 + oat_milk 0.80 = 6.80/unit × 3 = 20.40
	b := calc.OrderBreakdown(model.OrderSelection{
		Lines: []model.OrderLine{
			{MenuItemID: "wagyu_burger", Quantity: 2, OptionIDs: []string{"truffle_fries"}},
			{MenuItemID: "flat_white", Quantity: 3, OptionIDs: []string{"extra_shot", "oat_milk"}},
		},
	})

	assert.Equal(t, "77.40", b.ItemsTotal.StringFixed(2))
	assert.Equal(t, "77.40", b.Subtotal.StringFixed(2))
	assert.Equal(t, "77.40", b.Total.StringFixed(2))
}

func TestOrderBreakdown_UnknownLinesSkipped(t *testing.T) {
	calc := newTestCalculator(t)

	b := calc.OrderBreakdown(model.OrderSelection{
		Lines: []model.OrderLine{
			{MenuItemID: "tiramisu", Quantity: 1},
			{MenuItemID: "ghost_item", Quantity: 5},
			{MenuItemID: "negroni", Quantity: 0}, // zero quantity ignored
		},
	})

	assert.Equal(t, "9.00", b.ItemsTotal.StringFixed(2))
}

func TestOrderBreakdown_OrderCoupon(t *testing.T) {
	calc := newTestCalculator(t)

	// HAPPYHOUR15: 15% off orders, min spend 40.
	b := calc.OrderBreakdown(model.OrderSelection{
		Lines: []model.OrderLine{
			{MenuItemID: "seabass", Quantity: 2}, // 56
		},
		CouponCode: strPtr("HAPPYHOUR15"),
	})

	assert.Equal(t, "8.40", b.Discount.StringFixed(2))
	assert.Equal(t, "47.60", b.Total.StringFixed(2))
}

func TestNewCalculator_RejectsIncompleteRateTable(t *testing.T) {
	store, err := repository.NewDefaultMemory()
	require.NoError(t, err)

	cfg := config.PricingConfig{CoverRates: map[string]decimal.Decimal{
		"vip_couch": dec("75"), // every other type missing
	}}
	_, err = NewCalculator(store, cfg, couponService.NewResolver(store))
	assert.Error(t, err)
}
