package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook-backend/internal/config"
	"venuebook-backend/internal/domains/catalog/repository"
	couponModel "venuebook-backend/internal/domains/coupon/model"
	couponService "venuebook-backend/internal/domains/coupon/service"
	loyaltyService "venuebook-backend/internal/domains/loyalty/service"
	"venuebook-backend/internal/domains/order/model"
	pricingService "venuebook-backend/internal/domains/pricing/service"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	store, err := repository.NewDefaultMemory()
	require.NoError(t, err)
	cfg, err := config.Load()
	require.NoError(t, err)

	resolver := couponService.NewResolver(store)
	resolver.Now = func() time.Time { return time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC) }
	calc, err := pricingService.NewCalculator(store, cfg.Pricing, resolver)
	require.NoError(t, err)
	loyalty := loyaltyService.NewService(store, cfg.Loyalty, "test-user")

	return NewSession(store, calc, resolver, loyalty)
}

func TestAddItem_Validation(t *testing.T) {
	s := newTestSession(t)

	assert.ErrorIs(t, s.AddItem("tiramisu", 0, nil), model.ErrInvalidQuantity)
	assert.ErrorIs(t, s.AddItem("tiramisu", 21, nil), model.ErrInvalidQuantity)
	assert.ErrorIs(t, s.AddItem("unicorn_steak", 1, nil), model.ErrUnknownMenuItem)
	assert.ErrorIs(t, s.AddItem("tiramisu", 1, []string{"extra_shot"}), model.ErrUnknownOption)
	assert.Empty(t, s.State().Lines)
}

func TestAddItem_MergesLinesWithSameOptions(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.AddItem("wagyu_burger", 1, []string{"truffle_fries"}))
	require.NoError(t, s.AddItem("wagyu_burger", 2, []string{"truffle_fries"}))
	// Different option set means a separate line.
	require.NoError(t, s.AddItem("wagyu_burger", 1, nil))

	st := s.State()
	require.Len(t, st.Lines, 2)
	assert.Equal(t, 3, st.Lines[0].Quantity)
	assert.Equal(t, "28.50", st.Lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "85.50", st.Lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, 1, st.Lines[1].Quantity)
	assert.Equal(t, 4, st.ItemCount)
}

func TestAddItem_MergeRespectsQuantityCap(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.AddItem("negroni", 15, nil))
	assert.ErrorIs(t, s.AddItem("negroni", 6, nil), model.ErrInvalidQuantity)
	assert.Equal(t, 15, s.State().Lines[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.AddItem("tiramisu", 2, nil))

	assert.ErrorIs(t, s.UpdateQuantity("negroni", 3), model.ErrLineNotFound)
	assert.ErrorIs(t, s.UpdateQuantity("tiramisu", -1), model.ErrInvalidQuantity)

	require.NoError(t, s.UpdateQuantity("tiramisu", 5))
	assert.Equal(t, 5, s.State().Lines[0].Quantity)

	// Zero removes the line.
	require.NoError(t, s.UpdateQuantity("tiramisu", 0))
	assert.Empty(t, s.State().Lines)
}

func TestRemoveItem(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.AddItem("burrata", 1, nil))

	require.NoError(t, s.RemoveItem("burrata"))
	assert.Empty(t, s.State().Lines)
	assert.ErrorIs(t, s.RemoveItem("burrata"), model.ErrLineNotFound)
}

func TestApplyDiscount(t *testing.T) {
	s := newTestSession(t)

	// HAPPYHOUR15 needs a $40 cart.
	require.NoError(t, s.AddItem("burrata", 2, nil)) // 28.00
	assert.ErrorIs(t, s.ApplyDiscount("HAPPYHOUR15"), couponModel.ErrBelowMinimumSpend)

	require.NoError(t, s.AddItem("seabass", 1, nil)) // 56.00
	require.NoError(t, s.ApplyDiscount("HAPPYHOUR15"))

	b := s.Breakdown()
	assert.Equal(t, "56.00", b.Subtotal.StringFixed(2))
	assert.Equal(t, "8.40", b.Discount.StringFixed(2))
	assert.Equal(t, "47.60", b.Total.StringFixed(2))
}

func TestApplyDiscount_BookingOnlyCouponRejected(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.AddItem("seabass", 2, nil))

	// SUMMER25 is a booking coupon.
	assert.ErrorIs(t, s.ApplyDiscount("SUMMER25"), couponModel.ErrCouponNotApplicable)
}

func TestRemoveDiscount(t *testing.T) {
	s := newTestSession(t)

	assert.ErrorIs(t, s.RemoveDiscount(), model.ErrNoDiscountApplied)

	require.NoError(t, s.AddItem("seabass", 2, nil))
	require.NoError(t, s.ApplyDiscount("WELCOME10"))
	require.NoError(t, s.RemoveDiscount())
	assert.Nil(t, s.State().CouponCode)
	assert.Equal(t, "0.00", s.Breakdown().Discount.StringFixed(2))
}

func TestComplete_RequiresVenueAndItems(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Complete()
	assert.ErrorIs(t, err, model.ErrUnknownVenue)

	require.NoError(t, s.SetVenue("harbor_house"))
	_, err = s.Complete()
	assert.ErrorIs(t, err, model.ErrEmptyCart)
}

func TestComplete_RecordsLoyaltyAndResets(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetVenue("harbor_house"))
	require.NoError(t, s.AddItem("espresso_martini", 2, []string{"extra_shot"})) // 29.00
	require.NoError(t, s.AddItem("tiramisu", 1, nil))                            // 9.00

	conf, err := s.Complete()
	require.NoError(t, err)
	assert.Contains(t, conf.Reference, "ORD-")
	assert.Equal(t, "Harbor House", conf.VenueName)
	assert.Equal(t, "38.00", conf.Breakdown.Total.StringFixed(2))
	assert.Greater(t, conf.PointsEarned, 0)

	summary := s.loyalty.Summary()
	assert.Equal(t, conf.PointsEarned, summary.CurrentPoints)

	st := s.State()
	assert.Empty(t, st.VenueID)
	assert.Empty(t, st.Lines)
	assert.Equal(t, "0.00", st.Breakdown.Total.StringFixed(2))
}
