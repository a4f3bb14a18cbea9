package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "venuebook-backend/internal/domains/catalog/model"
	coupon "venuebook-backend/internal/domains/coupon/model"
)

var minimalTiers = []catalog.Tier{{Name: "Bronze", MinPoints: 0}}

func TestNewMemory_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewMemory(Fixtures{
		Tiers: minimalTiers,
		AddOns: []catalog.AddOn{
			{ID: "candles", Name: "A"},
			{ID: "candles", Name: "B"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate add-on")
}

func TestNewMemory_RejectsDuplicateCouponCodes(t *testing.T) {
	_, err := NewMemory(Fixtures{
		Tiers: minimalTiers,
		Coupons: []coupon.Coupon{
			{ID: "a", Code: "SAVE10"},
			{ID: "b", Code: "save10"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate coupon")
}

func TestNewMemory_TierTableRules(t *testing.T) {
	_, err := NewMemory(Fixtures{})
	assert.Error(t, err, "empty tier table")

	_, err = NewMemory(Fixtures{Tiers: []catalog.Tier{{Name: "Silver", MinPoints: 500}}})
	assert.Error(t, err, "lowest tier must start at 0")
}

func TestTiers_SortedAscending(t *testing.T) {
	store, err := NewMemory(Fixtures{
		Tiers: []catalog.Tier{
			{Name: "Gold", MinPoints: 1500},
			{Name: "Bronze", MinPoints: 0},
			{Name: "Silver", MinPoints: 500},
		},
	})
	require.NoError(t, err)

	tiers := store.Tiers()
	require.Len(t, tiers, 3)
	assert.Equal(t, "Bronze", tiers[0].Name)
	assert.Equal(t, "Silver", tiers[1].Name)
	assert.Equal(t, "Gold", tiers[2].Name)
}

func TestCouponByCode_CaseInsensitive(t *testing.T) {
	store, err := NewDefaultMemory()
	require.NoError(t, err)

	for _, code := range []string{"VIP20", "vip20", "Vip20"} {
		c, ok := store.CouponByCode(code)
		require.True(t, ok, code)
		assert.Equal(t, "VIP20", c.Code)
	}

	_, ok := store.CouponByCode("VIP21")
	assert.False(t, ok)
}

func TestAddOnsFor_FiltersTypeAndAvailability(t *testing.T) {
	store, err := NewDefaultMemory()
	require.NoError(t, err)

	ids := func(addOns []catalog.AddOn) []string {
		out := make([]string, 0, len(addOns))
		for _, a := range addOns {
			out = append(out, a.ID)
		}
		return out
	}

	standard := ids(store.AddOnsFor(catalog.BookingTypeStandardTable))
	assert.Contains(t, standard, "candles")
	assert.NotContains(t, standard, "photographer", "premium-only add-on")
	assert.NotContains(t, standard, "parking", "unavailable add-on")

	vip := ids(store.AddOnsFor(catalog.BookingTypeVIPCouch))
	assert.Contains(t, vip, "photographer")
	assert.Contains(t, vip, "bottle_service")
}

func TestMenuItemsBy_FiltersCategory(t *testing.T) {
	store, err := NewDefaultMemory()
	require.NoError(t, err)

	desserts := store.MenuItemsBy(catalog.CategoryDesserts)
	require.Len(t, desserts, 2)
	for _, item := range desserts {
		assert.Equal(t, catalog.CategoryDesserts, item.Category)
	}
}

func TestLookupsCopyNotAlias(t *testing.T) {
	store, err := NewDefaultMemory()
	require.NoError(t, err)

	first, ok := store.AddOn("candles")
	require.True(t, ok)
	first.Price = decimal.RequireFromString("999")

	second, ok := store.AddOn("candles")
	require.True(t, ok)
	assert.Equal(t, "8", second.Price.String())
}

func TestDefaultFixtures_Valid(t *testing.T) {
	store, err := NewDefaultMemory()
	require.NoError(t, err)

	assert.NotEmpty(t, store.AddOns())
	assert.NotEmpty(t, store.Experiences())
	assert.NotEmpty(t, store.MenuItems())
	assert.NotEmpty(t, store.Venues())
	assert.NotEmpty(t, store.Coupons())
	assert.NotEmpty(t, store.Achievements())
	assert.NotEmpty(t, store.Rewards())
}
