package repository

import (
	catalog "venuebook-backend/internal/domains/catalog/model"
	coupon "venuebook-backend/internal/domains/coupon/model"
)

// Store is the read-only catalog of fixture reference data. Everything behind
// it is created at process start and immutable afterwards, so lookups are safe
// from any goroutine.
type Store interface {
	AddOn(id string) (*catalog.AddOn, bool)
	AddOns() []catalog.AddOn
	AddOnsFor(t catalog.BookingType) []catalog.AddOn

	Experience(id string) (*catalog.Experience, bool)
	Experiences() []catalog.Experience
	ExperiencesFor(t catalog.BookingType) []catalog.Experience

	MenuItem(id string) (*catalog.MenuItem, bool)
	MenuItems() []catalog.MenuItem
	MenuItemsBy(c catalog.MenuCategory) []catalog.MenuItem

	Venue(id string) (*catalog.Venue, bool)
	Venues() []catalog.Venue

	// CouponByCode matches case-insensitively.
	CouponByCode(code string) (*coupon.Coupon, bool)
	Coupons() []coupon.Coupon

	// Tiers is ordered ascending by MinPoints.
	Tiers() []catalog.Tier
	Achievements() []catalog.AchievementDef
	Rewards() []catalog.RewardDef
}
