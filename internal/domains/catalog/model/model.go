package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BookingType is the closed set of bookable seating types. Parsing an unknown
// value is an error so a stale discriminator can never silently price to zero.
type BookingType string

const (
	BookingTypeStandardTable BookingType = "standard_table"
	BookingTypeBarSeat       BookingType = "bar_seat"
	BookingTypeOutdoorPatio  BookingType = "outdoor_patio"
	BookingTypePrivateRoom   BookingType = "private_room"
	BookingTypeVIPCouch      BookingType = "vip_couch"
	BookingTypeChefsTable    BookingType = "chefs_table"
)

// AllBookingTypes returns every valid booking type, in display order.
func AllBookingTypes() []BookingType {
	return []BookingType{
		BookingTypeStandardTable,
		BookingTypeBarSeat,
		BookingTypeOutdoorPatio,
		BookingTypePrivateRoom,
		BookingTypeVIPCouch,
		BookingTypeChefsTable,
	}
}

// ParseBookingType validates a raw discriminator string.
func ParseBookingType(raw string) (BookingType, error) {
	for _, t := range AllBookingTypes() {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown booking type %q", raw)
}

// MenuCategory groups menu items for the in-venue ordering flow.
type MenuCategory string

const (
	CategoryStarters MenuCategory = "starters"
	CategoryMains    MenuCategory = "mains"
	CategoryDesserts MenuCategory = "desserts"
	CategoryDrinks   MenuCategory = "drinks"
)

// AddOn is a bookable extra (flowers, cake, photographer...) priced per booking.
type AddOn struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	AppliesTo []BookingType   `json:"applies_to"`
	Available bool            `json:"available"`
	Popular   bool            `json:"popular,omitempty"`
}

// AppliesToType reports whether the add-on can be sold for the given booking type.
func (a *AddOn) AppliesToType(t BookingType) bool {
	for _, bt := range a.AppliesTo {
		if bt == t {
			return true
		}
	}
	return false
}

// Experience is a premium on-site experience (tasting flight, mixology class...).
type Experience struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	AppliesTo []BookingType   `json:"applies_to"`
	Available bool            `json:"available"`
	Popular   bool            `json:"popular,omitempty"`
}

// AppliesToType reports whether the experience can be sold for the given booking type.
func (e *Experience) AppliesToType(t BookingType) bool {
	for _, bt := range e.AppliesTo {
		if bt == t {
			return true
		}
	}
	return false
}

// ItemOption is a per-unit extra on a menu item (extra shot, side upgrade...).
// Priced once per unit and multiplied by the cart line's quantity.
type ItemOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// MenuItem is an orderable food or drink item.
type MenuItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  MenuCategory    `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
	Popular   bool            `json:"popular,omitempty"`
	Options   []ItemOption    `json:"options,omitempty"`
}

// Option returns the item option with the given id, or nil.
func (m *MenuItem) Option(id string) *ItemOption {
	for i := range m.Options {
		if m.Options[i].ID == id {
			return &m.Options[i]
		}
	}
	return nil
}

// Venue is a bookable location. The demo ships a handful of fixture venues.
type Venue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// Tier is one row of the loyalty tier table, identified by its minimum-points
// threshold. The table is ordered ascending by MinPoints.
type Tier struct {
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
}

// AchievementKind enumerates the built-in achievement conditions. Thresholds
// for each kind come from config, not from the definition.
type AchievementKind string

const (
	AchievementFirstBooking AchievementKind = "first_booking"
	AchievementFirstOrder   AchievementKind = "first_order"
	AchievementExplorer     AchievementKind = "explorer"    // distinct venues visited
	AchievementRegular      AchievementKind = "regular"     // total visits
	AchievementBigSpender   AchievementKind = "big_spender" // lifetime spend
	AchievementStreak       AchievementKind = "streak"      // consecutive transactions
)

// AchievementDef is the static definition of an achievement; the per-user
// achieved flag and date live on the loyalty ledger.
type AchievementDef struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Kind         AchievementKind `json:"kind"`
	PointsReward int             `json:"points_reward"`
}

// RewardDef is the static definition of a redeemable reward.
type RewardDef struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PointCost  int    `json:"point_cost"`
	ExpiryDays int    `json:"expiry_days,omitempty"` // 0 = never expires
}
