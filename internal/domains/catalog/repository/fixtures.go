package repository

import (
	"time"

	"github.com/shopspring/decimal"

	catalog "venuebook-backend/internal/domains/catalog/model"
	coupon "venuebook-backend/internal/domains/coupon/model"
)

// DefaultFixtures returns the demo catalog seeded at process start.
func DefaultFixtures() Fixtures {
	return Fixtures{
		AddOns:       defaultAddOns(),
		Experiences:  defaultExperiences(),
		MenuItems:    defaultMenuItems(),
		Venues:       defaultVenues(),
		Coupons:      defaultCoupons(),
		Tiers:        defaultTiers(),
		Achievements: defaultAchievements(),
		Rewards:      defaultRewards(),
	}
}

// NewDefaultMemory is a convenience for wiring and tests.
func NewDefaultMemory() (Store, error) {
	return NewMemory(DefaultFixtures())
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func allTypes() []catalog.BookingType { return catalog.AllBookingTypes() }

func premiumTypes() []catalog.BookingType {
	return []catalog.BookingType{
		catalog.BookingTypePrivateRoom,
		catalog.BookingTypeVIPCouch,
		catalog.BookingTypeChefsTable,
	}
}

func defaultAddOns() []catalog.AddOn {
	return []catalog.AddOn{
		{ID: "candles", Name: "Table Candles", Price: price("8"), AppliesTo: allTypes(), Available: true},
		{ID: "flowers", Name: "Fresh Flower Arrangement", Price: price("25"), AppliesTo: allTypes(), Available: true, Popular: true},
		{ID: "birthday_cake", Name: "Birthday Cake", Price: price("35"), AppliesTo: allTypes(), Available: true, Popular: true},
		{ID: "welcome_prosecco", Name: "Welcome Prosecco", Price: price("18"), AppliesTo: allTypes(), Available: true},
		{ID: "photographer", Name: "Private Photographer (1h)", Price: price("120"), AppliesTo: premiumTypes(), Available: true},
		{ID: "bottle_service", Name: "Bottle Service", Price: price("95"), AppliesTo: []catalog.BookingType{catalog.BookingTypeVIPCouch, catalog.BookingTypePrivateRoom}, Available: true, Popular: true},
		{ID: "decorations", Name: "Celebration Decorations", Price: price("45"), AppliesTo: premiumTypes(), Available: true},
		{ID: "parking", Name: "Valet Parking", Price: price("15"), AppliesTo: allTypes(), Available: false},
	}
}

func defaultExperiences() []catalog.Experience {
	return []catalog.Experience{
		{ID: "wine_tasting", Name: "Sommelier Wine Tasting", Price: price("60"), AppliesTo: allTypes(), Available: true, Popular: true},
		{ID: "mixology_class", Name: "Mixology Masterclass", Price: price("75"), AppliesTo: []catalog.BookingType{catalog.BookingTypeBarSeat, catalog.BookingTypeVIPCouch, catalog.BookingTypePrivateRoom}, Available: true},
		{ID: "chefs_menu", Name: "Chef's Tasting Menu", Price: price("110"), AppliesTo: []catalog.BookingType{catalog.BookingTypeChefsTable, catalog.BookingTypePrivateRoom}, Available: true, Popular: true},
		{ID: "live_jazz", Name: "Live Jazz Set", Price: price("40"), AppliesTo: allTypes(), Available: true},
		{ID: "cigar_lounge", Name: "Cigar Lounge Access", Price: price("55"), AppliesTo: []catalog.BookingType{catalog.BookingTypeVIPCouch, catalog.BookingTypePrivateRoom}, Available: true},
	}
}

func defaultMenuItems() []catalog.MenuItem {
	espresso := catalog.ItemOption{ID: "extra_shot", Name: "Extra Shot", Price: price("1.50")}
	oatMilk := catalog.ItemOption{ID: "oat_milk", Name: "Oat Milk", Price: price("0.80")}
	truffle := catalog.ItemOption{ID: "truffle_fries", Name: "Truffle Fries Upgrade", Price: price("4.50")}
	cheese := catalog.ItemOption{ID: "extra_cheese", Name: "Extra Cheese", Price: price("2")}
	return []catalog.MenuItem{
		{ID: "burrata", Name: "Burrata & Heirloom Tomato", Category: catalog.CategoryStarters, Price: price("14"), Available: true, Popular: true},
		{ID: "calamari", Name: "Crispy Calamari", Category: catalog.CategoryStarters, Price: price("12.50"), Available: true},
		{ID: "wagyu_burger", Name: "Wagyu Burger", Category: catalog.CategoryMains, Price: price("24"), Available: true, Popular: true, Options: []catalog.ItemOption{truffle, cheese}},
		{ID: "seabass", Name: "Pan-Seared Sea Bass", Category: catalog.CategoryMains, Price: price("28"), Available: true},
		{ID: "rigatoni", Name: "Short Rib Rigatoni", Category: catalog.CategoryMains, Price: price("22"), Available: true},
		{ID: "tiramisu", Name: "Classic Tiramisu", Category: catalog.CategoryDesserts, Price: price("9"), Available: true, Popular: true},
		{ID: "fondant", Name: "Chocolate Fondant", Category: catalog.CategoryDesserts, Price: price("10.50"), Available: true},
		{ID: "espresso_martini", Name: "Espresso Martini", Category: catalog.CategoryDrinks, Price: price("13"), Available: true, Popular: true, Options: []catalog.ItemOption{espresso}},
		{ID: "flat_white", Name: "Flat White", Category: catalog.CategoryDrinks, Price: price("4.50"), Available: true, Options: []catalog.ItemOption{espresso, oatMilk}},
		{ID: "negroni", Name: "Barrel-Aged Negroni", Category: catalog.CategoryDrinks, Price: price("14"), Available: true},
	}
}

func defaultVenues() []catalog.Venue {
	return []catalog.Venue{
		{ID: "velvet_room", Name: "The Velvet Room", City: "Downtown"},
		{ID: "harbor_house", Name: "Harbor House", City: "Waterfront"},
		{ID: "skyline_lounge", Name: "Skyline Lounge", City: "Midtown"},
		{ID: "garden_terrace", Name: "Garden Terrace", City: "Old Town"},
	}
}

func defaultCoupons() []coupon.Coupon {
	minSpend := func(s string) *decimal.Decimal {
		d := price(s)
		return &d
	}
	expiry := func(t time.Time) *time.Time { return &t }
	return []coupon.Coupon{
		{
			ID: "vip20", Code: "VIP20", Name: "VIP Night 20% Off",
			Kind: coupon.DiscountKindPercentage, Value: price("20"),
			AppliesTo:    premiumTypes(),
			MinimumSpend: minSpend("150"),
		},
		{
			ID: "welcome10", Code: "WELCOME10", Name: "Welcome $10 Off",
			Kind: coupon.DiscountKindFixed, Value: price("10"),
			AppliesTo: allTypes(), ForOrders: true,
		},
		{
			ID: "happyhour15", Code: "HAPPYHOUR15", Name: "Happy Hour 15% Off",
			Kind: coupon.DiscountKindPercentage, Value: price("15"),
			ForOrders:    true,
			MinimumSpend: minSpend("40"),
		},
		{
			ID: "summer25", Code: "SUMMER25", Name: "Summer Terrace 25% Off",
			Kind: coupon.DiscountKindPercentage, Value: price("25"),
			AppliesTo: []catalog.BookingType{catalog.BookingTypeOutdoorPatio, catalog.BookingTypeStandardTable},
			ExpiresAt: expiry(time.Date(2026, time.September, 30, 23, 59, 59, 0, time.UTC)),
		},
		{
			ID: "flash50", Code: "FLASH50", Name: "Flash Sale $50 Off",
			Kind: coupon.DiscountKindFixed, Value: price("50"),
			AppliesTo:    premiumTypes(),
			MinimumSpend: minSpend("200"),
			ExpiresAt:    expiry(time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)),
		},
	}
}

func defaultTiers() []catalog.Tier {
	return []catalog.Tier{
		{Name: "Bronze", MinPoints: 0},
		{Name: "Silver", MinPoints: 500},
		{Name: "Gold", MinPoints: 1500},
		{Name: "Platinum", MinPoints: 4000},
	}
}

func defaultAchievements() []catalog.AchievementDef {
	return []catalog.AchievementDef{
		{ID: "first_booking", Title: "First Night Out", Description: "Complete your first booking", Kind: catalog.AchievementFirstBooking, PointsReward: 50},
		{ID: "first_order", Title: "First Round", Description: "Place your first in-venue order", Kind: catalog.AchievementFirstOrder, PointsReward: 30},
		{ID: "explorer", Title: "City Explorer", Description: "Visit several different venues", Kind: catalog.AchievementExplorer, PointsReward: 100},
		{ID: "regular", Title: "Regular", Description: "Keep coming back", Kind: catalog.AchievementRegular, PointsReward: 75},
		{ID: "big_spender", Title: "Big Spender", Description: "A night to remember", Kind: catalog.AchievementBigSpender, PointsReward: 200},
		{ID: "streak", Title: "On a Roll", Description: "Back-to-back visits", Kind: catalog.AchievementStreak, PointsReward: 60},
	}
}

func defaultRewards() []catalog.RewardDef {
	return []catalog.RewardDef{
		{ID: "free_dessert", Title: "Free Dessert", PointCost: 150},
		{ID: "free_cocktail", Title: "Free Signature Cocktail", PointCost: 250},
		{ID: "skip_queue", Title: "Skip-the-Queue Pass", PointCost: 400, ExpiryDays: 30},
		{ID: "chefs_table_upgrade", Title: "Chef's Table Upgrade", PointCost: 800, ExpiryDays: 60},
		{ID: "private_room_hour", Title: "Private Room, First Hour Free", PointCost: 1200, ExpiryDays: 90},
	}
}
