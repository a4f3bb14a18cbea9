package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config holds the whole application configuration.
// Populated from environment variables with demo defaults, so the service
// boots with no .env at all.
type Config struct {
	App     AppConfig
	Pricing PricingConfig
	Loyalty LoyaltyConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// PricingConfig carries the per-guest cover rates by booking type.
// Rates are decimals in currency units (e.g. "75" = $75.00 per guest).
type PricingConfig struct {
	CoverRates map[string]decimal.Decimal
}

// LoyaltyConfig carries the points-award rules, the consecutive-visit bonus
// window and the achievement thresholds. These are tunable business rules,
// not invariants.
type LoyaltyConfig struct {
	BasePointsPerTransaction int             // flat award per completed transaction
	PointsPerGuest           int             // × guest count (bookings) or item count (orders)
	PointsPerDollar          decimal.Decimal // floor(amountSpent × rate)
	ConsecutiveWindowDays    int             // a follow-up visit within this window keeps the streak
	ConsecutiveBonusPoints   int

	// Achievement thresholds
	ExplorerVenues   int             // distinct venues visited
	RegularVisits    int             // total visits across venues
	BigSpenderAmount decimal.Decimal // lifetime spend
	StreakLength     int             // consecutive transactions
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Venuebook API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Pricing: PricingConfig{
			CoverRates: map[string]decimal.Decimal{
				"standard_table": getEnvDecimal("COVER_RATE_STANDARD_TABLE", "0"),
				"bar_seat":       getEnvDecimal("COVER_RATE_BAR_SEAT", "0"),
				"outdoor_patio":  getEnvDecimal("COVER_RATE_OUTDOOR_PATIO", "0"),
				"private_room":   getEnvDecimal("COVER_RATE_PRIVATE_ROOM", "50"),
				"vip_couch":      getEnvDecimal("COVER_RATE_VIP_COUCH", "75"),
				"chefs_table":    getEnvDecimal("COVER_RATE_CHEFS_TABLE", "120"),
			},
		},
		Loyalty: LoyaltyConfig{
			BasePointsPerTransaction: getEnvInt("LOYALTY_BASE_POINTS", 10),
			PointsPerGuest:           getEnvInt("LOYALTY_POINTS_PER_GUEST", 5),
			PointsPerDollar:          getEnvDecimal("LOYALTY_POINTS_PER_DOLLAR", "0.5"),
			ConsecutiveWindowDays:    getEnvInt("LOYALTY_CONSECUTIVE_WINDOW_DAYS", 30),
			ConsecutiveBonusPoints:   getEnvInt("LOYALTY_CONSECUTIVE_BONUS", 25),
			ExplorerVenues:           getEnvInt("ACHIEVEMENT_EXPLORER_VENUES", 3),
			RegularVisits:            getEnvInt("ACHIEVEMENT_REGULAR_VISITS", 5),
			BigSpenderAmount:         getEnvDecimal("ACHIEVEMENT_BIG_SPENDER_AMOUNT", "1000"),
			StreakLength:             getEnvInt("ACHIEVEMENT_STREAK_LENGTH", 3),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	for bookingType, rate := range c.Pricing.CoverRates {
		if rate.IsNegative() {
			return fmt.Errorf("cover rate for %s must be non-negative, got %s", bookingType, rate)
		}
	}
	if c.Loyalty.BasePointsPerTransaction < 0 || c.Loyalty.PointsPerGuest < 0 {
		return fmt.Errorf("loyalty point awards must be non-negative")
	}
	if c.Loyalty.PointsPerDollar.IsNegative() {
		return fmt.Errorf("points-per-dollar rate must be non-negative")
	}
	if c.Loyalty.ConsecutiveWindowDays < 1 {
		return fmt.Errorf("consecutive window must be at least 1 day")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDecimal(key, defaultValue string) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.RequireFromString(defaultValue)
	}
	return parsed
}
