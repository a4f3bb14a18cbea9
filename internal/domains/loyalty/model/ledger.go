package model

import (
	"time"

	"github.com/shopspring/decimal"

	catalog "venuebook-backend/internal/domains/catalog/model"
)

// TransactionType discriminates what kind of completed transaction is being
// recorded against the ledger.
type TransactionType string

const (
	TransactionBooking TransactionType = "booking"
	TransactionOrder   TransactionType = "order"
)

// Achievement is the per-user state of one achievement definition. Points are
// granted exactly once: after Achieved flips true it never flips back and the
// reward is never re-granted.
type Achievement struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description,omitempty"`
	Kind         catalog.AchievementKind `json:"kind"`
	PointsReward int                     `json:"points_reward"`
	Achieved     bool                    `json:"achieved"`
	AchievedAt   *time.Time              `json:"achieved_at,omitempty"`
}

// VenueStat accumulates the user's history at one venue.
type VenueStat struct {
	VenueID    string          `json:"venue_id"`
	VenueName  string          `json:"venue_name"`
	Visits     int             `json:"visits"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	LastVisit  time.Time       `json:"last_visit"`
}

// Reward is a redeemable reward still sitting in the user's inventory.
type Reward struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PointCost  int    `json:"point_cost"`
	ExpiryDays int    `json:"expiry_days,omitempty"`
}

// RedeemedReward is a reward after redemption. The code is generated at
// redemption time and is unique per redemption.
type RedeemedReward struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	PointCost  int        `json:"point_cost"`
	Code       string     `json:"code"`
	RedeemedAt time.Time  `json:"redeemed_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// Ledger is the single user's loyalty state for the session. Tier is always
// derived from CurrentPoints against the tier table; LifetimePoints never
// decreases, while CurrentPoints drops when rewards are redeemed.
type Ledger struct {
	UserID         string       `json:"user_id"`
	CurrentPoints  int          `json:"current_points"`
	LifetimePoints int          `json:"lifetime_points"`
	Tier           catalog.Tier `json:"tier"`
	JoinedAt       time.Time    `json:"joined_at"`

	Achievements     []Achievement    `json:"achievements"`
	VenueStats       []VenueStat      `json:"venue_stats"`
	AvailableRewards []Reward         `json:"available_rewards"`
	RedeemedRewards  []RedeemedReward `json:"redeemed_rewards"`

	LastTransactionAt *time.Time `json:"last_transaction_at,omitempty"`
	ConsecutiveCount  int        `json:"consecutive_count"`

	BookingCount int `json:"booking_count"`
	OrderCount   int `json:"order_count"`
}

// TotalVisits sums visits across all venues.
func (l *Ledger) TotalVisits() int {
	total := 0
	for _, vs := range l.VenueStats {
		total += vs.Visits
	}
	return total
}

// TotalSpent sums lifetime spend across all venues.
func (l *Ledger) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, vs := range l.VenueStats {
		total = total.Add(vs.TotalSpent)
	}
	return total
}

// TransactionResult reports what one recorded transaction earned, component by
// component.
type TransactionResult struct {
	BasePoints        int `json:"base_points"`
	CountPoints       int `json:"count_points"`
	SpendPoints       int `json:"spend_points"`
	ConsecutiveBonus  int `json:"consecutive_bonus"`
	AchievementPoints int `json:"achievement_points"`
	TotalPoints       int `json:"total_points"`

	UnlockedAchievements []Achievement `json:"unlocked_achievements,omitempty"`
}

// Summary is the snapshot the presentation layer renders on the loyalty screen.
type Summary struct {
	UserID            string        `json:"user_id"`
	CurrentPoints     int           `json:"current_points"`
	LifetimePoints    int           `json:"lifetime_points"`
	Tier              catalog.Tier  `json:"tier"`
	NextTier          *catalog.Tier `json:"next_tier,omitempty"`
	TierProgress      int           `json:"tier_progress"` // percent, 0..100
	JoinedAt          time.Time     `json:"joined_at"`
	ConsecutiveCount  int           `json:"consecutive_count"`
	LastTransactionAt *time.Time    `json:"last_transaction_at,omitempty"`
}
