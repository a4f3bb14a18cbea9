package service

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"venuebook-backend/internal/config"
	catalog "venuebook-backend/internal/domains/catalog/model"
	"venuebook-backend/internal/domains/catalog/repository"
	"venuebook-backend/internal/domains/loyalty/model"
)

// Service owns the session's loyalty ledger. Every mutation runs under one
// lock so a reader can never observe points updated with the tier not yet
// re-derived, or points deducted with the reward still listed as available.
type Service struct {
	mu     sync.Mutex
	store  repository.Store
	cfg    config.LoyaltyConfig
	ledger *model.Ledger

	// Now is swappable so window and expiry math is testable.
	Now func() time.Time
}

// NewService builds a ledger seeded from the catalog's achievement and reward
// definitions, starting at the lowest tier with zero points.
func NewService(store repository.Store, cfg config.LoyaltyConfig, userID string) *Service {
	s := &Service{
		store: store,
		cfg:   cfg,
		Now:   time.Now,
	}

	achievements := make([]model.Achievement, 0, len(store.Achievements()))
	for _, def := range store.Achievements() {
		achievements = append(achievements, model.Achievement{
			ID:           def.ID,
			Title:        def.Title,
			Description:  def.Description,
			Kind:         def.Kind,
			PointsReward: def.PointsReward,
		})
	}

	rewards := make([]model.Reward, 0, len(store.Rewards()))
	for _, def := range store.Rewards() {
		rewards = append(rewards, model.Reward{
			ID:         def.ID,
			Title:      def.Title,
			PointCost:  def.PointCost,
			ExpiryDays: def.ExpiryDays,
		})
	}

	s.ledger = &model.Ledger{
		UserID:           userID,
		JoinedAt:         s.Now(),
		Achievements:     achievements,
		AvailableRewards: rewards,
	}
	s.ledger.Tier = s.deriveTier(0)
	return s
}

// AwardPoints adds amount to current and lifetime points and re-derives the
// tier. No other side effects.
func (s *Service) AwardPoints(amount int) error {
	if amount < 0 {
		return model.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyPoints(amount)
	return nil
}

// RecordTransaction applies one completed booking or order to the ledger and
// returns the points it earned, component by component.
func (s *Service) RecordTransaction(venueID, venueName string, amountSpent decimal.Decimal, count int, txType model.TransactionType) (*model.TransactionResult, error) {
	if amountSpent.IsNegative() || count < 0 {
		return nil, model.ErrInvalidAmount
	}
	if venueID == "" {
		return nil, model.ErrUnknownVenue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	result := &model.TransactionResult{
		BasePoints:  s.cfg.BasePointsPerTransaction,
		CountPoints: s.cfg.PointsPerGuest * count,
		SpendPoints: int(amountSpent.Mul(s.cfg.PointsPerDollar).Floor().IntPart()),
	}

	// Consecutive-visit streak: another transaction inside the window extends
	// it and earns the bonus; outside the window the streak restarts at 1.
	window := time.Duration(s.cfg.ConsecutiveWindowDays) * 24 * time.Hour
	if s.ledger.LastTransactionAt != nil && now.Sub(*s.ledger.LastTransactionAt) <= window {
		result.ConsecutiveBonus = s.cfg.ConsecutiveBonusPoints
		s.ledger.ConsecutiveCount++
	} else {
		s.ledger.ConsecutiveCount = 1
	}

	s.bumpVenueStat(venueID, venueName, amountSpent, now)

	switch txType {
	case model.TransactionOrder:
		s.ledger.OrderCount++
	default:
		s.ledger.BookingCount++
	}

	// Achievements are evaluated against the already-updated state; each one
	// pays out exactly once.
	for i := range s.ledger.Achievements {
		a := &s.ledger.Achievements[i]
		if a.Achieved || !s.conditionMet(a.Kind) {
			continue
		}
		a.Achieved = true
		achievedAt := now
		a.AchievedAt = &achievedAt
		result.AchievementPoints += a.PointsReward
		result.UnlockedAchievements = append(result.UnlockedAchievements, *a)
	}

	result.TotalPoints = result.BasePoints + result.CountPoints + result.SpendPoints +
		result.ConsecutiveBonus + result.AchievementPoints

	s.applyPoints(result.TotalPoints)
	s.ledger.LastTransactionAt = &now

	log.Info().
		Str("venue_id", venueID).
		Str("type", string(txType)).
		Str("amount", amountSpent.StringFixed(2)).
		Int("points_earned", result.TotalPoints).
		Str("tier", s.ledger.Tier.Name).
		Msg("Loyalty transaction recorded")

	return result, nil
}

// RedeemReward deducts the reward's point cost and moves it from available to
// redeemed, generating a unique redemption code. On any failure the ledger is
// left untouched.
func (s *Service) RedeemReward(rewardID string) (*model.RedeemedReward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, r := range s.ledger.AvailableRewards {
		if r.ID == rewardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, model.ErrRewardNotFound
	}

	reward := s.ledger.AvailableRewards[idx]
	if s.ledger.CurrentPoints < reward.PointCost {
		return nil, model.ErrInsufficientPoints
	}

	now := s.Now()
	redeemed := model.RedeemedReward{
		ID:         reward.ID,
		Title:      reward.Title,
		PointCost:  reward.PointCost,
		Code:       newRedemptionCode(),
		RedeemedAt: now,
	}
	if reward.ExpiryDays > 0 {
		expiresAt := now.AddDate(0, 0, reward.ExpiryDays)
		redeemed.ExpiresAt = &expiresAt
	}

	s.ledger.CurrentPoints -= reward.PointCost
	s.ledger.Tier = s.deriveTier(s.ledger.CurrentPoints) // may drop
	s.ledger.AvailableRewards = append(s.ledger.AvailableRewards[:idx], s.ledger.AvailableRewards[idx+1:]...)
	s.ledger.RedeemedRewards = append(s.ledger.RedeemedRewards, redeemed)

	log.Info().
		Str("reward_id", reward.ID).
		Str("code", redeemed.Code).
		Int("points_spent", reward.PointCost).
		Int("points_left", s.ledger.CurrentPoints).
		Msg("Reward redeemed")

	return &redeemed, nil
}

// TierProgress returns the percentage of the way from the current tier's
// threshold to the next tier's, clamped to [0,100]. At the top tier it is 100.
func (s *Service) TierProgress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tierProgressLocked()
}

// Summary returns a consistent snapshot for the loyalty screen.
func (s *Service) Summary() model.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := model.Summary{
		UserID:            s.ledger.UserID,
		CurrentPoints:     s.ledger.CurrentPoints,
		LifetimePoints:    s.ledger.LifetimePoints,
		Tier:              s.ledger.Tier,
		TierProgress:      s.tierProgressLocked(),
		JoinedAt:          s.ledger.JoinedAt,
		ConsecutiveCount:  s.ledger.ConsecutiveCount,
		LastTransactionAt: s.ledger.LastTransactionAt,
	}
	if next := s.nextTier(); next != nil {
		sum.NextTier = next
	}
	return sum
}

// Achievements returns a copy of the achievement list.
func (s *Service) Achievements() []model.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Achievement, len(s.ledger.Achievements))
	copy(out, s.ledger.Achievements)
	return out
}

// VenueStats returns a copy of the per-venue visit stats.
func (s *Service) VenueStats() []model.VenueStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.VenueStat, len(s.ledger.VenueStats))
	copy(out, s.ledger.VenueStats)
	return out
}

// Rewards returns copies of the available and redeemed reward lists.
func (s *Service) Rewards() (available []model.Reward, redeemed []model.RedeemedReward) {
	s.mu.Lock()
	defer s.mu.Unlock()
	available = make([]model.Reward, len(s.ledger.AvailableRewards))
	copy(available, s.ledger.AvailableRewards)
	redeemed = make([]model.RedeemedReward, len(s.ledger.RedeemedRewards))
	copy(redeemed, s.ledger.RedeemedRewards)
	return available, redeemed
}

// --- internals (callers hold the lock) ---

func (s *Service) applyPoints(amount int) {
	s.ledger.CurrentPoints += amount
	s.ledger.LifetimePoints += amount
	s.ledger.Tier = s.deriveTier(s.ledger.CurrentPoints)
}

// deriveTier scans the tier table from the highest threshold down; the tier is
// the first entry whose threshold fits. Recomputed from scratch on every
// points change.
func (s *Service) deriveTier(points int) catalog.Tier {
	tiers := s.store.Tiers()
	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].MinPoints <= points {
			return tiers[i]
		}
	}
	return tiers[0]
}

func (s *Service) nextTier() *catalog.Tier {
	tiers := s.store.Tiers()
	for i, t := range tiers {
		if t.Name == s.ledger.Tier.Name && i+1 < len(tiers) {
			next := tiers[i+1]
			return &next
		}
	}
	return nil
}

func (s *Service) tierProgressLocked() int {
	next := s.nextTier()
	if next == nil {
		return 100
	}
	span := next.MinPoints - s.ledger.Tier.MinPoints
	if span <= 0 {
		return 100
	}
	progress := int(math.Round(100 * float64(s.ledger.CurrentPoints-s.ledger.Tier.MinPoints) / float64(span)))
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

func (s *Service) bumpVenueStat(venueID, venueName string, amount decimal.Decimal, now time.Time) {
	for i := range s.ledger.VenueStats {
		if s.ledger.VenueStats[i].VenueID == venueID {
			s.ledger.VenueStats[i].Visits++
			s.ledger.VenueStats[i].TotalSpent = s.ledger.VenueStats[i].TotalSpent.Add(amount)
			s.ledger.VenueStats[i].LastVisit = now
			return
		}
	}
	s.ledger.VenueStats = append(s.ledger.VenueStats, model.VenueStat{
		VenueID:    venueID,
		VenueName:  venueName,
		Visits:     1,
		TotalSpent: amount,
		LastVisit:  now,
	})
}

func (s *Service) conditionMet(kind catalog.AchievementKind) bool {
	switch kind {
	case catalog.AchievementFirstBooking:
		return s.ledger.BookingCount >= 1
	case catalog.AchievementFirstOrder:
		return s.ledger.OrderCount >= 1
	case catalog.AchievementExplorer:
		return len(s.ledger.VenueStats) >= s.cfg.ExplorerVenues
	case catalog.AchievementRegular:
		return s.ledger.TotalVisits() >= s.cfg.RegularVisits
	case catalog.AchievementBigSpender:
		return s.ledger.TotalSpent().GreaterThanOrEqual(s.cfg.BigSpenderAmount)
	case catalog.AchievementStreak:
		return s.ledger.ConsecutiveCount >= s.cfg.StreakLength
	default:
		return false
	}
}

func newRedemptionCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "RDM-" + raw[:8]
}
