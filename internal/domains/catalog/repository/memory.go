package repository

import (
	"fmt"
	"sort"
	"strings"

	catalog "venuebook-backend/internal/domains/catalog/model"
	coupon "venuebook-backend/internal/domains/coupon/model"
)

// Fixtures is the seed data for a memory store.
type Fixtures struct {
	AddOns       []catalog.AddOn
	Experiences  []catalog.Experience
	MenuItems    []catalog.MenuItem
	Venues       []catalog.Venue
	Coupons      []coupon.Coupon
	Tiers        []catalog.Tier
	Achievements []catalog.AchievementDef
	Rewards      []catalog.RewardDef
}

// memoryStore is the in-memory Store backing a single demo session.
type memoryStore struct {
	addOns        map[string]catalog.AddOn
	experiences   map[string]catalog.Experience
	menuItems     map[string]catalog.MenuItem
	venues        map[string]catalog.Venue
	couponsByCode map[string]coupon.Coupon // key: lowercased code

	// slices preserve fixture order for listing endpoints
	addOnList      []catalog.AddOn
	experienceList []catalog.Experience
	menuItemList   []catalog.MenuItem
	venueList      []catalog.Venue
	couponList     []coupon.Coupon
	tiers          []catalog.Tier
	achievements   []catalog.AchievementDef
	rewards        []catalog.RewardDef
}

// NewMemory builds a Store from fixtures. Duplicate ids or coupon codes and an
// empty tier table are constructor-time errors, not silent runtime surprises.
func NewMemory(f Fixtures) (Store, error) {
	s := &memoryStore{
		addOns:        make(map[string]catalog.AddOn, len(f.AddOns)),
		experiences:   make(map[string]catalog.Experience, len(f.Experiences)),
		menuItems:     make(map[string]catalog.MenuItem, len(f.MenuItems)),
		venues:        make(map[string]catalog.Venue, len(f.Venues)),
		couponsByCode: make(map[string]coupon.Coupon, len(f.Coupons)),

		addOnList:      f.AddOns,
		experienceList: f.Experiences,
		menuItemList:   f.MenuItems,
		venueList:      f.Venues,
		couponList:     f.Coupons,
		achievements:   f.Achievements,
		rewards:        f.Rewards,
	}

	for _, a := range f.AddOns {
		if _, dup := s.addOns[a.ID]; dup {
			return nil, fmt.Errorf("duplicate add-on id %q", a.ID)
		}
		s.addOns[a.ID] = a
	}
	for _, e := range f.Experiences {
		if _, dup := s.experiences[e.ID]; dup {
			return nil, fmt.Errorf("duplicate experience id %q", e.ID)
		}
		s.experiences[e.ID] = e
	}
	for _, m := range f.MenuItems {
		if _, dup := s.menuItems[m.ID]; dup {
			return nil, fmt.Errorf("duplicate menu item id %q", m.ID)
		}
		s.menuItems[m.ID] = m
	}
	for _, v := range f.Venues {
		if _, dup := s.venues[v.ID]; dup {
			return nil, fmt.Errorf("duplicate venue id %q", v.ID)
		}
		s.venues[v.ID] = v
	}
	for _, c := range f.Coupons {
		key := strings.ToLower(c.Code)
		if _, dup := s.couponsByCode[key]; dup {
			return nil, fmt.Errorf("duplicate coupon code %q", c.Code)
		}
		s.couponsByCode[key] = c
	}

	if len(f.Tiers) == 0 {
		return nil, fmt.Errorf("tier table must not be empty")
	}
	s.tiers = make([]catalog.Tier, len(f.Tiers))
	copy(s.tiers, f.Tiers)
	sort.Slice(s.tiers, func(i, j int) bool { return s.tiers[i].MinPoints < s.tiers[j].MinPoints })
	if s.tiers[0].MinPoints != 0 {
		return nil, fmt.Errorf("lowest tier must start at 0 points, got %d", s.tiers[0].MinPoints)
	}

	return s, nil
}

func (s *memoryStore) AddOn(id string) (*catalog.AddOn, bool) {
	a, ok := s.addOns[id]
	if !ok {
		return nil, false
	}
	return &a, true
}

func (s *memoryStore) AddOns() []catalog.AddOn { return s.addOnList }

func (s *memoryStore) AddOnsFor(t catalog.BookingType) []catalog.AddOn {
	var out []catalog.AddOn
	for _, a := range s.addOnList {
		if a.Available && a.AppliesToType(t) {
			out = append(out, a)
		}
	}
	return out
}

func (s *memoryStore) Experience(id string) (*catalog.Experience, bool) {
	e, ok := s.experiences[id]
	if !ok {
		return nil, false
	}
	return &e, true
}

func (s *memoryStore) Experiences() []catalog.Experience { return s.experienceList }

func (s *memoryStore) ExperiencesFor(t catalog.BookingType) []catalog.Experience {
	var out []catalog.Experience
	for _, e := range s.experienceList {
		if e.Available && e.AppliesToType(t) {
			out = append(out, e)
		}
	}
	return out
}

func (s *memoryStore) MenuItem(id string) (*catalog.MenuItem, bool) {
	m, ok := s.menuItems[id]
	if !ok {
		return nil, false
	}
	return &m, true
}

func (s *memoryStore) MenuItems() []catalog.MenuItem { return s.menuItemList }

func (s *memoryStore) MenuItemsBy(c catalog.MenuCategory) []catalog.MenuItem {
	var out []catalog.MenuItem
	for _, m := range s.menuItemList {
		if m.Available && m.Category == c {
			out = append(out, m)
		}
	}
	return out
}

func (s *memoryStore) Venue(id string) (*catalog.Venue, bool) {
	v, ok := s.venues[id]
	if !ok {
		return nil, false
	}
	return &v, true
}

func (s *memoryStore) Venues() []catalog.Venue { return s.venueList }

func (s *memoryStore) CouponByCode(code string) (*coupon.Coupon, bool) {
	c, ok := s.couponsByCode[strings.ToLower(code)]
	if !ok {
		return nil, false
	}
	return &c, true
}

func (s *memoryStore) Coupons() []coupon.Coupon { return s.couponList }

func (s *memoryStore) Tiers() []catalog.Tier { return s.tiers }

func (s *memoryStore) Achievements() []catalog.AchievementDef { return s.achievements }

func (s *memoryStore) Rewards() []catalog.RewardDef { return s.rewards }
