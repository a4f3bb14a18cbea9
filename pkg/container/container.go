package container

import (
	"fmt"

	"venuebook-backend/internal/config"
	bookingHandler "venuebook-backend/internal/domains/booking/handler"
	bookingService "venuebook-backend/internal/domains/booking/service"
	catalogHandler "venuebook-backend/internal/domains/catalog/handler"
	catalogRepo "venuebook-backend/internal/domains/catalog/repository"
	couponService "venuebook-backend/internal/domains/coupon/service"
	loyaltyHandler "venuebook-backend/internal/domains/loyalty/handler"
	loyaltyService "venuebook-backend/internal/domains/loyalty/service"
	orderHandler "venuebook-backend/internal/domains/order/handler"
	orderService "venuebook-backend/internal/domains/order/service"
	pricingService "venuebook-backend/internal/domains/pricing/service"
)

// Container holds the whole dependency graph: config, the catalog store, the
// pure engine services, the single user session state and the HTTP handlers.
type Container struct {
	Config *config.Config

	Catalog  catalogRepo.Store
	Resolver *couponService.Resolver
	Pricing  *pricingService.Calculator
	Loyalty  *loyaltyService.Service
	Booking  *bookingService.Session
	Order    *orderService.Session

	CatalogHandler *catalogHandler.CatalogHandler
	BookingHandler *bookingHandler.BookingHandler
	OrderHandler   *orderHandler.OrderHandler
	LoyaltyHandler *loyaltyHandler.LoyaltyHandler
}

// NewContainer initializes the dependency graph in order: config, catalog
// fixtures, engine services, session state, handlers. Any wiring error aborts
// startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	store, err := catalogRepo.NewDefaultMemory()
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	c.Catalog = store

	c.Resolver = couponService.NewResolver(store)

	calc, err := pricingService.NewCalculator(store, cfg.Pricing, c.Resolver)
	if err != nil {
		return nil, fmt.Errorf("build pricing calculator: %w", err)
	}
	c.Pricing = calc

	c.Loyalty = loyaltyService.NewService(store, cfg.Loyalty, "demo-user")
	c.Booking = bookingService.NewSession(store, calc, c.Resolver, c.Loyalty)
	c.Order = orderService.NewSession(store, calc, c.Resolver, c.Loyalty)

	c.CatalogHandler = catalogHandler.NewCatalogHandler(store, calc)
	c.BookingHandler = bookingHandler.NewBookingHandler(c.Booking)
	c.OrderHandler = orderHandler.NewOrderHandler(c.Order)
	c.LoyaltyHandler = loyaltyHandler.NewLoyaltyHandler(c.Loyalty)

	return c, nil
}
