package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalog "venuebook-backend/internal/domains/catalog/model"
	"venuebook-backend/internal/domains/catalog/repository"
	pricingService "venuebook-backend/internal/domains/pricing/service"
	"venuebook-backend/internal/shared/response"
)

// CatalogHandler serves the read-only reference data the presentation layer
// browses: add-ons, experiences, menu, venues, booking types and coupons.
type CatalogHandler struct {
	store repository.Store
	calc  *pricingService.Calculator
}

func NewCatalogHandler(store repository.Store, calc *pricingService.Calculator) *CatalogHandler {
	return &CatalogHandler{store: store, calc: calc}
}

type bookingTypeInfo struct {
	Type      catalog.BookingType `json:"type"`
	CoverRate decimal.Decimal     `json:"cover_rate"` // per guest
}

// ListBookingTypes returns every booking type with its per-guest cover rate.
func (h *CatalogHandler) ListBookingTypes(c *gin.Context) {
	types := make([]bookingTypeInfo, 0, len(catalog.AllBookingTypes()))
	for _, t := range catalog.AllBookingTypes() {
		types = append(types, bookingTypeInfo{Type: t, CoverRate: h.calc.CoverRate(t)})
	}
	response.Success(c, http.StatusOK, types)
}

// ListAddOns returns add-ons, filtered to a booking type when one is given.
func (h *CatalogHandler) ListAddOns(c *gin.Context) {
	if raw := c.Query("booking_type"); raw != "" {
		t, err := catalog.ParseBookingType(raw)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		response.Success(c, http.StatusOK, h.store.AddOnsFor(t))
		return
	}
	response.Success(c, http.StatusOK, h.store.AddOns())
}

// ListExperiences returns experiences, filtered to a booking type when one is given.
func (h *CatalogHandler) ListExperiences(c *gin.Context) {
	if raw := c.Query("booking_type"); raw != "" {
		t, err := catalog.ParseBookingType(raw)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		response.Success(c, http.StatusOK, h.store.ExperiencesFor(t))
		return
	}
	response.Success(c, http.StatusOK, h.store.Experiences())
}

// ListMenu returns menu items, filtered by category when one is given.
func (h *CatalogHandler) ListMenu(c *gin.Context) {
	if raw := c.Query("category"); raw != "" {
		response.Success(c, http.StatusOK, h.store.MenuItemsBy(catalog.MenuCategory(raw)))
		return
	}
	response.Success(c, http.StatusOK, h.store.MenuItems())
}

// ListVenues returns the bookable venues.
func (h *CatalogHandler) ListVenues(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Venues())
}

// ListCoupons returns the fixture coupons, so the demo UI can show hints.
func (h *CatalogHandler) ListCoupons(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Coupons())
}
