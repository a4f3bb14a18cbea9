package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"venuebook-backend/internal/domains/booking/model"
	"venuebook-backend/internal/domains/booking/service"
	couponModel "venuebook-backend/internal/domains/coupon/model"
	"venuebook-backend/internal/shared/response"
)

// BookingHandler exposes the booking session over HTTP. It is a thin layer:
// bind, validate, delegate, map errors.
type BookingHandler struct {
	session *service.Session
}

func NewBookingHandler(session *service.Session) *BookingHandler {
	return &BookingHandler{session: session}
}

// GetState returns the full booking state with its current breakdown.
func (h *BookingHandler) GetState(c *gin.Context) {
	response.Success(c, http.StatusOK, h.session.State())
}

// GetBreakdown returns just the price breakdown.
func (h *BookingHandler) GetBreakdown(c *gin.Context) {
	response.Success(c, http.StatusOK, h.session.Breakdown())
}

// SetVenue picks the venue being booked.
func (h *BookingHandler) SetVenue(c *gin.Context) {
	var req model.SetVenueRequest
	if !bind(c, &req) {
		return
	}
	if err := h.session.SetVenue(req.VenueID); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// SetType changes the booking type.
func (h *BookingHandler) SetType(c *gin.Context) {
	var req model.SetTypeRequest
	if !bind(c, &req) {
		return
	}
	if err := h.session.SetBookingType(req.BookingType); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "VAL_INVALID_INPUT", err.Error())
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// SetGuests changes the party size.
func (h *BookingHandler) SetGuests(c *gin.Context) {
	var req model.SetGuestsRequest
	if !bind(c, &req) {
		return
	}
	if err := h.session.SetGuestCount(req.GuestCount); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// SetSchedule sets the booking date and time slot.
func (h *BookingHandler) SetSchedule(c *gin.Context) {
	var req model.SetScheduleRequest
	if !bind(c, &req) {
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "invalid date")
		return
	}
	h.session.SetSchedule(date, req.TimeSlot)
	response.Success(c, http.StatusOK, h.session.State())
}

// SetContact sets the contact details.
func (h *BookingHandler) SetContact(c *gin.Context) {
	var req model.SetContactRequest
	if !bind(c, &req) {
		return
	}
	h.session.SetContact(model.Contact{Name: req.Name, Phone: req.Phone, Email: req.Email})
	response.Success(c, http.StatusOK, h.session.State())
}

// AddAddOn selects an add-on.
func (h *BookingHandler) AddAddOn(c *gin.Context) {
	var req model.SelectionRequest
	if !bind(c, &req) {
		return
	}
	if err := h.session.AddAddOn(req.ID); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// RemoveAddOn deselects an add-on.
func (h *BookingHandler) RemoveAddOn(c *gin.Context) {
	h.session.RemoveAddOn(c.Param("id"))
	response.Success(c, http.StatusOK, h.session.State())
}

// AddExperience selects an experience.
func (h *BookingHandler) AddExperience(c *gin.Context) {
	var req model.SelectionRequest
	if !bind(c, &req) {
		return
	}
	if err := h.session.AddExperience(req.ID); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// RemoveExperience deselects an experience.
func (h *BookingHandler) RemoveExperience(c *gin.Context) {
	h.session.RemoveExperience(c.Param("id"))
	response.Success(c, http.StatusOK, h.session.State())
}

// ApplyCoupon applies a coupon code to the booking.
func (h *BookingHandler) ApplyCoupon(c *gin.Context) {
	var req model.ApplyCouponRequest
	if !bind(c, &req) {
		return
	}
	if err := h.session.ApplyCoupon(req.Code); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// RemoveCoupon clears the applied coupon.
func (h *BookingHandler) RemoveCoupon(c *gin.Context) {
	if err := h.session.RemoveCoupon(); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// Complete finalizes the booking.
func (h *BookingHandler) Complete(c *gin.Context) {
	conf, err := h.session.Complete()
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, conf)
}

// Reset abandons the booking.
func (h *BookingHandler) Reset(c *gin.Context) {
	h.session.Reset()
	response.Success(c, http.StatusOK, h.session.State())
}

func (h *BookingHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, couponModel.ErrCouponNotFound):
		response.ErrorResponse(c, http.StatusNotFound, string(couponModel.ReasonNotFound), err.Error())
	case errors.Is(err, couponModel.ErrCouponNotApplicable):
		response.ErrorResponse(c, http.StatusBadRequest, string(couponModel.ReasonNotApplicable), err.Error())
	case errors.Is(err, couponModel.ErrBelowMinimumSpend):
		response.ErrorResponse(c, http.StatusBadRequest, string(couponModel.ReasonBelowMinimumSpend), err.Error())
	case errors.Is(err, couponModel.ErrCouponExpired):
		response.ErrorResponse(c, http.StatusBadRequest, string(couponModel.ReasonExpired), err.Error())
	case errors.Is(err, model.ErrUnknownVenue),
		errors.Is(err, model.ErrUnknownAddOn),
		errors.Is(err, model.ErrUnknownExperience):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrInvalidGuestCount),
		errors.Is(err, model.ErrIncompleteBooking),
		errors.Is(err, model.ErrNoCouponApplied):
		response.ErrorResponse(c, http.StatusBadRequest, "VAL_INVALID_INPUT", err.Error())
	default:
		response.InternalServerError(c, "unexpected error")
	}
}

// bind decodes and validates a request body, writing the error response
// itself on failure.
func bind(c *gin.Context, req interface {
	Validate() error
}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VAL_INVALID_INPUT", "validation failed", err)
		return false
	}
	return true
}
