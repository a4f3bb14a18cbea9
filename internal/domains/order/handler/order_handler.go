package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	couponModel "venuebook-backend/internal/domains/coupon/model"
	"venuebook-backend/internal/domains/order/model"
	"venuebook-backend/internal/domains/order/service"
	"venuebook-backend/internal/shared/response"
)

// OrderHandler exposes the in-venue ordering session over HTTP.
type OrderHandler struct {
	session *service.Session
}

func NewOrderHandler(session *service.Session) *OrderHandler {
	return &OrderHandler{session: session}
}

// GetState returns the full cart with per-line pricing.
func (h *OrderHandler) GetState(c *gin.Context) {
	response.Success(c, http.StatusOK, h.session.State())
}

// GetBreakdown returns just the price breakdown.
func (h *OrderHandler) GetBreakdown(c *gin.Context) {
	response.Success(c, http.StatusOK, h.session.Breakdown())
}

// SetVenue picks the venue the order is placed at.
func (h *OrderHandler) SetVenue(c *gin.Context) {
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

// AddItem adds a menu item to the cart.
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req model.AddItemRequest
	if !bind(c, &req) {
		return
	}
	if err := h.session.AddItem(req.MenuItemID, req.Quantity, req.OptionIDs); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// UpdateItem changes a cart line's quantity; zero removes the line.
func (h *OrderHandler) UpdateItem(c *gin.Context) {
	var req model.UpdateQuantityRequest
	if !bind(c, &req) {
		return
	}
	if err := h.session.UpdateQuantity(c.Param("id"), req.Quantity); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// RemoveItem drops a line from the cart.
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	if err := h.session.RemoveItem(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// ApplyDiscount applies a discount code to the cart.
func (h *OrderHandler) ApplyDiscount(c *gin.Context) {
	var req model.ApplyDiscountRequest
	if !bind(c, &req) {
		return
	}
	if err := h.session.ApplyDiscount(req.Code); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// RemoveDiscount clears the applied discount.
func (h *OrderHandler) RemoveDiscount(c *gin.Context) {
	if err := h.session.RemoveDiscount(); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.session.State())
}

// Complete finalizes the order.
func (h *OrderHandler) Complete(c *gin.Context) {
	conf, err := h.session.Complete()
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, conf)
}

// Reset abandons the order.
func (h *OrderHandler) Reset(c *gin.Context) {
	h.session.Reset()
	response.Success(c, http.StatusOK, h.session.State())
}

func (h *OrderHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, couponModel.ErrCouponNotFound):
		response.ErrorResponse(c, http.StatusNotFound, string(couponModel.ReasonNotFound), err.Error())
	case errors.Is(err, couponModel.ErrCouponNotApplicable):
		response.ErrorResponse(c, http.StatusBadRequest, string(couponModel.ReasonNotApplicable), err.Error())
	case errors.Is(err, couponModel.ErrBelowMinimumSpend):
		response.ErrorResponse(c, http.StatusBadRequest, string(couponModel.ReasonBelowMinimumSpend), err.Error())
	case errors.Is(err, couponModel.ErrCouponExpired):
		response.ErrorResponse(c, http.StatusBadRequest, string(couponModel.ReasonExpired), err.Error())
	case errors.Is(err, model.ErrUnknownMenuItem),
		errors.Is(err, model.ErrLineNotFound),
		errors.Is(err, model.ErrUnknownVenue):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrUnknownOption),
		errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrEmptyCart),
		errors.Is(err, model.ErrNoDiscountApplied):
		response.ErrorResponse(c, http.StatusBadRequest, "VAL_INVALID_INPUT", err.Error())
	default:
		response.InternalServerError(c, "unexpected error")
	}
}

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
