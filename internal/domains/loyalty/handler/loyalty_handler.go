package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook-backend/internal/domains/loyalty/model"
	"venuebook-backend/internal/domains/loyalty/service"
	"venuebook-backend/internal/shared/response"
)

// LoyaltyHandler exposes the loyalty ledger over HTTP.
type LoyaltyHandler struct {
	service *service.Service
}

func NewLoyaltyHandler(svc *service.Service) *LoyaltyHandler {
	return &LoyaltyHandler{service: svc}
}

// GetSummary returns points, tier and tier progress.
func (h *LoyaltyHandler) GetSummary(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Summary())
}

// GetAchievements returns the achievement list with achieved flags.
func (h *LoyaltyHandler) GetAchievements(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Achievements())
}

// GetVenueStats returns per-venue visit stats.
func (h *LoyaltyHandler) GetVenueStats(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.VenueStats())
}

// GetRewards returns available and redeemed rewards.
func (h *LoyaltyHandler) GetRewards(c *gin.Context) {
	available, redeemed := h.service.Rewards()
	response.Success(c, http.StatusOK, gin.H{
		"available": available,
		"redeemed":  redeemed,
	})
}

// RedeemReward redeems a reward by id.
func (h *LoyaltyHandler) RedeemReward(c *gin.Context) {
	redeemed, err := h.service.RedeemReward(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, redeemed)
}

// RecordTransaction records a completed transaction directly.
func (h *LoyaltyHandler) RecordTransaction(c *gin.Context) {
	var req model.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, model.ErrCodeValidationFailed, "validation failed", err)
		return
	}

	result, err := h.service.RecordTransaction(req.VenueID, req.VenueName, req.Amount, req.Count, req.Type)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

// AwardPoints grants points directly.
func (h *LoyaltyHandler) AwardPoints(c *gin.Context) {
	var req model.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, model.ErrCodeValidationFailed, "validation failed", err)
		return
	}

	if err := h.service.AwardPoints(req.Points); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.Summary())
}

func (h *LoyaltyHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrRewardNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeRewardNotFound, err.Error())
	case errors.Is(err, model.ErrInsufficientPoints):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInsufficientPoints, err.Error())
	case errors.Is(err, model.ErrInvalidAmount), errors.Is(err, model.ErrUnknownVenue):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeValidationFailed, err.Error())
	default:
		response.InternalServerError(c, "unexpected error")
	}
}
