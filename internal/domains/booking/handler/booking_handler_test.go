package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook-backend/internal/config"
	"venuebook-backend/internal/domains/booking/service"
	"venuebook-backend/internal/domains/catalog/repository"
	couponService "venuebook-backend/internal/domains/coupon/service"
	loyaltyService "venuebook-backend/internal/domains/loyalty/service"
	pricingService "venuebook-backend/internal/domains/pricing/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.NewDefaultMemory()
	require.NoError(t, err)
	cfg, err := config.Load()
	require.NoError(t, err)
	resolver := couponService.NewResolver(store)
	calc, err := pricingService.NewCalculator(store, cfg.Pricing, resolver)
	require.NoError(t, err)
	loyalty := loyaltyService.NewService(store, cfg.Loyalty, "test-user")
	h := NewBookingHandler(service.NewSession(store, calc, resolver, loyalty))

	router := gin.New()
	router.GET("/booking", h.GetState)
	router.GET("/booking/breakdown", h.GetBreakdown)
	router.PUT("/booking/venue", h.SetVenue)
	router.PUT("/booking/guests", h.SetGuests)
	router.POST("/booking/coupon", h.ApplyCoupon)
	router.POST("/booking/complete", h.Complete)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestSetVenue_HappyPath(t *testing.T) {
	router := newTestRouter(t)

	code, env := doJSON(t, router, http.MethodPut, "/booking/venue", `{"venue_id":"velvet_room"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"velvet_room"`)
}

func TestSetVenue_UnknownIs404(t *testing.T) {
	router := newTestRouter(t)

	code, env := doJSON(t, router, http.MethodPut, "/booking/venue", `{"venue_id":"nowhere"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestSetGuests_ValidationError(t *testing.T) {
	router := newTestRouter(t)

	code, env := doJSON(t, router, http.MethodPut, "/booking/guests", `{"guest_count":0}`)
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VAL_INVALID_INPUT", env.Error.Code)
}

func TestApplyCoupon_ErrorMapping(t *testing.T) {
	router := newTestRouter(t)

	code, env := doJSON(t, router, http.MethodPost, "/booking/coupon", `{"code":"NOPE99"}`)
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "COUPON_NOT_FOUND", env.Error.Code)

	// VIP20 needs a premium booking type; the default session is a standard table.
	code, env = doJSON(t, router, http.MethodPost, "/booking/coupon", `{"code":"VIP20"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "COUPON_NOT_APPLICABLE", env.Error.Code)
}

func TestComplete_IncompleteIs400(t *testing.T) {
	router := newTestRouter(t)

	code, env := doJSON(t, router, http.MethodPost, "/booking/complete", "")
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VAL_INVALID_INPUT", env.Error.Code)
}

func TestGetBreakdown(t *testing.T) {
	router := newTestRouter(t)

	code, env := doJSON(t, router, http.MethodGet, "/booking/breakdown", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"subtotal"`)
}

func TestGetState_Defaults(t *testing.T) {
	router := newTestRouter(t)

	code, env := doJSON(t, router, http.MethodGet, "/booking", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"standard_table"`)
}
