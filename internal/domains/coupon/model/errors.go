package model

import "errors"

var (
	ErrCouponNotFound      = errors.New("coupon code not found")
	ErrCouponNotApplicable = errors.New("coupon is not applicable to this selection")
	ErrBelowMinimumSpend   = errors.New("subtotal is below the coupon's minimum spend")
	ErrCouponExpired       = errors.New("coupon has expired")
)

// RejectReason is the machine-readable outcome of a failed coupon resolution.
type RejectReason string

const (
	ReasonNotFound          RejectReason = "COUPON_NOT_FOUND"         // 404
	ReasonNotApplicable     RejectReason = "COUPON_NOT_APPLICABLE"    // 400
	ReasonBelowMinimumSpend RejectReason = "COUPON_MIN_SPEND_NOT_MET" // 400
	ReasonExpired           RejectReason = "COUPON_EXPIRED"           // 400
)

// Err maps a reject reason back to its sentinel error.
func (r RejectReason) Err() error {
	switch r {
	case ReasonNotFound:
		return ErrCouponNotFound
	case ReasonNotApplicable:
		return ErrCouponNotApplicable
	case ReasonBelowMinimumSpend:
		return ErrBelowMinimumSpend
	case ReasonExpired:
		return ErrCouponExpired
	default:
		return nil
	}
}
