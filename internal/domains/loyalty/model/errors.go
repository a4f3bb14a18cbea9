package model

import "errors"

var (
	ErrRewardNotFound     = errors.New("reward not found in available rewards")
	ErrInsufficientPoints = errors.New("not enough points to redeem this reward")
	ErrInvalidAmount      = errors.New("amount must be non-negative")
	ErrUnknownVenue       = errors.New("unknown venue")
)

const (
	ErrCodeRewardNotFound     = "REWARD_NOT_FOUND"    // 404
	ErrCodeInsufficientPoints = "INSUFFICIENT_POINTS" // 400
	ErrCodeValidationFailed   = "VAL_INVALID_INPUT"   // 400
)
