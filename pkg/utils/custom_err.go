package utils

import "errors"

var (
	ErrInvalidCode        = errors.New("invalid family code")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeTaken          = errors.New("family code already taken")
	ErrFamilyNotFound     = errors.New("family not found")
	ErrHouseholdRequired  = errors.New("household is required")
	ErrDuplicateHousehold = errors.New("duplicate household name")
	ErrMemberLimitReached = errors.New("free plan member limit reached")
	ErrUnknownReaction    = errors.New("unknown reaction label")
	ErrCheckoutNotFound   = errors.New("checkout not found")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrMailNotConfigured  = errors.New("mail service not configured")
)
