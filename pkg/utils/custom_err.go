package utils

import "errors"

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPayable    = errors.New("order is not payable")
	ErrPromoRejected      = errors.New("promo code no longer valid")
	ErrPromoCodeExists    = errors.New("promo code already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrPaymentIncomplete  = errors.New("payment method or payment proof missing")
	ErrLocationRequired   = errors.New("server location not selected")
	ErrUploadFailed       = errors.New("upload failed on all storage backends")
	ErrInvalidUpload      = errors.New("invalid upload")
	ErrDatabaseError      = errors.New("database error")
)
