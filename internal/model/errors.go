package model

import "errors"

// Sentinel errors shared across the service and handler layers.
// Handlers match them with errors.Is to pick the HTTP status.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidID         = errors.New("invalid identifier format")
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateSKU      = errors.New("product with this SKU already exists")
	ErrInsufficientStock = errors.New("insufficient stock available")
	ErrDuplicateReview   = errors.New("user has already reviewed this product")
)
