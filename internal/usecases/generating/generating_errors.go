package generating

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidVolume    = errors.New("invalid daily transaction volume")
	ErrInvalidSale      = errors.New("generated sale is invalid")
)
