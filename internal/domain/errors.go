package domain

import "errors"

var (
	ErrUpstreamFetch       = errors.New("upstream rate source request failed")
	ErrPayloadDecode       = errors.New("upstream payload decode failed")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrInvalidRateValue    = errors.New("invalid rate value")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrUnsupportedCurrency = errors.New("unsupported currency pair")
)
