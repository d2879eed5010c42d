package domain

import "errors"

var (
	ErrNoSpotPrice      = errors.New("no spot price data available yet")
	ErrNoCompanyUpdates = errors.New("no company updates available yet")
)
