package calendar

import "errors"

var (
	ErrInvalidDate   = errors.New("invalid calendar date")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
	ErrInvalidPeriod = errors.New("period end must not be before period start")
	ErrUnknownPreset = errors.New("unknown period preset")
)
