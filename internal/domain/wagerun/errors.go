package wagerun

import "errors"

var (
	ErrWageRunNotFound  = errors.New("wage run not found")
	ErrWageRunFinalized = errors.New("wage run is finalized and cannot be modified")
	ErrInvalidPeriod    = errors.New("invalid wage run period")
)
