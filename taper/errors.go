package taper

import "errors"

var (
	ErrInvalidRange     = errors.New("invalid range")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNoData           = errors.New("no data")
)
