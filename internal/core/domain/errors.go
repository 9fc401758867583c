package domain

import "errors"

var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrInvalidPropertyID = errors.New("invalid property id")
	ErrInvalidUnit       = errors.New("unknown area unit")
	ErrInvalidAreaValue  = errors.New("area value must be a finite number")
)
