package domain

import "errors"

var (
	ErrOutOfRange           = errors.New("requested seat count is out of range")
	ErrInsufficientCapacity = errors.New("not enough seats available to fulfill the request")
	ErrInvalidLayout        = errors.New("invalid seat layout")
	ErrInvalidConfig        = errors.New("invalid seat pool configuration")
	ErrSeatNotFound         = errors.New("seat not found")
)
