package engine

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateOrder = errors.New("order already exists")
	ErrZeroVolume     = errors.New("order volume must be greater than zero")
	ErrZeroPrice      = errors.New("order price must be greater than zero")
	ErrInvalidVolume  = errors.New("order volume must be a positive finite number")
	ErrInvalidPrice   = errors.New("order price must be a positive finite number")
	ErrInvalidSide    = errors.New("order side must be buy or sell")
	ErrMatch          = errors.New("matching failed")
	ErrUnknownSymbol  = errors.New("unknown symbol")
)

// DuplicateOrderError is returned when an order id is already in the book.
// It matches ErrDuplicateOrder under errors.Is.
type DuplicateOrderError struct {
	ID string
}

func (e *DuplicateOrderError) Error() string {
	return fmt.Sprintf("order with id %s already exists", e.ID)
}

func (e *DuplicateOrderError) Unwrap() error {
	return ErrDuplicateOrder
}
