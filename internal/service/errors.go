package service

import (
	"errors"
	"fmt"
)

// Failure taxonomy surfaced to the transport layer. Callers match with
// errors.Is; anything outside these categories is a store failure and
// maps to a generic 5xx.
var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrNotFound     = errors.New("not found")
)

// ErrPriceFloor rejects a decrease that would take a cart line below one
// unit of the listing's canonical price.
var ErrPriceFloor = fmt.Errorf("%w: price cannot go below its original value", ErrInvalidState)
