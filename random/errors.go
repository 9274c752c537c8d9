package random

import "errors"

// ErrInvalidLength is returned by Hex, Alphabetic and Alphanumeric when the
// requested length is negative. The message is stable so callers can assert
// on it.
var ErrInvalidLength = errors.New("length must be a non-negative integer")

// ErrInvalidBound is returned by IntN and Float64N when the exclusive upper
// bound is not positive.
var ErrInvalidBound = errors.New("bound must be greater than zero")

// ErrInvalidRange is returned by IntBetween when the minimum exceeds the
// maximum.
var ErrInvalidRange = errors.New("range minimum must not exceed maximum")
