package domain

import (
	"github.com/allisson/cardcheck/internal/errors"
)

var (
	// ErrNetworkNotFound indicates no network with the requested type exists in the table.
	ErrNetworkNotFound = errors.Wrap(errors.ErrNotFound, "card network not found")

	// ErrInvalidDigits indicates a value that had to be digit-only contained other characters.
	ErrInvalidDigits = errors.Wrap(errors.ErrInvalidInput, "value must contain digits only")

	// ErrInvalidLength indicates a requested number length the network does not accept.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid card number length for network")

	// ErrInvalidCount indicates a non-positive or oversized batch size.
	ErrInvalidCount = errors.Wrap(errors.ErrInvalidInput, "invalid count")
)
