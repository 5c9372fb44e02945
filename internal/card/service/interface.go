// Package service implements the card validation algorithms: input cleaning, network
// classification, the Luhn checksum, CVC and expiry checks, sample number generation
// and log-safe fingerprints.
package service

import "time"

// Clock supplies the current time for expiry checks.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// NumberGenerator produces sample card numbers that classify to a given network.
type NumberGenerator interface {
	Generate(networkType string, length int) (string, error)
}
