package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/allisson/cardcheck/internal/card/domain"
)

type numberGenerator struct{}

// NewNumberGenerator creates a generator of random sample card numbers. Numbers start
// with one of the network's sample prefixes and, when the network uses Luhn, end with
// a valid check digit.
func NewNumberGenerator() NumberGenerator {
	return &numberGenerator{}
}

// Generate creates a number for networkType. A length of 0 picks the network's default
// length (16 when accepted, otherwise its shortest accepted length).
func (g *numberGenerator) Generate(networkType string, length int) (string, error) {
	network, err := domain.FindNetwork(networkType)
	if err != nil {
		return "", err
	}

	if length == 0 {
		length = defaultLength(network)
	}
	if length < domain.MinNumberLength || length > domain.MaxNumberLength || !network.AcceptsLength(length) {
		return "", domain.ErrInvalidLength
	}

	prefix, err := randomChoice(network.SamplePrefixes)
	if err != nil {
		return "", err
	}

	bodyLength := length
	if network.Luhn {
		bodyLength--
	}

	fill, err := randomDigits(bodyLength - len(prefix))
	if err != nil {
		return "", err
	}

	body := prefix + fill
	if !network.Luhn {
		return body, nil
	}

	checkDigit, err := LuhnCheckDigit(body)
	if err != nil {
		return "", err
	}

	return body + string(rune('0'+checkDigit)), nil
}

func defaultLength(network domain.Network) int {
	if network.AcceptsLength(domain.DefaultNumberLength) {
		return domain.DefaultNumberLength
	}
	return network.Lengths[0]
}

func randomChoice(values []string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(values))))
	if err != nil {
		return "", fmt.Errorf("failed to pick prefix: %w", err)
	}
	return values[n.Int64()], nil
}

func randomDigits(count int) (string, error) {
	digits := make([]byte, count)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		//nolint:gosec // n is bounded [0,9] by big.NewInt(10)
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
