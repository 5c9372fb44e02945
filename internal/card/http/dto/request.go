package dto

import (
	validation "github.com/jellydator/validation"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	customValidation "github.com/allisson/cardcheck/internal/validation"
)

// ValidateNumberRequest is the body of POST /v1/cards/number/validate.
type ValidateNumberRequest struct {
	Number FlexibleString `json:"number"`
}

// Validate checks the request shape. Whether the number is a valid card is not a
// validation error.
func (r *ValidateNumberRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoControlCharacters,
			validation.RuneLength(1, customValidation.MaxNumberInputLength),
		),
	)
}

// ValidateCVCRequest is the body of POST /v1/cards/cvc/validate.
type ValidateCVCRequest struct {
	CVC     FlexibleString `json:"cvc"`
	Network string         `json:"network"`
}

// Validate checks the request shape.
func (r *ValidateCVCRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CVC,
			validation.Required,
			customValidation.NoControlCharacters,
			validation.RuneLength(1, customValidation.MaxCVCInputLength),
		),
		validation.Field(&r.Network,
			customValidation.NetworkIdentifier,
			validation.RuneLength(0, customValidation.MaxNetworkLength),
		),
	)
}

// ValidateExpiryRequest is the body of POST /v1/cards/expiry/validate. A missing
// month checks the year only.
type ValidateExpiryRequest struct {
	Year  FlexibleInt `json:"year"`
	Month FlexibleInt `json:"month"`
}

// Validate checks the request shape.
func (r *ValidateExpiryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Year, validation.Required),
	)
}

// ValidateCardRequest is the body of POST /v1/cards/validate.
type ValidateCardRequest struct {
	Number FlexibleString `json:"number"`
	CVC    FlexibleString `json:"cvc"`
	Year   FlexibleInt    `json:"year"`
	Month  FlexibleInt    `json:"month"`
}

// Validate checks the request shape.
func (r *ValidateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoControlCharacters,
			validation.RuneLength(1, customValidation.MaxNumberInputLength),
		),
		validation.Field(&r.CVC,
			validation.Required,
			customValidation.NoControlCharacters,
			validation.RuneLength(1, customValidation.MaxCVCInputLength),
		),
		validation.Field(&r.Year, validation.Required),
	)
}

// ToCardInput converts the request to the domain input.
func (r *ValidateCardRequest) ToCardInput() *cardDomain.CardInput {
	return &cardDomain.CardInput{
		Number: r.Number.String(),
		CVC:    r.CVC.String(),
		Year:   r.Year.Int(),
		Month:  r.Month.Int(),
	}
}

// GenerateNumbersRequest is the body of POST /v1/cards/numbers/generate.
type GenerateNumbersRequest struct {
	Network string `json:"network"`
	Length  int    `json:"length"`
	Count   int    `json:"count"`
}

// Validate checks the request shape. Lengths the network does not accept are
// reported by the use case.
func (r *GenerateNumbersRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Network,
			validation.Required,
			customValidation.NetworkIdentifier,
			validation.RuneLength(1, customValidation.MaxNetworkLength),
		),
		validation.Field(&r.Length, validation.Min(0)),
		validation.Field(&r.Count, validation.Min(0), validation.Max(cardDomain.MaxGenerateCount)),
	)
}

// EffectiveCount returns the requested count, defaulting to 1.
func (r *GenerateNumbersRequest) EffectiveCount() int {
	if r.Count == 0 {
		return 1
	}
	return r.Count
}
