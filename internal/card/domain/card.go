package domain

// CardInput holds the fields collected by a checkout form.
type CardInput struct {
	Number string
	CVC    string
	Year   int
	Month  int
}

// NumberResult is the outcome of a card number validation.
// Network is empty when the number is invalid.
type NumberResult struct {
	Valid   bool
	Network string
}

// ExpiryResult is the outcome of an expiry validation.
type ExpiryResult struct {
	Valid      bool
	YearValid  bool
	MonthValid bool
}

// CardReport aggregates the per-field outcomes of a full card validation.
// The CVC is checked against the network the number's prefix matches, falling back
// to the generic rule only when no prefix matches.
type CardReport struct {
	Valid    bool
	Number   NumberResult
	CVCValid bool
	Expiry   ExpiryResult
}
