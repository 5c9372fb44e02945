package dto

import (
	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
)

// NumberResponse reports a card number validation. Network is omitted for invalid numbers.
type NumberResponse struct {
	Valid   bool   `json:"valid"`
	Network string `json:"network,omitempty"`
}

// CVCResponse reports a CVC validation.
type CVCResponse struct {
	Valid bool `json:"valid"`
}

// ExpiryResponse reports an expiry validation.
type ExpiryResponse struct {
	Valid      bool `json:"valid"`
	YearValid  bool `json:"year_valid"`
	MonthValid bool `json:"month_valid"`
}

// CardReportResponse reports a full card validation.
type CardReportResponse struct {
	Valid    bool           `json:"valid"`
	Number   NumberResponse `json:"number"`
	CVCValid bool           `json:"cvc_valid"`
	Expiry   ExpiryResponse `json:"expiry"`
}

// NetworkResponse describes one network. Lengths is omitted for networks that accept
// any length.
type NetworkResponse struct {
	Type       string `json:"type"`
	Pattern    string `json:"pattern"`
	Lengths    []int  `json:"lengths,omitempty"`
	CVCLengths []int  `json:"cvc_lengths"`
	Luhn       bool   `json:"luhn"`
}

// ListNetworksResponse lists networks in match order.
type ListNetworksResponse struct {
	Data []NetworkResponse `json:"data"`
}

// GenerateNumbersResponse carries generated sample numbers.
type GenerateNumbersResponse struct {
	Network string   `json:"network"`
	Numbers []string `json:"numbers"`
}

// MapNumberResult converts a domain number result.
func MapNumberResult(result *cardDomain.NumberResult) NumberResponse {
	return NumberResponse{Valid: result.Valid, Network: result.Network}
}

// MapExpiryResult converts a domain expiry result.
func MapExpiryResult(result *cardDomain.ExpiryResult) ExpiryResponse {
	return ExpiryResponse{
		Valid:      result.Valid,
		YearValid:  result.YearValid,
		MonthValid: result.MonthValid,
	}
}

// MapCardReport converts a domain card report.
func MapCardReport(report *cardDomain.CardReport) CardReportResponse {
	return CardReportResponse{
		Valid:    report.Valid,
		Number:   MapNumberResult(&report.Number),
		CVCValid: report.CVCValid,
		Expiry:   MapExpiryResult(&report.Expiry),
	}
}

// MapNetwork converts a domain network.
func MapNetwork(network *cardDomain.Network) NetworkResponse {
	return NetworkResponse{
		Type:       network.Type,
		Pattern:    network.Pattern.String(),
		Lengths:    network.Lengths,
		CVCLengths: network.CVCLengths,
		Luhn:       network.Luhn,
	}
}

// MapNetworksToListResponse converts the network table.
func MapNetworksToListResponse(networks []cardDomain.Network) ListNetworksResponse {
	data := make([]NetworkResponse, 0, len(networks))
	for i := range networks {
		data = append(data, MapNetwork(&networks[i]))
	}
	return ListNetworksResponse{Data: data}
}
