package domain

import (
	"regexp"
	"slices"
)

// Network describes the numbering rules of a card network.
type Network struct {
	// Type is the symbolic network identifier (e.g. "visa").
	Type string
	// Pattern is a prefix pattern; it is anchored at the start of the digit string only.
	Pattern *regexp.Regexp
	// Lengths lists the accepted card number lengths. Nil means unconstrained.
	Lengths []int
	// CVCLengths lists the accepted CVC lengths.
	CVCLengths []int
	// Luhn reports whether the number must pass the Luhn checksum.
	Luhn bool
	// SamplePrefixes are prefixes that classify to this network given the table order.
	// Used when generating sample numbers.
	SamplePrefixes []string
}

// AcceptsLength reports whether n is an accepted card number length.
// Networks without declared lengths accept any length.
func (n Network) AcceptsLength(length int) bool {
	if len(n.Lengths) == 0 {
		return true
	}
	return slices.Contains(n.Lengths, length)
}

// AcceptsCVCLength reports whether length is an accepted CVC length.
func (n Network) AcceptsCVCLength(length int) bool {
	return slices.Contains(n.CVCLengths, length)
}

// clone returns a copy that shares nothing mutable with the table.
func (n Network) clone() Network {
	n.Lengths = slices.Clone(n.Lengths)
	n.CVCLengths = slices.Clone(n.CVCLengths)
	n.SamplePrefixes = slices.Clone(n.SamplePrefixes)
	return n
}

// networks is the ordered network table. The first matching pattern wins, so more
// specific prefixes must precede overlapping general ones.
// Source: https://github.com/stripe/jquery.payment (MIT).
var networks = []Network{
	{
		Type:           TypeVisaElectron,
		Pattern:        regexp.MustCompile(`^4(026|17500|405|508|844|91[37])`),
		Lengths:        []int{16},
		CVCLengths:     []int{3},
		Luhn:           true,
		SamplePrefixes: []string{"4026", "417500", "4405", "4508", "4844", "4913", "4917"},
	},
	{
		Type:           TypeMaestro,
		Pattern:        regexp.MustCompile(`^(5(018|0[23]|[68])|6(39|7))`),
		Lengths:        []int{12, 13, 14, 15, 16, 17, 18, 19},
		CVCLengths:     []int{3},
		Luhn:           true,
		SamplePrefixes: []string{"5018", "502", "503", "56", "58", "639", "67"},
	},
	{
		Type:           TypeForbrugsforeningen,
		Pattern:        regexp.MustCompile(`^600`),
		Lengths:        []int{16},
		CVCLengths:     []int{3},
		Luhn:           true,
		SamplePrefixes: []string{"600"},
	},
	{
		Type:           TypeDankort,
		Pattern:        regexp.MustCompile(`^5019`),
		CVCLengths:     []int{3},
		Luhn:           true,
		SamplePrefixes: []string{"5019"},
	},
	{
		Type:           TypeVisa,
		Pattern:        regexp.MustCompile(`^4`),
		Lengths:        []int{13, 16},
		CVCLengths:     []int{3},
		Luhn:           true,
		SamplePrefixes: []string{"4000", "4012", "4111", "4242"},
	},
	{
		Type:           TypeMastercard,
		Pattern:        regexp.MustCompile(`^5[0-5]`),
		Lengths:        []int{16},
		CVCLengths:     []int{3},
		Luhn:           true,
		SamplePrefixes: []string{"51", "52", "53", "54", "55"},
	},
	{
		Type:           TypeAmex,
		Pattern:        regexp.MustCompile(`^3[47]`),
		Lengths:        []int{15},
		CVCLengths:     []int{3, 4},
		Luhn:           true,
		SamplePrefixes: []string{"34", "37"},
	},
	{
		Type:           TypeDinersClub,
		Pattern:        regexp.MustCompile(`^3[0689]`),
		Lengths:        []int{14},
		CVCLengths:     []int{3},
		Luhn:           true,
		SamplePrefixes: []string{"30", "36", "38", "39"},
	},
	{
		Type:           TypeDiscover,
		Pattern:        regexp.MustCompile(`^6([045]|22)`),
		Lengths:        []int{16},
		CVCLengths:     []int{3},
		Luhn:           true,
		SamplePrefixes: []string{"6011", "644", "65", "622"},
	},
	{
		Type:           TypeUnionPay,
		Pattern:        regexp.MustCompile(`^(62|88)`),
		Lengths:        []int{16, 17, 18, 19},
		CVCLengths:     []int{3},
		Luhn:           false,
		SamplePrefixes: []string{"620", "621", "625", "88"},
	},
	{
		Type:           TypeJCB,
		Pattern:        regexp.MustCompile(`^35`),
		Lengths:        []int{16},
		CVCLengths:     []int{3},
		Luhn:           true,
		SamplePrefixes: []string{"3528", "3589"},
	},
}

// Networks returns a copy of the network table in match order.
func Networks() []Network {
	out := make([]Network, len(networks))
	for i, n := range networks {
		out[i] = n.clone()
	}
	return out
}

// MatchNetwork returns the first network whose pattern matches the start of digits.
func MatchNetwork(digits string) (Network, bool) {
	for _, n := range networks {
		if n.Pattern.MatchString(digits) {
			return n.clone(), true
		}
	}
	return Network{}, false
}

// FindNetwork looks up a network by its exact type identifier.
func FindNetwork(networkType string) (Network, error) {
	for _, n := range networks {
		if n.Type == networkType {
			return n.clone(), nil
		}
	}
	return Network{}, ErrNetworkNotFound
}
