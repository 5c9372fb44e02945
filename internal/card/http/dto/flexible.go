// Package dto provides the request and response bodies of the card API.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	cardService "github.com/allisson/cardcheck/internal/card/service"
)

var jsonNull = []byte("null")

// FlexibleString decodes from a JSON string or a JSON number. Integer literals keep
// their exact text, so 19 digit card numbers sent unquoted are not rounded. Literals
// with a fraction or exponent are rendered as plain decimals through
// service.CleanValue, so 4.242424242424242e15 decodes to "4242424242424242".
type FlexibleString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("must be a string or a number: %w", err)
	}
	text := n.String()
	if !strings.ContainsAny(text, ".eE") {
		*f = FlexibleString(text)
		return nil
	}

	v, err := n.Float64()
	if err != nil {
		return fmt.Errorf("must be a string or a number: %w", err)
	}
	*f = FlexibleString(cardService.CleanValue(v))
	return nil
}

// String returns the decoded text.
func (f FlexibleString) String() string {
	return string(f)
}

// FlexibleInt decodes from a JSON integer or a string holding one, such as "04".
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*f = 0
		return nil
	}

	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*f = 0
			return nil
		}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("must be an integer, got %s", data)
	}
	*f = FlexibleInt(n)
	return nil
}

// Int returns the decoded value.
func (f FlexibleInt) Int() int {
	return int(f)
}
