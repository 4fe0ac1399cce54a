package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a decimal amount that decodes from a JSON number or a numeric
// string. null and "" decode to zero.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	text, err := numericText(b)
	if err != nil {
		return fmt.Errorf("number: %w", err)
	}
	if text == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("number %q: %w", text, err)
	}
	*n = Number(f)
	return nil
}

// Count is a whole number that decodes from a JSON number or a numeric
// string. null and "" decode to zero.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	text, err := numericText(b)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	if text == "" {
		*c = 0
		return nil
	}
	if i, err := strconv.Atoi(text); err == nil {
		*c = Count(i)
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("count %q is not a whole number", text)
	}
	*c = Count(f)
	return nil
}

// numericText returns the digits of a JSON number or numeric string, or ""
// for null and empty strings.
func numericText(b []byte) (string, error) {
	if string(bytes.TrimSpace(b)) == "null" {
		return "", nil
	}
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return "", err
	}
	return num.String(), nil
}

func isEmptyJSON(b []byte) bool {
	switch string(bytes.TrimSpace(b)) {
	case "null", "[]", "{}":
		return true
	}
	return false
}
