package product

import (
	"fmt"
	"strconv"
	"strings"
)

// Clients of this API send price and quantity both as JSON numbers and
// as numeric strings, so the request types accept either form and fail
// binding on anything else.

// Number is a float64 that also unmarshals from a numeric JSON string.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := unquote(data)

	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)

	if err != nil {
		return fmt.Errorf("invalid numeric value %q", s)
	}

	*n = Number(f)
	return nil
}

// Count is an int that also unmarshals from a numeric JSON string.
// Fractional values are rejected rather than truncated.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	s := unquote(data)

	if s == "" || s == "null" {
		*c = 0
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)

	if err != nil {
		return fmt.Errorf("invalid integer value %q", s)
	}

	*c = Count(v)
	return nil
}

func unquote(data []byte) string {
	s := strings.TrimSpace(string(data))

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	return strings.TrimSpace(s)
}
