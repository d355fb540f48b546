package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExNumber is a nullable decimal for loosely-typed exchange payloads.
//
// Exchange APIs deliver numbers as JSON numbers, quoted numeric strings,
// empty strings, nulls, or occasionally non-numeric placeholders (e.g. a
// market order whose price is reported as "market_price"). All of those
// decode without error: anything that is not a parseable number becomes an
// absent value, distinguishable from a genuine zero.
//
// Arithmetic propagates absence — an operation involving an absent operand
// yields an absent result, never a silently defaulted zero.
type ExNumber struct {
	value decimal.Decimal
	valid bool
}

// Number wraps a decimal into a present ExNumber.
func Number(v decimal.Decimal) ExNumber {
	return ExNumber{value: v, valid: true}
}

// NumberFromFloat wraps a float into a present ExNumber.
func NumberFromFloat(f float64) ExNumber {
	return Number(decimal.NewFromFloat(f))
}

// NumberFromInt wraps an integer into a present ExNumber.
func NumberFromInt(i int64) ExNumber {
	return Number(decimal.NewFromInt(i))
}

// NumberFromString parses a decimal string.
// Empty or non-numeric input yields an absent value.
func NumberFromString(s string) ExNumber {
	s = strings.TrimSpace(s)
	if s == "" {
		return ExNumber{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ExNumber{}
	}
	return Number(d)
}

// Valid reports whether the value is present.
func (n ExNumber) Valid() bool {
	return n.valid
}

// Decimal returns the underlying decimal (zero when absent).
func (n ExNumber) Decimal() decimal.Decimal {
	return n.value
}

// Float64 returns the value as a float64 (0 when absent).
func (n ExNumber) Float64() float64 {
	if !n.valid {
		return 0
	}
	return n.value.InexactFloat64()
}

// String returns the decimal representation, or "" when absent.
func (n ExNumber) String() string {
	if !n.valid {
		return ""
	}
	return n.value.String()
}

// Sign returns -1, 0 or 1 (0 when absent).
func (n ExNumber) Sign() int {
	if !n.valid {
		return 0
	}
	return n.value.Sign()
}

// IsZero reports whether the value is present and equal to zero.
func (n ExNumber) IsZero() bool {
	return n.valid && n.value.IsZero()
}

// Equal reports whether both values are present and numerically equal.
func (n ExNumber) Equal(o ExNumber) bool {
	return n.valid && o.valid && n.value.Equal(o.value)
}

// Add returns n + o, absent if either operand is absent.
func (n ExNumber) Add(o ExNumber) ExNumber {
	if !n.valid || !o.valid {
		return ExNumber{}
	}
	return Number(n.value.Add(o.value))
}

// Sub returns n - o, absent if either operand is absent.
func (n ExNumber) Sub(o ExNumber) ExNumber {
	if !n.valid || !o.valid {
		return ExNumber{}
	}
	return Number(n.value.Sub(o.value))
}

// Mul returns n * o, absent if either operand is absent.
func (n ExNumber) Mul(o ExNumber) ExNumber {
	if !n.valid || !o.valid {
		return ExNumber{}
	}
	return Number(n.value.Mul(o.value))
}

// Div returns n / o, absent if either operand is absent or the divisor
// is zero.
func (n ExNumber) Div(o ExNumber) ExNumber {
	if !n.valid || !o.valid || o.value.IsZero() {
		return ExNumber{}
	}
	return Number(n.value.Div(o.value))
}

// Abs returns the absolute value, absent if absent.
func (n ExNumber) Abs() ExNumber {
	if !n.valid {
		return ExNumber{}
	}
	return Number(n.value.Abs())
}

// UnmarshalJSON decodes JSON numbers, quoted numeric strings, empty
// strings and nulls. Non-numeric strings decode to an absent value
// rather than an error.
func (n *ExNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*n = ExNumber{}
		return nil
	}
	*n = NumberFromString(s)
	return nil
}

// MarshalJSON encodes absent values as null and present values as
// JSON numbers.
func (n ExNumber) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return []byte(n.value.String()), nil
}
