package types

import (
	"strconv"
	"strings"
	"time"
)

// ExTimestamp is a nullable timestamp supporting the formats exchange
// APIs actually emit: integer epoch seconds/millis/micros/nanos
// (distinguished by digit count), fractional epoch seconds carried as a
// decimal string (e.g. "1583933682.448826"), and RFC3339 strings.
//
// Empty strings and nulls decode to an absent value, distinguishable
// from the Unix epoch.
type ExTimestamp struct {
	time.Time
	valid bool
}

// Timestamp wraps a time.Time into a present ExTimestamp.
func Timestamp(t time.Time) ExTimestamp {
	return ExTimestamp{Time: t, valid: true}
}

// TimestampFromMilli builds a present ExTimestamp from epoch millis.
func TimestampFromMilli(ms int64) ExTimestamp {
	return Timestamp(time.UnixMilli(ms))
}

// Valid reports whether the timestamp is present.
func (t ExTimestamp) Valid() bool {
	return t.valid
}

// UnixMilliOrZero returns epoch millis, or 0 when absent.
func (t ExTimestamp) UnixMilliOrZero() int64 {
	if !t.valid {
		return 0
	}
	return t.UnixMilli()
}

// ParseTimestampSeconds parses epoch seconds carried as a decimal
// string, preserving sub-second precision down to the millisecond.
func ParseTimestampSeconds(s string) ExTimestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return ExTimestamp{}
	}
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ExTimestamp{}
	}
	return TimestampFromMilli(int64(sec * 1000))
}

// UnmarshalJSON decodes the supported timestamp formats.
func (t *ExTimestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*t = ExTimestamp{}
		return nil
	}

	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		switch len(s) {
		case 10:
			*t = Timestamp(time.Unix(ts, 0))
		case 13:
			*t = TimestampFromMilli(ts)
		case 16:
			*t = Timestamp(time.UnixMicro(ts))
		case 19:
			*t = Timestamp(time.Unix(0, ts))
		default:
			// short integers are still epoch seconds
			*t = Timestamp(time.Unix(ts, 0))
		}
		return nil
	}

	// fractional epoch seconds, e.g. "1583933682.448826"
	if strings.Contains(s, ".") {
		if ts := ParseTimestampSeconds(s); ts.Valid() {
			*t = ts
			return nil
		}
	}

	tt, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// unparseable timestamps are absent, not fatal
		*t = ExTimestamp{}
		return nil
	}
	*t = Timestamp(tt)
	return nil
}

// MarshalJSON encodes absent values as null and present values as
// epoch millis.
func (t ExTimestamp) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}
