package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidTime is the base error for any rejected timecode input.
	ErrInvalidTime = errors.New("time is not of an accepted form")
	// ErrInvalidTimestring means a literal matched none of the accepted shapes.
	ErrInvalidTimestring = fmt.Errorf("%w: timestring is not formatted correctly", ErrInvalidTime)
)

// Timecode is a signed offset in milliseconds. It stands in for both an
// instant on the subtitle timeline and a duration between two instants;
// which one applies is up to the caller.
type Timecode struct {
	ms int64
}

// FromMilliseconds wraps an integral millisecond count.
func FromMilliseconds(ms int64) Timecode {
	return Timecode{ms: ms}
}

// Parse reads a compact SRT-style timecode literal, optionally prefixed
// with '-'. The shape is selected by the length of the remainder:
//
//	12    HH:MM:SS,mmm
//	 9    MM:SS,mmm
//	 6    SS,mmm
//	 5    MM:SS
//	 1-3  S, SS or SSS (whole seconds, no comma)
//
// Any other length fails with ErrInvalidTimestring.
func Parse(s string) (Timecode, error) {
	rest := s
	sign := int64(1)
	if strings.HasPrefix(rest, "-") {
		rest = rest[1:]
		sign = -1
	}

	var hours, minutes, seconds, millis string
	switch n := len(rest); {
	case n == 12:
		parts := strings.Split(rest, ":")
		if len(parts) != 3 {
			return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
		}
		var ok bool
		seconds, millis, ok = strings.Cut(parts[2], ",")
		if !ok {
			return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
		}
		hours, minutes = parts[0], parts[1]
	case n == 9:
		parts := strings.Split(rest, ":")
		if len(parts) != 2 {
			return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
		}
		var ok bool
		seconds, millis, ok = strings.Cut(parts[1], ",")
		if !ok {
			return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
		}
		hours, minutes = "0", parts[0]
	case n == 6:
		var ok bool
		seconds, millis, ok = strings.Cut(rest, ",")
		if !ok {
			return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
		}
		hours, minutes = "0", "0"
	case n == 5:
		parts := strings.Split(rest, ":")
		if len(parts) != 2 {
			return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
		}
		hours, minutes, seconds, millis = "0", parts[0], parts[1], "0"
	case n >= 1 && n <= 3:
		hours, minutes, seconds, millis = "0", "0", rest, "0"
	default:
		return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
	}

	h, err := parseComponent(hours)
	if err != nil {
		return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
	}
	m, err := parseComponent(minutes)
	if err != nil {
		return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
	}
	sec, err := parseComponent(seconds)
	if err != nil {
		return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
	}
	ms, err := parseComponent(millis)
	if err != nil {
		return Timecode{}, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
	}

	total := ((h*60+m)*60+sec)*1000 + ms
	return Timecode{ms: total * sign}, nil
}

// components are non-negative base-10 only; ParseUint rejects signs.
func parseComponent(s string) (int64, error) {
	v, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// Milliseconds returns the raw signed millisecond count.
func (t Timecode) Milliseconds() int64 {
	return t.ms
}

// String renders the canonical form HH:MM:SS,mmm with a leading '-' for
// negative values. Hours widen past two digits as needed.
func (t Timecode) String() string {
	total := t.ms
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}

	millis := total % 1000
	total /= 1000
	seconds := total % 60
	total /= 60
	minutes := total % 60
	hours := total / 60

	return fmt.Sprintf("%s%02d:%02d:%02d,%03d", sign, hours, minutes, seconds, millis)
}

func (t Timecode) Add(o Timecode) Timecode {
	return Timecode{ms: t.ms + o.ms}
}

func (t Timecode) Sub(o Timecode) Timecode {
	return Timecode{ms: t.ms - o.ms}
}

func (t Timecode) Neg() Timecode {
	return Timecode{ms: -t.ms}
}

func (t Timecode) Abs() Timecode {
	if t.ms < 0 {
		return Timecode{ms: -t.ms}
	}
	return t
}

// Scale multiplies by a float factor, truncating the product toward zero.
// Lossy: scaling by f and then by 1/f does not round-trip in general.
func (t Timecode) Scale(factor float64) Timecode {
	return Timecode{ms: int64(float64(t.ms) * factor)}
}
