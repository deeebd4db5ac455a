package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tags a Number as integer or floating point.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

func (k Kind) String() string {
	if k == KindFloat {
		return "float"
	}
	return "int"
}

// OutputKind selects the representation a prompt returns to the caller.
type OutputKind int

const (
	// AsEntered keeps whatever kind the coercion rule assigned.
	AsEntered OutputKind = iota
	// AsInt forces an integer, truncating a float if needed.
	AsInt
	// AsFloat forces a floating-point value.
	AsFloat
)

// ParseOutputKind maps the textual kind names used by the CLI and quiz
// scripts ("entered", "int", "float") to an OutputKind. The empty string
// means AsEntered.
func ParseOutputKind(s string) (OutputKind, error) {
	switch s {
	case "", "entered":
		return AsEntered, nil
	case "int":
		return AsInt, nil
	case "float":
		return AsFloat, nil
	default:
		return AsEntered, fmt.Errorf("unknown output kind %q", s)
	}
}

// Number is a tagged numeric value produced by Coerce. Once tagged it is
// never reinterpreted, except through an explicit As cast requested by the
// caller.
type Number struct {
	Kind Kind
	i    int64
	f    float64
}

// IntValue builds an integer-tagged Number.
func IntValue(v int64) Number {
	return Number{Kind: KindInt, i: v}
}

// FloatValue builds a float-tagged Number.
func FloatValue(v float64) Number {
	return Number{Kind: KindFloat, f: v}
}

// Coerce applies the deterministic typing rule to a raw input line: text
// containing a literal decimal point becomes a float; anything else is
// parsed as a float and truncated to an integer. So "5" is int 5, "5.0"
// is float 5.0 and "5." is float 5.0. The rule inspects the raw text, it
// never guesses from the parsed value.
func Coerce(raw string) (Number, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Number{}, fmt.Errorf("not a number: %q", raw)
	}
	if strings.Contains(raw, ".") {
		return FloatValue(v), nil
	}
	return IntValue(int64(v)), nil
}

// Int returns the value as an integer, truncating a float tag.
func (n Number) Int() int64 {
	if n.Kind == KindFloat {
		return int64(n.f)
	}
	return n.i
}

// Float returns the value as a floating-point number.
func (n Number) Float() float64 {
	if n.Kind == KindFloat {
		return n.f
	}
	return float64(n.i)
}

// Value returns the dynamically-typed payload: int64 or float64 per the tag.
func (n Number) Value() any {
	if n.Kind == KindFloat {
		return n.f
	}
	return n.i
}

// As performs the caller-requested representation cast. AsEntered returns
// the Number unchanged.
func (n Number) As(kind OutputKind) Number {
	switch kind {
	case AsInt:
		return IntValue(n.Int())
	case AsFloat:
		return FloatValue(n.Float())
	default:
		return n
	}
}

func (n Number) String() string {
	if n.Kind == KindFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}
