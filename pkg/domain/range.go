package domain

// Range is an inclusive numeric domain for a number prompt.
type Range struct {
	Min float64
	Max float64
}

// NewRange builds a Range from the caller's bounds as given; call Normalize
// before using it.
func NewRange(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// Normalize returns the range with Min and Max swapped when the caller
// passed them reversed. Swapping is cosmetic, never an error.
func (r Range) Normalize() Range {
	if r.Max < r.Min {
		return Range{Min: r.Max, Max: r.Min}
	}
	return r
}

// Validate reports the degenerate case where the normalized range contains
// a single value. That is a caller mistake, raised before any input is
// read, and deliberately not collapsed into "return the shared value".
func (r Range) Validate() error {
	if r.Min == r.Max {
		return NewConfigError("degenerate range: min == max (%v)", r.Min)
	}
	return nil
}

// Contains checks the coerced value against the bounds with native numeric
// comparison.
func (r Range) Contains(n Number) bool {
	v := n.Float()
	return r.Min <= v && v <= r.Max
}
