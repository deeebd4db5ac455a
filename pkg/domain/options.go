package domain

// Option is a single key/description pair within an OptionSet.
type Option struct {
	Key         string
	Description string
}

// OptionSet is an insertion-ordered key -> description mapping defining the
// valid answers for a choice prompt. Display order is insertion order.
// Keys are matched against raw input lines with exact equality; the set does
// no trimming or case folding on lookup.
type OptionSet struct {
	entries []Option
	index   map[string]int
}

// NewOptionSet creates an empty OptionSet.
func NewOptionSet() *OptionSet {
	return &OptionSet{index: make(map[string]int)}
}

// Add appends a key/description entry and returns the set for chaining.
// Re-adding an existing key replaces its description in place, keeping the
// original display position. Empty keys are ignored.
func (s *OptionSet) Add(key, description string) *OptionSet {
	if key == "" {
		return s
	}
	if i, ok := s.index[key]; ok {
		s.entries[i].Description = description
		return s
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Option{Key: key, Description: description})
	return s
}

// Get returns the description mapped to key via exact equality.
func (s *OptionSet) Get(key string) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.entries[i].Description, true
}

// Len returns the number of entries.
func (s *OptionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Keys returns the keys in insertion order.
func (s *OptionSet) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Key
	}
	return keys
}

// Options returns the entries in insertion order.
func (s *OptionSet) Options() []Option {
	return s.entries
}

// Width returns the length of the longest key. The option renderer uses it
// as the key column width.
func (s *OptionSet) Width() int {
	width := 0
	for _, e := range s.entries {
		if len(e.Key) > width {
			width = len(e.Key)
		}
	}
	return width
}
