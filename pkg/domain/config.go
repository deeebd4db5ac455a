package domain

// Config carries the fixed vocabulary and display widths shared by every
// prompt. It is built once and passed by reference into the engine; nothing
// mutates it after construction.
type Config struct {
	// ExitWords is the case-sensitive vocabulary that cancels the whole
	// interactive session from any prompt.
	ExitWords []string

	// Farewell is printed exactly once when an exit word is entered.
	Farewell string

	// WrapWidth bounds prompt text lines.
	WrapWidth int

	// DescriptionWidth bounds option description lines, narrower than the
	// prompt so wrapped descriptions stay clear of the key column.
	DescriptionWidth int

	// PromptIndent is the hanging indent for wrapped prompt continuation
	// lines.
	PromptIndent int
}

// DefaultConfig returns the stock configuration: exit words quit/exit/leave,
// 80-column prompts, 60-column descriptions.
func DefaultConfig() *Config {
	return &Config{
		ExitWords:        []string{"quit", "exit", "leave"},
		Farewell:         "Thanks!",
		WrapWidth:        80,
		DescriptionWidth: 60,
		PromptIndent:     1,
	}
}

// IsExitWord matches the raw line against the exit vocabulary. Matching is
// exact: no trimming, no case folding.
func (c *Config) IsExitWord(line string) bool {
	for _, w := range c.ExitWords {
		if line == w {
			return true
		}
	}
	return false
}
