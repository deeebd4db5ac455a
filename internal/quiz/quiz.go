// Package quiz loads YAML question scripts and runs them through a prompt
// session. A script is an ordered list of questions, one per prompt kind
// the engine supports, so flows can be authored as data instead of code.
package quiz

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/pkg/domain"
)

// Question kinds accepted in scripts.
const (
	TypeChoice    = "choice"
	TypeYesNo     = "yesno"
	TypeTrueFalse = "truefalse"
	TypeNumber    = "number"
	TypeRange     = "range"
)

// OptionSpec is one choice entry in a script. A YAML sequence keeps the
// author's ordering, which the option block preserves on screen.
type OptionSpec struct {
	Key         string `yaml:"key"`
	Description string `yaml:"description"`
}

// Question describes a single prompt in a script.
type Question struct {
	Type    string       `yaml:"type"`
	Prompt  string       `yaml:"prompt"`
	Options []OptionSpec `yaml:"options,omitempty"`
	// Want selects what a choice question returns: "key" (default) or
	// "description".
	Want string   `yaml:"want,omitempty"`
	Min  *float64 `yaml:"min,omitempty"`
	Max  *float64 `yaml:"max,omitempty"`
	Kind string   `yaml:"kind,omitempty"`
}

// Script is a parsed quiz file.
type Script struct {
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates script bytes.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if len(s.Questions) == 0 {
		return nil, fmt.Errorf("script has no questions")
	}
	for i, q := range s.Questions {
		if err := q.validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (q Question) validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("missing prompt")
	}
	switch q.Type {
	case TypeChoice:
		if len(q.Options) == 0 {
			return fmt.Errorf("choice question needs options")
		}
		for _, opt := range q.Options {
			if opt.Key == "" {
				return fmt.Errorf("choice option needs a key")
			}
		}
		if q.Want != "" && q.Want != "key" && q.Want != "description" {
			return fmt.Errorf("unknown want %q", q.Want)
		}
	case TypeYesNo, TypeTrueFalse:
		// prompt only
	case TypeNumber:
		if _, err := domain.ParseOutputKind(q.Kind); err != nil {
			return err
		}
	case TypeRange:
		if q.Min == nil || q.Max == nil {
			return fmt.Errorf("range question needs min and max")
		}
		if _, err := domain.ParseOutputKind(q.Kind); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	return nil
}

// Run executes every question in order, writing each answer to w. Errors
// propagate unmodified, so a user-entered exit word (ErrExitRequested)
// cancels the rest of the script and reaches the caller.
func Run(s *Script, session *parley.Session, w io.Writer) error {
	if s.Title != "" {
		fmt.Fprintf(w, "=== %s ===\n\n", s.Title)
	}

	for _, q := range s.Questions {
		answer, err := ask(q, session)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "-> %v\n\n", answer)
	}
	return nil
}

func ask(q Question, session *parley.Session) (any, error) {
	switch q.Type {
	case TypeChoice:
		options := domain.NewOptionSet()
		for _, opt := range q.Options {
			options.Add(opt.Key, opt.Description)
		}
		if q.Want == "description" {
			return session.ChooseDescription(q.Prompt, options)
		}
		return session.Choose(q.Prompt, options)
	case TypeYesNo:
		return session.YesNo(q.Prompt)
	case TypeTrueFalse:
		return session.TrueFalse(q.Prompt)
	case TypeNumber:
		kind, _ := domain.ParseOutputKind(q.Kind)
		n, err := session.Number(q.Prompt, kind)
		if err != nil {
			return nil, err
		}
		return n.Value(), nil
	case TypeRange:
		kind, _ := domain.ParseOutputKind(q.Kind)
		n, err := session.NumberInRange(q.Prompt, domain.NewRange(*q.Min, *q.Max), kind)
		if err != nil {
			return nil, err
		}
		return n.Value(), nil
	default:
		return nil, fmt.Errorf("unknown question type %q", q.Type)
	}
}
