package parley_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/pkg/domain"
)

func newSession(input string) (*parley.Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	s := parley.New(
		parley.WithInput(strings.NewReader(input)),
		parley.WithOutput(out),
	)
	return s, out
}

func TestSession_Choose(t *testing.T) {
	s, out := newSession("n\n")

	options := domain.NewOptionSet().Add("y", "yes").Add("n", "no")
	got, err := s.Choose("Is Footloose still the greatest movie ever?", options)
	require.NoError(t, err)
	assert.Equal(t, "n", got)
	assert.Contains(t, out.String(), " - 'y' for 'yes'")
	assert.Contains(t, out.String(), " - 'n' for 'no'")
}

func TestSession_ChooseDescription(t *testing.T) {
	s, _ := newSession("i\n")

	options := domain.NewOptionSet().Add("t", "Thor").Add("i", "Iron Man")
	got, err := s.ChooseDescription("Pick one", options)
	require.NoError(t, err)
	assert.Equal(t, "Iron Man", got)
}

func TestSession_YesNo(t *testing.T) {
	s, _ := newSession("y\n")

	got, err := s.YesNo("Did you enjoy it?")
	require.NoError(t, err)
	assert.Equal(t, "y", got)
}

func TestSession_TrueFalse(t *testing.T) {
	t.Run("true", func(t *testing.T) {
		s, _ := newSession("t\n")
		got, err := s.TrueFalse("True or false?")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("false", func(t *testing.T) {
		s, _ := newSession("f\n")
		got, err := s.TrueFalse("True or false?")
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestSession_NumberPrompts(t *testing.T) {
	s, _ := newSession("41\n")
	n, err := s.Number("Pick a number", domain.AsEntered)
	require.NoError(t, err)
	assert.Equal(t, int64(41), n.Int())

	s, _ = newSession("7\n")
	n, err = s.NumberInRange("Pick a number", domain.NewRange(1, 10), domain.AsFloat)
	require.NoError(t, err)
	assert.Equal(t, domain.KindFloat, n.Kind)
	assert.Equal(t, 7.0, n.Float())
}

// Every prompt kind must react to every exit word with the same farewell
// and the same termination behavior.
func TestSession_ExitWordEquivalence(t *testing.T) {
	options := domain.NewOptionSet().Add("y", "yes").Add("n", "no")

	prompts := map[string]func(*parley.Session) error{
		"choose": func(s *parley.Session) error {
			_, err := s.Choose("Pick one", options)
			return err
		},
		"number": func(s *parley.Session) error {
			_, err := s.Number("Pick a number", domain.AsEntered)
			return err
		},
		"number in range": func(s *parley.Session) error {
			_, err := s.NumberInRange("Pick a number", domain.NewRange(1, 10), domain.AsEntered)
			return err
		},
	}

	for name, ask := range prompts {
		for _, word := range []string{"quit", "exit", "leave"} {
			t.Run(name+"/"+word, func(t *testing.T) {
				s, out := newSession(word + "\n")
				err := ask(s)
				require.ErrorIs(t, err, domain.ErrExitRequested)
				assert.True(t, strings.HasSuffix(out.String(), "Thanks!\n"),
					"farewell must be the last line, got %q", out.String())
				assert.Equal(t, 1, strings.Count(out.String(), "Thanks!"))
			})
		}
	}
}

func TestSession_WithRenderer(t *testing.T) {
	t.Run("renderer output is displayed", func(t *testing.T) {
		out := &bytes.Buffer{}
		s := parley.New(
			parley.WithInput(strings.NewReader("y\n")),
			parley.WithOutput(out),
			parley.WithRenderer(func(text string) (string, error) {
				return "[rendered] " + text, nil
			}),
		)

		_, err := s.YesNo("Ready?")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "[rendered] Ready?")
	})

	t.Run("renderer failure falls back to raw text", func(t *testing.T) {
		out := &bytes.Buffer{}
		s := parley.New(
			parley.WithInput(strings.NewReader("y\n")),
			parley.WithOutput(out),
			parley.WithRenderer(func(string) (string, error) {
				return "", assert.AnError
			}),
		)

		_, err := s.YesNo("Ready?")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Ready?")
		assert.NotContains(t, out.String(), "[rendered]")
	})
}

func TestSession_WithConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ExitWords = []string{"farvel"}
	cfg.Farewell = "Hej hej!"

	out := &bytes.Buffer{}
	s := parley.New(
		parley.WithInput(strings.NewReader("farvel\n")),
		parley.WithOutput(out),
		parley.WithConfig(cfg),
	)

	_, err := s.Number("Pick a number", domain.AsEntered)
	require.ErrorIs(t, err, domain.ErrExitRequested)
	assert.Contains(t, out.String(), "Hej hej!")
}
