package runtime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley/pkg/domain"
)

func TestFormatOptions_TrueFalseBlock(t *testing.T) {
	options := domain.NewOptionSet().Add("t", "True").Add("f", "False")

	block := FormatOptions(options, domain.DefaultConfig())
	lines := strings.Split(block, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, " - 't' for 'True'", lines[0])
	assert.Equal(t, " - 'f' for 'False'", lines[1])
}

func TestFormatOptions_KeyColumnAlignment(t *testing.T) {
	options := domain.NewOptionSet().Add("y", "yes").Add("maybe", "perhaps")

	lines := strings.Split(FormatOptions(options, domain.DefaultConfig()), "\n")
	require.Len(t, lines, 2)
	// Short keys are padded to the widest key.
	assert.Equal(t, " - 'y    ' for 'yes'", lines[0])
	assert.Equal(t, " - 'maybe' for 'perhaps'", lines[1])
}

func TestFormatOptions_LongDescriptionWraps(t *testing.T) {
	options := domain.NewOptionSet().Add("x",
		"a very long description that certainly will not fit on a single sixty column line and must wrap")

	lines := strings.Split(FormatOptions(options, domain.DefaultConfig()), "\n")
	require.Greater(t, len(lines), 1, "long description should wrap")

	// Continuation lines carry the hanging indent: key column (1) plus the
	// scaffold width, aligning under the description start.
	indent := strings.Repeat(" ", 1+scaffoldWidth)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, indent), "line %q missing hanging indent", line)
	}
}

func TestFormatOptions_InsertionOrder(t *testing.T) {
	options := domain.NewOptionSet().
		Add("c", "third alphabetically, first inserted").
		Add("a", "first alphabetically, second inserted").
		Add("b", "second alphabetically, last inserted")

	lines := strings.Split(FormatOptions(options, domain.DefaultConfig()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], " - 'c'"))
	assert.True(t, strings.HasPrefix(lines[1], " - 'a'"))
	assert.True(t, strings.HasPrefix(lines[2], " - 'b'"))
}
