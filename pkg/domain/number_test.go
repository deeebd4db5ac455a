package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	t.Run("integer without decimal point", func(t *testing.T) {
		n, err := Coerce("5")
		require.NoError(t, err)
		assert.Equal(t, KindInt, n.Kind)
		assert.Equal(t, int64(5), n.Int())
	})

	t.Run("decimal point forces float", func(t *testing.T) {
		n, err := Coerce("5.0")
		require.NoError(t, err)
		assert.Equal(t, KindFloat, n.Kind)
		assert.Equal(t, 5.0, n.Float())
	})

	t.Run("trailing decimal point is still a float", func(t *testing.T) {
		n, err := Coerce("5.")
		require.NoError(t, err)
		assert.Equal(t, KindFloat, n.Kind)
		assert.Equal(t, 5.0, n.Float())
	})

	t.Run("exponent notation without point truncates to int", func(t *testing.T) {
		n, err := Coerce("5e3")
		require.NoError(t, err)
		assert.Equal(t, KindInt, n.Kind)
		assert.Equal(t, int64(5000), n.Int())
	})

	t.Run("negative values keep their sign", func(t *testing.T) {
		n, err := Coerce("-12")
		require.NoError(t, err)
		assert.Equal(t, int64(-12), n.Int())
	})

	t.Run("non-numeric text is rejected", func(t *testing.T) {
		_, err := Coerce("abc")
		assert.Error(t, err)
	})

	t.Run("empty line is rejected", func(t *testing.T) {
		_, err := Coerce("")
		assert.Error(t, err)
	})
}

func TestNumberAs(t *testing.T) {
	t.Run("AsEntered keeps the tag", func(t *testing.T) {
		n := FloatValue(5.5)
		assert.Equal(t, n, n.As(AsEntered))
	})

	t.Run("AsInt truncates a float", func(t *testing.T) {
		n := FloatValue(5.9).As(AsInt)
		assert.Equal(t, KindInt, n.Kind)
		assert.Equal(t, int64(5), n.Int())
	})

	t.Run("AsFloat widens an int", func(t *testing.T) {
		n := IntValue(5).As(AsFloat)
		assert.Equal(t, KindFloat, n.Kind)
		assert.Equal(t, 5.0, n.Float())
	})
}

func TestNumberValue(t *testing.T) {
	assert.Equal(t, int64(7), IntValue(7).Value())
	assert.Equal(t, 7.5, FloatValue(7.5).Value())
}

func TestParseOutputKind(t *testing.T) {
	for name, want := range map[string]OutputKind{
		"":        AsEntered,
		"entered": AsEntered,
		"int":     AsInt,
		"float":   AsFloat,
	} {
		kind, err := ParseOutputKind(name)
		require.NoError(t, err, "kind %q", name)
		assert.Equal(t, want, kind, "kind %q", name)
	}

	_, err := ParseOutputKind("decimal")
	assert.Error(t, err)
}
