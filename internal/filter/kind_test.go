package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := Parse(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	k, err := Parse(" Vintage ")
	require.NoError(t, err)
	assert.Equal(t, Vintage, k)

	k, err = Parse("identity")
	require.NoError(t, err)
	assert.Equal(t, Identity, k)

	_, err = Parse("sparkle")
	assert.ErrorIs(t, err, ErrUnknownFilterKind)
	assert.Contains(t, err.Error(), `"sparkle"`)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "normal", Identity.String())
	assert.Equal(t, "argentino", Argentino.String())
	assert.Equal(t, "Kind(-1)", Kind(-1).String())
	assert.Len(t, Kinds(), 6)
}

func TestKind_Text(t *testing.T) {
	b, err := Warm.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warm", string(b))

	_, err = Kind(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownFilterKind)

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("disco")))
	assert.Equal(t, Disco, k)
}
