package keypair

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

func TestGenerate_AddressFormat(t *testing.T) {
	pair, err := Generate()
	require.NoError(t, err)

	assert.Regexp(t, addressRe, pair.Address)
	assert.True(t, IsValidAddress(pair.Address))
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, pair.PrivateKey)
}

func TestGenerate_UniquePairs(t *testing.T) {
	a, err := Generate()
	require.NoError(t, err)
	b, err := Generate()
	require.NoError(t, err)

	assert.NotEqual(t, a.Address, b.Address)
	assert.NotEqual(t, a.PrivateKey, b.PrivateKey)
}

func TestDeriveAddress_MatchesGenerate(t *testing.T) {
	pair, err := Generate()
	require.NoError(t, err)

	derived, err := DeriveAddress(pair.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, pair.Address, derived)
}

func TestDeriveAddress_KnownKey(t *testing.T) {
	// Well-known test vector.
	derived, err := DeriveAddress("0xfad9c8855b740a0b7ed4c221dbad0f33a83a49cad6b3fe8d5817ac83d38b6a19")
	require.NoError(t, err)
	assert.Equal(t, "0x96216849c49358B10257cb55b28eA603c874b05E", derived)
}

func TestParse_AcceptsWithAndWithoutPrefix(t *testing.T) {
	pair, err := Generate()
	require.NoError(t, err)

	_, err = Parse(pair.PrivateKey)
	require.NoError(t, err)

	_, err = Parse(pair.PrivateKey[2:])
	require.NoError(t, err)
}

func TestParse_InvalidKey(t *testing.T) {
	for _, input := range []string{"", "0x", "zzzz", "0x1234", "garbage-not-hex"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidKey, "input %q", input)
	}
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x96216849c49358B10257cb55b28eA603c874b05E"))
	assert.False(t, IsValidAddress("not-an-address"))
	assert.False(t, IsValidAddress("0x1234"))
}
