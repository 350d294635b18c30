package kdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qtumproject/go-bip38/internal/kdf"
)

func TestNormalizePassphrase_ASCII(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("qtum123"), kdf.NormalizePassphrase("qtum123"))
}

func TestNormalizePassphrase_NFC(t *testing.T) {
	t.Parallel()

	// U+00E9 (precomposed) and "e" + U+0301 (combining acute) must
	// normalise to the same bytes or the derived keys diverge.
	composed := kdf.NormalizePassphrase("caf\u00e9")
	decomposed := kdf.NormalizePassphrase("cafe\u0301")
	assert.Equal(t, composed, decomposed)
}

func TestStrong_DeterministicAndSized(t *testing.T) {
	t.Parallel()

	first, err := kdf.Strong([]byte("passphrase"), []byte{0x01, 0x02, 0x03, 0x04}, 64)
	require.NoError(t, err)
	second, err := kdf.Strong([]byte("passphrase"), []byte{0x01, 0x02, 0x03, 0x04}, 64)
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.Equal(t, first, second)
}

func TestStrong_SaltSensitivity(t *testing.T) {
	t.Parallel()

	a, err := kdf.Strong([]byte("passphrase"), []byte{0x01, 0x02, 0x03, 0x04}, 32)
	require.NoError(t, err)
	b, err := kdf.Strong([]byte("passphrase"), []byte{0x01, 0x02, 0x03, 0x05}, 32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestLight_DiffersFromStrong(t *testing.T) {
	t.Parallel()

	password := []byte("passpoint-bytes")
	salt := []byte("salt-bytes")

	light, err := kdf.Light(password, salt, 64)
	require.NoError(t, err)
	strong, err := kdf.Strong(password, salt, 64)
	require.NoError(t, err)

	assert.Len(t, light, 64)
	assert.NotEqual(t, strong, light)
}
