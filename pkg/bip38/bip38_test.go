package bip38_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qtumproject/go-bip38/internal/encoding/base58check"
	"github.com/qtumproject/go-bip38/pkg/bip38"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

const testPassphrase = "qtum123"

// No-EC-multiply vectors for the key in testPrivHex under testPassphrase.
const (
	encryptedUncompressed = "6PRP4FDk4BWidB539rEWBH26DRcG2tavQg52WRcyuK5dxMdu8WHVftRZof"
	addressUncompressed   = "QeS5U4AEaxPpJ8swzLHEcNbAaNkDfpWjQN"

	encryptedCompressed = "6PYUYP8xySgSbqtYXHGfWUn1xL9F3r9qKru8CUbqeK94QSrJcrSAmZoaEd"
	addressCompressed   = "QRfLX1RpJN25v2jKGPYsQHu8G1ag3sHJeL"
)

func TestEncrypt_Vectors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		compressed bool
		want       string
	}{
		{"uncompressed", false, encryptedUncompressed},
		{"compressed", true, encryptedCompressed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			wif, err := bip38.PrivateKeyToWIF(testPrivHex, tc.compressed, bip38.MainNet)
			require.NoError(t, err)

			got, err := bip38.Encrypt(wif, testPassphrase, bip38.MainNet)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncrypt_Deterministic(t *testing.T) {
	t.Parallel()

	wif, err := bip38.PrivateKeyToWIF(testPrivHex, true, bip38.MainNet)
	require.NoError(t, err)

	first, err := bip38.Encrypt(wif, testPassphrase, bip38.MainNet)
	require.NoError(t, err)
	second, err := bip38.Encrypt(wif, testPassphrase, bip38.MainNet)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecrypt_Vectors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name        string
		token       string
		compressed  bool
		wantAddress string
	}{
		{"uncompressed", encryptedUncompressed, false, addressUncompressed},
		{"compressed", encryptedCompressed, true, addressCompressed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			details, err := bip38.DecryptDetailed(tc.token, testPassphrase, bip38.MainNet)
			require.NoError(t, err)

			assert.Equal(t, testPrivHex, details.PrivateKey)
			assert.Equal(t, tc.compressed, details.Compressed)
			assert.Equal(t, tc.wantAddress, details.Address)
			assert.Empty(t, details.Seed)
			assert.Nil(t, details.Lot)
			assert.Nil(t, details.Sequence)

			// The brief form returns the WIF of the same key.
			wif, err := bip38.Decrypt(tc.token, testPassphrase, bip38.MainNet)
			require.NoError(t, err)
			assert.Equal(t, details.WIF, wif)

			gotPriv, gotCompressed, err := bip38.WIFToPrivateKey(wif, bip38.MainNet)
			require.NoError(t, err)
			assert.Equal(t, testPrivHex, gotPriv)
			assert.Equal(t, tc.compressed, gotCompressed)
		})
	}
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	t.Parallel()

	_, err := bip38.Decrypt(encryptedCompressed, "not-the-passphrase", bip38.MainNet)
	require.Error(t, err)
	assert.ErrorIs(t, err, bip38err.ErrBadPassphrase)
}

func TestDecrypt_TamperedToken(t *testing.T) {
	t.Parallel()

	// Flip one character in the middle of the token. The base58check
	// tail no longer matches (or, for the rare colliding flip, the
	// embedded address hash does not).
	token := []byte(encryptedCompressed)
	if token[20] != 'a' {
		token[20] = 'a'
	} else {
		token[20] = 'b'
	}

	_, err := bip38.Decrypt(string(token), testPassphrase, bip38.MainNet)
	require.Error(t, err)
	if !bip38err.Is(err, bip38err.ErrInvalidChecksum) {
		assert.ErrorIs(t, err, bip38err.ErrBadPassphrase)
	}
}

func TestDecrypt_UnexpectedPrefix(t *testing.T) {
	t.Parallel()

	payload := make([]byte, 39)
	payload[0] = 0x01
	payload[1] = 0x44

	_, err := bip38.Decrypt(base58check.Encode(payload), testPassphrase, bip38.MainNet)
	assert.ErrorIs(t, err, bip38err.ErrUnexpectedPrefix)
}

func TestDecrypt_UnsupportedFlags(t *testing.T) {
	t.Parallel()

	// No-EC payload whose flag byte lacks the two high marker bits.
	noEC := make([]byte, 39)
	noEC[0], noEC[1], noEC[2] = 0x01, 0x42, 0x00
	_, err := bip38.Decrypt(base58check.Encode(noEC), testPassphrase, bip38.MainNet)
	assert.ErrorIs(t, err, bip38err.ErrUnsupportedFlag)

	// EC payload with a reserved flag bit set.
	ec := make([]byte, 39)
	ec[0], ec[1], ec[2] = 0x01, 0x43, 0x10
	_, err = bip38.Decrypt(base58check.Encode(ec), testPassphrase, bip38.MainNet)
	assert.ErrorIs(t, err, bip38err.ErrUnsupportedFlag)
}

func TestDecrypt_WrongLength(t *testing.T) {
	t.Parallel()

	// A valid WIF decodes fine but is not a 39-byte encrypted payload.
	wif, err := bip38.PrivateKeyToWIF(testPrivHex, true, bip38.MainNet)
	require.NoError(t, err)

	_, err = bip38.Decrypt(wif, testPassphrase, bip38.MainNet)
	assert.ErrorIs(t, err, bip38err.ErrInvalidLength)
}

func TestEncryptDecrypt_NFCPassphrases(t *testing.T) {
	t.Parallel()

	wif, err := bip38.PrivateKeyToWIF(testPrivHex, true, bip38.MainNet)
	require.NoError(t, err)

	// Encrypt with the precomposed form, decrypt with the decomposed
	// one; NFC makes them the same passphrase.
	token, err := bip38.Encrypt(wif, "caf\u00e9", bip38.MainNet)
	require.NoError(t, err)

	details, err := bip38.DecryptDetailed(token, "cafe\u0301", bip38.MainNet)
	require.NoError(t, err)
	assert.Equal(t, testPrivHex, details.PrivateKey)
}

func TestEncrypt_RoundTrip_TestNet(t *testing.T) {
	t.Parallel()

	wif, err := bip38.PrivateKeyToWIF(testPrivHex, false, bip38.TestNet)
	require.NoError(t, err)

	token, err := bip38.Encrypt(wif, testPassphrase, bip38.TestNet)
	require.NoError(t, err)

	got, err := bip38.Decrypt(token, testPassphrase, bip38.TestNet)
	require.NoError(t, err)
	assert.Equal(t, wif, got)

	// The mainnet tables cannot decode a testnet WIF payload.
	_, err = bip38.Encrypt(wif, testPassphrase, bip38.MainNet)
	assert.ErrorIs(t, err, bip38err.ErrNetworkMismatch)
}
