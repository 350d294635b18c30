package bip38

import (
	"encoding/hex"

	"github.com/qtumproject/go-bip38/internal/curve"
	"github.com/qtumproject/go-bip38/internal/keys"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// PrivateKeyToWIF encodes a 64-character hex private key as a WIF
// string for the given network. The scalar must be in [1, n).
func PrivateKeyToWIF(privHex string, compressed bool, net Network) (string, error) {
	params, err := net.params()
	if err != nil {
		return "", err
	}

	priv, err := decodePrivHex(privHex)
	if err != nil {
		return "", err
	}

	if _, err := curve.ParseScalar(priv); err != nil {
		return "", err
	}

	return keys.EncodeWIF(priv, compressed, params)
}

// WIFToPrivateKey decodes a WIF string, returning the hex private key
// and whether the WIF marks a compressed public key.
func WIFToPrivateKey(wif string, net Network) (privHex string, compressed bool, err error) {
	params, err := net.params()
	if err != nil {
		return "", false, err
	}

	priv, compressed, err := keys.DecodeWIF(wif, params)
	if err != nil {
		return "", false, err
	}

	return hex.EncodeToString(priv), compressed, nil
}

// decodePrivHex parses a 32-byte private key from hex.
func decodePrivHex(privHex string) ([]byte, error) {
	priv, err := hex.DecodeString(privHex)
	if err != nil {
		return nil, bip38err.Wrap(bip38err.ErrInvalidPrivateKey, "decode hex")
	}
	if len(priv) != 32 {
		return nil, bip38err.ErrInvalidPrivateKey
	}
	return priv, nil
}
