// Package keys implements wallet import format and Qtum address
// derivation on top of the codec and hash layers.
package keys

import (
	"github.com/qtumproject/go-bip38/internal/encoding/base58check"
	"github.com/qtumproject/go-bip38/internal/netparams"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

const privKeyLen = 32

// compressedMarker trails the private key in a WIF for a compressed
// public key.
const compressedMarker = 0x01

// EncodeWIF returns the wallet import format string for a 32-byte
// private key on the given network.
func EncodeWIF(priv []byte, compressed bool, params *netparams.Params) (string, error) {
	if len(priv) != privKeyLen {
		return "", bip38err.ErrInvalidPrivateKey
	}

	payload := make([]byte, 0, 1+privKeyLen+1)
	payload = append(payload, params.WIFVersion)
	payload = append(payload, priv...)
	if compressed {
		payload = append(payload, compressedMarker)
	}
	return base58check.Encode(payload), nil
}

// DecodeWIF decodes a WIF string, validating its length, network
// version byte, and compression marker. The returned private key is a
// fresh copy.
func DecodeWIF(wif string, params *netparams.Params) (priv []byte, compressed bool, err error) {
	payload, err := base58check.Decode(wif)
	if err != nil {
		return nil, false, err
	}

	switch len(payload) {
	case 1 + privKeyLen:
	case 1 + privKeyLen + 1:
		if payload[len(payload)-1] != compressedMarker {
			return nil, false, bip38err.Wrap(bip38err.ErrUnsupportedFlag, "wif compression marker")
		}
		compressed = true
	default:
		return nil, false, bip38err.Wrap(bip38err.ErrInvalidLength, "wif payload")
	}

	if payload[0] != params.WIFVersion {
		return nil, false, bip38err.WithDetails(bip38err.ErrNetworkMismatch, map[string]string{
			"network": params.Name,
		})
	}

	priv = make([]byte, privKeyLen)
	copy(priv, payload[1:1+privKeyLen])
	return priv, compressed, nil
}
