// Package base58check implements Base58Check encoding: base58 over the
// payload followed by the first four bytes of its double-SHA256.
package base58check

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/qtumproject/go-bip38/internal/hashutil"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// alphabet is the bitcoin base58 alphabet.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const checksumLen = 4

// Encode returns the Base58Check encoding of payload.
func Encode(payload []byte) string {
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, hashutil.Checksum4(payload)...)
	return base58.Encode(buf)
}

// Decode decodes a Base58Check string and returns the payload with the
// checksum stripped. The returned errors distinguish malformed input
// (character, length) from a checksum mismatch.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, bip38err.ErrInvalidLength
	}

	// base58.Decode silently returns empty output on foreign characters,
	// so validate the alphabet up front to keep the error distinct.
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return nil, bip38err.WithDetails(bip38err.ErrInvalidCharacter, map[string]string{
				"position": strconv.Itoa(i),
			})
		}
	}

	decoded := base58.Decode(s)
	if len(decoded) < checksumLen+1 {
		return nil, bip38err.ErrInvalidLength
	}

	payload := decoded[:len(decoded)-checksumLen]
	tail := decoded[len(decoded)-checksumLen:]
	if !bytes.Equal(hashutil.Checksum4(payload), tail) {
		return nil, bip38err.ErrInvalidChecksum
	}
	return payload, nil
}
