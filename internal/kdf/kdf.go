// Package kdf wraps the two scrypt parameter sets used by BIP38 and the
// passphrase normalisation that must precede them.
package kdf

import (
	"golang.org/x/crypto/scrypt"
	"golang.org/x/text/unicode/norm"

	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// Strong-mode parameters derive the wrapping key directly from the
// passphrase; light-mode parameters derive the per-key wrapping key
// from passpoint, which is already high-entropy.
const (
	strongN = 16384
	strongR = 8
	strongP = 8

	lightN = 1024
	lightR = 1
	lightP = 1
)

// NormalizePassphrase applies NFC normalisation and returns the UTF-8
// bytes. Passphrases containing combining marks decrypt differently
// without this step; ASCII passes through unchanged.
func NormalizePassphrase(passphrase string) []byte {
	return []byte(norm.NFC.String(passphrase))
}

// Strong runs scrypt with N=16384, r=8, p=8.
func Strong(password, salt []byte, keyLen int) ([]byte, error) {
	key, err := scrypt.Key(password, salt, strongN, strongR, strongP, keyLen)
	if err != nil {
		return nil, bip38err.Wrap(err, "scrypt strong mode")
	}
	return key, nil
}

// Light runs scrypt with N=1024, r=1, p=1.
func Light(password, salt []byte, keyLen int) ([]byte, error) {
	key, err := scrypt.Key(password, salt, lightN, lightR, lightP, keyLen)
	if err != nil {
		return nil, bip38err.Wrap(err, "scrypt light mode")
	}
	return key, nil
}
