// Package hashutil provides the fixed hash constructions used by the
// BIP38 payload formats and Qtum address derivation.
package hashutil

import (
	"crypto/sha256"

	// RIPEMD160 is deprecated for new designs but mandatory here: the
	// Bitcoin-family P2PKH format Qtum inherits defines its key hash as
	// RIPEMD160(SHA256(pubkey)) and cannot be changed.
	//nolint:gosec,staticcheck // G507,SA1019: RIPEMD160 required by the address format
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// DoubleSHA256 computes SHA256(SHA256(data)).
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Checksum4 returns the first four bytes of DoubleSHA256(data). It is
// both the base58check tail and the BIP38 addresshash.
func Checksum4(data []byte) []byte {
	return DoubleSHA256(data)[:4]
}

// Hash160 is the P2PKH key hash: RIPEMD160 over SHA256(data).
//
//nolint:gosec // G406: RIPEMD160 usage required by the address format
func Hash160(data []byte) []byte {
	inner := sha256.Sum256(data)
	outer := ripemd160.New()
	outer.Write(inner[:])
	return outer.Sum(nil)
}

// Keccak256 hashes the concatenation of the given chunks with the
// legacy (pre-NIST) Keccak-256 used by EVM tooling. It backs the
// checksummed hex rendering of the EVM-side address.
func Keccak256(chunks ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, chunk := range chunks {
		h.Write(chunk)
	}
	return h.Sum(nil)
}
