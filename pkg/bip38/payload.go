// Package bip38 implements BIP38 passphrase-protected private-key
// encryption parameterised for the Qtum blockchain: the no-EC-multiply
// and EC-multiply codecs, intermediate passphrases, confirmation codes,
// and the WIF/address helpers they depend on.
package bip38

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"

	"github.com/qtumproject/go-bip38/internal/hashutil"
	"github.com/qtumproject/go-bip38/internal/kdf"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// Payload sizes after base58check decoding.
const (
	encryptedPayloadLen    = 39
	intermediatePayloadLen = 49
	confirmPayloadLen      = 51

	ownerSaltLen    = 8
	ownerEntropyLen = 8
	addressHashLen  = 4
	seedLen         = 24
	passpointLen    = 33

	maxLot      = 1048575
	maxSequence = 4095
)

// Flag byte semantics, identical to BIP38.
const (
	flagCompressed = 0x20
	flagLotSeq     = 0x04
	flagNonEC      = 0xC0
)

// Payload magics.
//
//nolint:gochecknoglobals // Wire-format constants, never mutated
var (
	nonECPrefix = []byte{0x01, 0x42}
	ecPrefix    = []byte{0x01, 0x43}

	// Intermediate-passphrase magic; the final byte differs depending on
	// whether lot/sequence numbers are embedded.
	intermediateMagicLotSeq   = []byte{0x2C, 0xE9, 0xB3, 0xE1, 0xFF, 0x39, 0xE2, 0x51}
	intermediateMagicNoLotSeq = []byte{0x2C, 0xE9, 0xB3, 0xE1, 0xFF, 0x39, 0xE2, 0x53}

	confirmMagic = []byte{0x64, 0x3B, 0xF6, 0xA8, 0x9A}
)

// newBlockCipher builds the AES-256 block cipher keyed by the second
// scrypt half. BIP38 encrypts two independent 16-byte blocks, so the
// raw ECB-style single-block interface is the construction itself.
func newBlockCipher(key []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, bip38err.Wrap(err, "aes key setup")
	}
	return block, nil
}

// xorBytes returns a XOR b for equal-length slices.
func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// encryptBlock returns E_key(a XOR b) for one 16-byte block.
func encryptBlock(block cipher.Block, a, b []byte) []byte {
	out := make([]byte, aes.BlockSize)
	block.Encrypt(out, xorBytes(a, b))
	return out
}

// decryptBlock returns D_key(ct) XOR mask for one 16-byte block.
func decryptBlock(block cipher.Block, ct, mask []byte) []byte {
	out := make([]byte, aes.BlockSize)
	block.Decrypt(out, ct)
	return xorBytes(out, mask)
}

// passFactor recomputes the passphrase scalar bytes for the EC-multiply
// codecs. The branch is selected by the lot/sequence flag: with it set,
// only the first four owner-entropy bytes salt the scrypt call and the
// result is folded with the full owner entropy.
func passFactor(passphrase []byte, hasLotSeq bool, ownerEntropy []byte) ([]byte, error) {
	if !hasLotSeq {
		return kdf.Strong(passphrase, ownerEntropy, 32)
	}

	prefactor, err := kdf.Strong(passphrase, ownerEntropy[:4], 32)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(prefactor)+ownerEntropyLen)
	buf = append(buf, prefactor...)
	buf = append(buf, ownerEntropy...)
	return hashutil.DoubleSHA256(buf), nil
}

// parseLotSequence unpacks the packed lot/sequence number from the last
// four owner-entropy bytes.
func parseLotSequence(ownerEntropy []byte) (lot, sequence uint32) {
	packed := binary.BigEndian.Uint32(ownerEntropy[4:8])
	return packed / 4096, packed % 4096
}

// parseIntermediate validates and splits an intermediate-passphrase
// token into its owner entropy and passpoint, reporting which magic
// variant produced it.
func parseIntermediate(payload []byte) (ownerEntropy, passpoint []byte, hasLotSeq bool, err error) {
	if len(payload) != intermediatePayloadLen {
		return nil, nil, false, bip38err.Wrap(bip38err.ErrInvalidLength, "intermediate passphrase")
	}

	switch {
	case bytes.Equal(payload[:8], intermediateMagicLotSeq):
		hasLotSeq = true
	case bytes.Equal(payload[:8], intermediateMagicNoLotSeq):
		hasLotSeq = false
	default:
		return nil, nil, false, bip38err.Wrap(bip38err.ErrUnexpectedPrefix, "intermediate passphrase")
	}

	return payload[8:16], payload[16:49], hasLotSeq, nil
}

// checkECFlag rejects EC-multiply flag bytes with reserved bits set.
func checkECFlag(flag byte) error {
	if flag&^(flagCompressed|flagLotSeq) != 0 {
		return bip38err.WithDetails(bip38err.ErrUnsupportedFlag, map[string]string{
			"flag": fmt.Sprintf("0x%02x", flag),
		})
	}
	return nil
}
