package keys

import (
	"encoding/hex"

	"github.com/qtumproject/go-bip38/internal/encoding/base58check"
	"github.com/qtumproject/go-bip38/internal/hashutil"
	"github.com/qtumproject/go-bip38/internal/netparams"
)

// Address derives the base58 P2PKH address for serialised public-key
// bytes (compressed or uncompressed, as the caller chose). This is the
// canonical form used for addresshash integrity checks.
func Address(pubKeyBytes []byte, params *netparams.Params) string {
	payload := make([]byte, 0, 21)
	payload = append(payload, params.P2PKHVersion)
	payload = append(payload, hashutil.Hash160(pubKeyBytes)...)
	return base58check.Encode(payload)
}

// AddressHash returns the four-byte double-SHA256 of the ASCII address
// string. It serves as the per-key salt and integrity check in the
// BIP38 payloads.
func AddressHash(address string) []byte {
	return hashutil.Checksum4([]byte(address))
}

// HexAddress derives the EVM-format rendering of the same key: the
// 20-byte HASH160 as checksummed hex. Qtum exposes this form on its
// EVM side; it never participates in addresshash computation.
func HexAddress(pubKeyBytes []byte) string {
	return toChecksumHex(hashutil.Hash160(pubKeyBytes))
}

// checksumChar applies the keccak-based checksum to a single hex
// character, uppercasing it when the matching hash nibble is >= 8.
func checksumChar(c, hashByte byte, isOddPosition bool) byte {
	if c >= '0' && c <= '9' {
		return c
	}

	nibble := hashByte >> 4
	if isOddPosition {
		nibble = hashByte & 0x0F
	}

	if nibble >= 8 {
		return c - 32 // Uppercase
	}
	return c
}

// toChecksumHex converts a 20-byte hash to its 0x-prefixed checksummed
// hex string.
func toChecksumHex(addr []byte) string {
	addrHex := hex.EncodeToString(addr)
	hashBytes := hashutil.Keccak256([]byte(addrHex))

	result := make([]byte, len(addrHex))
	for i := 0; i < len(addrHex); i++ {
		result[i] = checksumChar(addrHex[i], hashBytes[i/2], i%2 == 1)
	}

	return "0x" + string(result)
}
