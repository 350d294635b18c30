package bip38

import (
	"crypto/cipher"
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/qtumproject/go-bip38/internal/curve"
	"github.com/qtumproject/go-bip38/internal/encoding/base58check"
	"github.com/qtumproject/go-bip38/internal/entropy"
	"github.com/qtumproject/go-bip38/internal/hashutil"
	"github.com/qtumproject/go-bip38/internal/kdf"
	"github.com/qtumproject/go-bip38/internal/keys"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// CreateNewEncryptedWIF generates a brand-new encrypted key pair from
// an intermediate passphrase token. The committer never learns the
// private key; the passphrase holder decrypts it later. A nil seed is
// replaced by 24 random bytes; any other length is rejected.
func CreateNewEncryptedWIF(intermediatePassphrase string, compressed bool, seed []byte, net Network) (*NewEncryptedWIF, error) {
	params, err := net.params()
	if err != nil {
		return nil, err
	}

	payload, err := base58check.Decode(intermediatePassphrase)
	if err != nil {
		return nil, err
	}
	ownerEntropy, passpointBytes, hasLotSeq, err := parseIntermediate(payload)
	if err != nil {
		return nil, err
	}

	passpoint, err := curve.ParsePoint(passpointBytes)
	if err != nil {
		return nil, err
	}

	if seed == nil {
		if seed, err = entropy.RandomBytes(seedLen); err != nil {
			return nil, bip38err.Wrap(bip38err.ErrEntropyUnavailable, "seed")
		}
	}
	if len(seed) != seedLen {
		return nil, bip38err.ErrInvalidSeedLength
	}

	factorB, err := curve.ParseScalar(hashutil.DoubleSHA256(seed))
	if err != nil {
		return nil, err
	}

	pub, err := curve.ScalarMult(passpoint, factorB)
	if err != nil {
		return nil, err
	}
	pubBytes := curve.Serialize(pub, compressed)

	address := keys.Address(pubBytes, params)
	addressHash := keys.AddressHash(address)

	salt := make([]byte, 0, addressHashLen+ownerEntropyLen)
	salt = append(salt, addressHash...)
	salt = append(salt, ownerEntropy...)

	derivedKey, err := kdf.Light(passpointBytes, salt, 64)
	if err != nil {
		return nil, err
	}
	derived := entropy.Hold(derivedKey)
	defer derived.Destroy()

	derivedHalf1 := derived.Bytes()[:32]
	derivedHalf2 := derived.Bytes()[32:]
	block, err := newBlockCipher(derivedHalf2)
	if err != nil {
		return nil, err
	}

	encryptedPart1 := encryptBlock(block, seed[:16], derivedHalf1[:16])

	part2Plain := make([]byte, 0, 16)
	part2Plain = append(part2Plain, encryptedPart1[8:]...)
	part2Plain = append(part2Plain, seed[16:]...)
	encryptedPart2 := encryptBlock(block, part2Plain, derivedHalf1[16:])

	flag := byte(0)
	if compressed {
		flag |= flagCompressed
	}
	if hasLotSeq {
		flag |= flagLotSeq
	}

	wifPayload := make([]byte, 0, encryptedPayloadLen)
	wifPayload = append(wifPayload, ecPrefix...)
	wifPayload = append(wifPayload, flag)
	wifPayload = append(wifPayload, addressHash...)
	wifPayload = append(wifPayload, ownerEntropy...)
	wifPayload = append(wifPayload, encryptedPart1[:8]...)
	wifPayload = append(wifPayload, encryptedPart2...)

	confirmationCode := buildConfirmationCode(flag, addressHash, ownerEntropy, factorB, block, derivedHalf1, derivedHalf2)

	return &NewEncryptedWIF{
		EncryptedWIF:     base58check.Encode(wifPayload),
		ConfirmationCode: confirmationCode,
		PublicKey:        hex.EncodeToString(pubBytes),
		Seed:             hex.EncodeToString(seed),
		Compressed:       compressed,
		Address:          address,
		HexAddress:       keys.HexAddress(pubBytes),
	}, nil
}

// buildConfirmationCode encrypts pointb = G * factorb under the same
// derived key so the passphrase holder can verify the generated address
// without the private key.
func buildConfirmationCode(flag byte, addressHash, ownerEntropy []byte, factorB *secp256k1.ModNScalar, block cipher.Block, derivedHalf1, derivedHalf2 []byte) string {
	pointB := curve.BaseMult(factorB).SerializeCompressed()

	prefix := pointB[0] ^ (derivedHalf2[31] & 0x01)
	pointBx1 := encryptBlock(block, pointB[1:17], derivedHalf1[:16])
	pointBx2 := encryptBlock(block, pointB[17:33], derivedHalf1[16:])

	payload := make([]byte, 0, confirmPayloadLen)
	payload = append(payload, confirmMagic...)
	payload = append(payload, flag)
	payload = append(payload, addressHash...)
	payload = append(payload, ownerEntropy...)
	payload = append(payload, prefix)
	payload = append(payload, pointBx1...)
	payload = append(payload, pointBx2...)

	return base58check.Encode(payload)
}
