package bip38

import (
	"github.com/qtumproject/go-bip38/internal/curve"
	"github.com/qtumproject/go-bip38/internal/encoding/base58check"
	"github.com/qtumproject/go-bip38/internal/entropy"
	"github.com/qtumproject/go-bip38/internal/kdf"
	"github.com/qtumproject/go-bip38/internal/keys"
)

// Encrypt wraps the private key held in wif under passphrase using the
// no-EC-multiply scheme. The result is deterministic: the scrypt salt
// is the hash of the key's own address.
func Encrypt(wif, passphrase string, net Network) (string, error) {
	params, err := net.params()
	if err != nil {
		return "", err
	}

	priv, compressed, err := keys.DecodeWIF(wif, params)
	if err != nil {
		return "", err
	}
	defer entropy.Zero(priv)

	scalar, err := curve.ParseScalar(priv)
	if err != nil {
		return "", err
	}

	pubBytes := curve.Serialize(curve.BaseMult(scalar), compressed)
	addressHash := keys.AddressHash(keys.Address(pubBytes, params))

	derivedKey, err := kdf.Strong(kdf.NormalizePassphrase(passphrase), addressHash, 64)
	if err != nil {
		return "", err
	}
	derived := entropy.Hold(derivedKey)
	defer derived.Destroy()

	derivedHalf1 := derived.Bytes()[:32]
	block, err := newBlockCipher(derived.Bytes()[32:])
	if err != nil {
		return "", err
	}

	flag := byte(flagNonEC)
	if compressed {
		flag |= flagCompressed
	}

	payload := make([]byte, 0, encryptedPayloadLen)
	payload = append(payload, nonECPrefix...)
	payload = append(payload, flag)
	payload = append(payload, addressHash...)
	payload = append(payload, encryptBlock(block, priv[:16], derivedHalf1[:16])...)
	payload = append(payload, encryptBlock(block, priv[16:], derivedHalf1[16:])...)

	return base58check.Encode(payload), nil
}
