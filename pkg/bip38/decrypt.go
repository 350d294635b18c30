package bip38

import (
	"bytes"
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/qtumproject/go-bip38/internal/curve"
	"github.com/qtumproject/go-bip38/internal/encoding/base58check"
	"github.com/qtumproject/go-bip38/internal/entropy"
	"github.com/qtumproject/go-bip38/internal/hashutil"
	"github.com/qtumproject/go-bip38/internal/kdf"
	"github.com/qtumproject/go-bip38/internal/keys"
	"github.com/qtumproject/go-bip38/internal/netparams"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// Decrypt reverses Encrypt or CreateNewEncryptedWIF, returning the
// canonical WIF of the recovered private key. The payload magic selects
// the codec; the wrong passphrase fails with BadPassphrase.
func Decrypt(encryptedWIF, passphrase string, net Network) (string, error) {
	details, err := DecryptDetailed(encryptedWIF, passphrase, net)
	if err != nil {
		return "", err
	}
	return details.WIF, nil
}

// DecryptDetailed reverses Encrypt or CreateNewEncryptedWIF and returns
// the full record of the recovered key.
func DecryptDetailed(encryptedWIF, passphrase string, net Network) (*Details, error) {
	params, err := net.params()
	if err != nil {
		return nil, err
	}

	payload, err := base58check.Decode(encryptedWIF)
	if err != nil {
		return nil, err
	}
	if len(payload) != encryptedPayloadLen {
		return nil, bip38err.Wrap(bip38err.ErrInvalidLength, "encrypted wif")
	}

	normalized := kdf.NormalizePassphrase(passphrase)

	switch {
	case bytes.Equal(payload[:2], nonECPrefix):
		return decryptNoEC(payload, normalized, params)
	case bytes.Equal(payload[:2], ecPrefix):
		return decryptEC(payload, normalized, params)
	default:
		return nil, bip38err.Wrap(bip38err.ErrUnexpectedPrefix, "encrypted wif")
	}
}

// decryptNoEC recovers a key wrapped by the no-EC-multiply scheme:
// flag, addresshash[4], encrypted[32].
func decryptNoEC(payload, passphrase []byte, params *netparams.Params) (*Details, error) {
	flag := payload[2]
	if flag&flagNonEC != flagNonEC {
		return nil, bip38err.Wrap(bip38err.ErrUnsupportedFlag, "not a no-ec-multiply flag byte")
	}
	if flag&^(flagNonEC|flagCompressed) != 0 {
		return nil, bip38err.Wrap(bip38err.ErrUnsupportedFlag, "no-ec-multiply flag byte")
	}
	compressed := flag&flagCompressed != 0
	addressHash := payload[3:7]

	derivedKey, err := kdf.Strong(passphrase, addressHash, 64)
	if err != nil {
		return nil, err
	}
	derived := entropy.Hold(derivedKey)
	defer derived.Destroy()

	derivedHalf1 := derived.Bytes()[:32]
	block, err := newBlockCipher(derived.Bytes()[32:])
	if err != nil {
		return nil, err
	}

	priv := make([]byte, 0, 32)
	priv = append(priv, decryptBlock(block, payload[7:23], derivedHalf1[:16])...)
	priv = append(priv, decryptBlock(block, payload[23:39], derivedHalf1[16:])...)
	defer entropy.Zero(priv)

	scalar, err := curve.ParseScalar(priv)
	if err != nil {
		return nil, bip38err.Wrap(bip38err.ErrBadPassphrase, "recovered key out of range")
	}

	details, err := buildDetails(priv, scalar, compressed, params)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(keys.AddressHash(details.Address), addressHash) {
		return nil, bip38err.ErrBadPassphrase
	}
	return details, nil
}

// decryptEC recovers a key created through an intermediate passphrase:
// flag, addresshash[4], ownerentropy[8], encryptedpart1[8],
// encryptedpart2[16].
func decryptEC(payload, passphrase []byte, params *netparams.Params) (*Details, error) {
	flag := payload[2]
	if err := checkECFlag(flag); err != nil {
		return nil, err
	}
	compressed := flag&flagCompressed != 0
	hasLotSeq := flag&flagLotSeq != 0

	addressHash := payload[3:7]
	ownerEntropy := payload[7:15]
	encryptedPart1First8 := payload[15:23]
	encryptedPart2 := payload[23:39]

	passFactorBytes, err := passFactor(passphrase, hasLotSeq, ownerEntropy)
	if err != nil {
		return nil, err
	}
	defer entropy.Zero(passFactorBytes)

	passFactorScalar, err := curve.ParseScalar(passFactorBytes)
	if err != nil {
		return nil, bip38err.Wrap(bip38err.ErrBadPassphrase, "passfactor out of range")
	}
	passpoint := curve.BaseMult(passFactorScalar).SerializeCompressed()

	salt := make([]byte, 0, addressHashLen+ownerEntropyLen)
	salt = append(salt, addressHash...)
	salt = append(salt, ownerEntropy...)

	derivedKey, err := kdf.Light(passpoint, salt, 64)
	if err != nil {
		return nil, err
	}
	derived := entropy.Hold(derivedKey)
	defer derived.Destroy()

	derivedHalf1 := derived.Bytes()[:32]
	block, err := newBlockCipher(derived.Bytes()[32:])
	if err != nil {
		return nil, err
	}

	decryptedPart2 := decryptBlock(block, encryptedPart2, derivedHalf1[16:])

	encryptedPart1 := make([]byte, 0, 16)
	encryptedPart1 = append(encryptedPart1, encryptedPart1First8...)
	encryptedPart1 = append(encryptedPart1, decryptedPart2[:8]...)

	seed := make([]byte, 0, seedLen)
	seed = append(seed, decryptBlock(block, encryptedPart1, derivedHalf1[:16])...)
	seed = append(seed, decryptedPart2[8:]...)
	defer entropy.Zero(seed)

	factorB, err := curve.ParseScalar(hashutil.DoubleSHA256(seed))
	if err != nil {
		return nil, bip38err.Wrap(bip38err.ErrBadPassphrase, "factorb out of range")
	}

	privScalar, err := curve.MulScalars(passFactorScalar, factorB)
	if err != nil {
		return nil, bip38err.Wrap(bip38err.ErrBadPassphrase, "derived key out of range")
	}

	priv := curve.ScalarBytes(privScalar)
	defer entropy.Zero(priv)

	details, err := buildDetails(priv, privScalar, compressed, params)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(keys.AddressHash(details.Address), addressHash) {
		return nil, bip38err.ErrBadPassphrase
	}

	details.Seed = hex.EncodeToString(seed)
	if hasLotSeq {
		lot, sequence := parseLotSequence(ownerEntropy)
		details.Lot = &lot
		details.Sequence = &sequence
	}
	return details, nil
}

// buildDetails assembles the common record fields from a recovered
// private key scalar.
func buildDetails(priv []byte, scalar *secp256k1.ModNScalar, compressed bool, params *netparams.Params) (*Details, error) {
	pubBytes := curve.Serialize(curve.BaseMult(scalar), compressed)

	wif, err := keys.EncodeWIF(priv, compressed, params)
	if err != nil {
		return nil, err
	}

	address := keys.Address(pubBytes, params)
	return &Details{
		WIF:        wif,
		PrivateKey: hex.EncodeToString(priv),
		Compressed: compressed,
		PublicKey:  hex.EncodeToString(pubBytes),
		Address:    address,
		HexAddress: keys.HexAddress(pubBytes),
	}, nil
}
