package bip38

import (
	"bytes"
	"encoding/hex"

	"github.com/qtumproject/go-bip38/internal/curve"
	"github.com/qtumproject/go-bip38/internal/encoding/base58check"
	"github.com/qtumproject/go-bip38/internal/entropy"
	"github.com/qtumproject/go-bip38/internal/kdf"
	"github.com/qtumproject/go-bip38/internal/keys"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// ConfirmCode validates a cfrm38 confirmation code against the
// passphrase and returns the address it commits to.
func ConfirmCode(passphrase, confirmationCode string, net Network) (string, error) {
	confirmation, err := ConfirmCodeDetailed(passphrase, confirmationCode, net)
	if err != nil {
		return "", err
	}
	return confirmation.Address, nil
}

// ConfirmCodeDetailed validates a cfrm38 confirmation code and returns
// the full record: address, public key, and embedded lot/sequence.
func ConfirmCodeDetailed(passphrase, confirmationCode string, net Network) (*Confirmation, error) {
	params, err := net.params()
	if err != nil {
		return nil, err
	}

	payload, err := base58check.Decode(confirmationCode)
	if err != nil {
		return nil, err
	}
	if len(payload) != confirmPayloadLen {
		return nil, bip38err.Wrap(bip38err.ErrInvalidLength, "confirmation code")
	}
	if !bytes.Equal(payload[:5], confirmMagic) {
		return nil, bip38err.Wrap(bip38err.ErrUnexpectedPrefix, "confirmation code")
	}

	flag := payload[5]
	if err := checkECFlag(flag); err != nil {
		return nil, err
	}
	compressed := flag&flagCompressed != 0
	hasLotSeq := flag&flagLotSeq != 0

	addressHash := payload[6:10]
	ownerEntropy := payload[10:18]
	encryptedPointB := payload[18:51]

	passFactorBytes, err := passFactor(kdf.NormalizePassphrase(passphrase), hasLotSeq, ownerEntropy)
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
	derivedHalf2 := derived.Bytes()[32:]
	block, err := newBlockCipher(derivedHalf2)
	if err != nil {
		return nil, err
	}

	pointB := make([]byte, 0, passpointLen)
	pointB = append(pointB, encryptedPointB[0]^(derivedHalf2[31]&0x01))
	pointB = append(pointB, decryptBlock(block, encryptedPointB[1:17], derivedHalf1[:16])...)
	pointB = append(pointB, decryptBlock(block, encryptedPointB[17:33], derivedHalf1[16:])...)

	pointBKey, err := curve.ParsePoint(pointB)
	if err != nil {
		return nil, bip38err.Wrap(bip38err.ErrBadPassphrase, "recovered point invalid")
	}

	pub, err := curve.ScalarMult(pointBKey, passFactorScalar)
	if err != nil {
		return nil, bip38err.Wrap(bip38err.ErrBadPassphrase, "recovered point invalid")
	}
	pubBytes := curve.Serialize(pub, compressed)

	address := keys.Address(pubBytes, params)
	if !bytes.Equal(keys.AddressHash(address), addressHash) {
		return nil, bip38err.ErrBadPassphrase
	}

	confirmation := &Confirmation{
		Address:    address,
		HexAddress: keys.HexAddress(pubBytes),
		PublicKey:  hex.EncodeToString(pubBytes),
		Compressed: compressed,
	}
	if hasLotSeq {
		lot, sequence := parseLotSequence(ownerEntropy)
		confirmation.Lot = &lot
		confirmation.Sequence = &sequence
	}
	return confirmation, nil
}
