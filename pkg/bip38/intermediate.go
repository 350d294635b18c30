package bip38

import (
	"encoding/binary"

	"github.com/qtumproject/go-bip38/internal/curve"
	"github.com/qtumproject/go-bip38/internal/encoding/base58check"
	"github.com/qtumproject/go-bip38/internal/entropy"
	"github.com/qtumproject/go-bip38/internal/kdf"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// IntermediateCode builds an intermediate passphrase token from which a
// committer who never learns the passphrase can generate new encrypted
// keys. A nil opts uses a random owner salt and no lot/sequence. The
// construction is deterministic in (passphrase, salt, lot, sequence).
func IntermediateCode(passphrase string, opts *IntermediateOptions) (string, error) {
	if opts == nil {
		opts = &IntermediateOptions{}
	}

	if opts.Lot == nil && opts.Sequence != nil {
		return "", bip38err.Wrap(bip38err.ErrInvalidLot, "sequence without lot")
	}
	if opts.Lot != nil && opts.Sequence == nil {
		return "", bip38err.Wrap(bip38err.ErrInvalidSequence, "lot without sequence")
	}
	if opts.Lot != nil && *opts.Lot > maxLot {
		return "", bip38err.ErrInvalidLot
	}
	if opts.Sequence != nil && *opts.Sequence > maxSequence {
		return "", bip38err.ErrInvalidSequence
	}

	ownerSalt := opts.OwnerSalt
	if ownerSalt == nil {
		var err error
		if ownerSalt, err = entropy.RandomBytes(ownerSaltLen); err != nil {
			return "", bip38err.Wrap(bip38err.ErrEntropyUnavailable, "owner salt")
		}
	}
	if len(ownerSalt) != ownerSaltLen {
		return "", bip38err.ErrInvalidOwnerSaltLength
	}

	normalized := kdf.NormalizePassphrase(passphrase)

	var magic, ownerEntropy []byte
	if opts.Lot != nil {
		magic = intermediateMagicLotSeq
		ownerEntropy = make([]byte, ownerEntropyLen)
		copy(ownerEntropy, ownerSalt[:4])
		binary.BigEndian.PutUint32(ownerEntropy[4:], *opts.Lot*4096+*opts.Sequence)
	} else {
		magic = intermediateMagicNoLotSeq
		ownerEntropy = ownerSalt
	}

	passFactorBytes, err := passFactor(normalized, opts.Lot != nil, ownerEntropy)
	if err != nil {
		return "", err
	}
	defer entropy.Zero(passFactorBytes)

	passFactorScalar, err := curve.ParseScalar(passFactorBytes)
	if err != nil {
		return "", err
	}
	passpoint := curve.BaseMult(passFactorScalar).SerializeCompressed()

	payload := make([]byte, 0, intermediatePayloadLen)
	payload = append(payload, magic...)
	payload = append(payload, ownerEntropy...)
	payload = append(payload, passpoint...)

	return base58check.Encode(payload), nil
}
