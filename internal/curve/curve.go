// Package curve provides the secp256k1 operations the BIP38 codecs
// compose: scalar validation, base-point and arbitrary-point multiplies,
// scalar products modulo the group order, and point (de)serialisation.
package curve

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// ParseScalar interprets b as a big-endian scalar and rejects zero and
// values not below the group order n.
func ParseScalar(b []byte) (*secp256k1.ModNScalar, error) {
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		return nil, bip38err.ErrInvalidKeyRange
	}
	return &s, nil
}

// BaseMult computes G * k.
func BaseMult(k *secp256k1.ModNScalar) *secp256k1.PublicKey {
	return secp256k1.NewPrivateKey(k).PubKey()
}

// ScalarMult computes P * k for a public point P.
func ScalarMult(p *secp256k1.PublicKey, k *secp256k1.ModNScalar) (*secp256k1.PublicKey, error) {
	var point, result secp256k1.JacobianPoint
	p.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(k, &point, &result)
	if (result.X.IsZero() && result.Y.IsZero()) || result.Z.IsZero() {
		return nil, bip38err.ErrInvalidPublicKey
	}
	result.ToAffine()
	return secp256k1.NewPublicKey(&result.X, &result.Y), nil
}

// MulScalars returns a*b mod n, rejecting a zero product.
func MulScalars(a, b *secp256k1.ModNScalar) (*secp256k1.ModNScalar, error) {
	product := new(secp256k1.ModNScalar).Set(a)
	product.Mul(b)
	if product.IsZero() {
		return nil, bip38err.ErrInvalidKeyRange
	}
	return product, nil
}

// ParsePoint parses a compressed or uncompressed point serialisation.
func ParsePoint(b []byte) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, bip38err.Wrap(bip38err.ErrInvalidPublicKey, "parse point")
	}
	return pub, nil
}

// Serialize returns the requested serialisation of a public key:
// 33 bytes compressed or 65 bytes uncompressed.
func Serialize(pub *secp256k1.PublicKey, compressed bool) []byte {
	if compressed {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}

// ScalarBytes returns the fixed 32-byte big-endian form of k.
func ScalarBytes(k *secp256k1.ModNScalar) []byte {
	b := k.Bytes()
	return b[:]
}
