package curve_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qtumproject/go-bip38/internal/curve"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// curveOrderN is the secp256k1 group order.
const curveOrderN = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

func mustScalarBytes(t *testing.T, hexStr string) []byte {
	t.Helper()
	b, err := hex.DecodeString(hexStr)
	require.NoError(t, err)
	return b
}

func TestParseScalar_RejectsZeroAndOrder(t *testing.T) {
	t.Parallel()

	_, err := curve.ParseScalar(make([]byte, 32))
	assert.ErrorIs(t, err, bip38err.ErrInvalidKeyRange)

	_, err = curve.ParseScalar(mustScalarBytes(t, curveOrderN))
	assert.ErrorIs(t, err, bip38err.ErrInvalidKeyRange)
}

func TestParseScalar_AcceptsBoundaries(t *testing.T) {
	t.Parallel()

	one := make([]byte, 32)
	one[31] = 1
	_, err := curve.ParseScalar(one)
	require.NoError(t, err)

	// n-1 is the largest valid scalar.
	nMinusOne := mustScalarBytes(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	_, err = curve.ParseScalar(nMinusOne)
	require.NoError(t, err)
}

func TestBaseMult_KnownPoints(t *testing.T) {
	t.Parallel()

	one := make([]byte, 32)
	one[31] = 1
	k, err := curve.ParseScalar(one)
	require.NoError(t, err)

	g := curve.Serialize(curve.BaseMult(k), true)
	assert.Equal(t,
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hex.EncodeToString(g),
	)

	two := make([]byte, 32)
	two[31] = 2
	k2, err := curve.ParseScalar(two)
	require.NoError(t, err)

	g2 := curve.Serialize(curve.BaseMult(k2), true)
	assert.Equal(t,
		"02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
		hex.EncodeToString(g2),
	)
}

func TestSerialize_Forms(t *testing.T) {
	t.Parallel()

	one := make([]byte, 32)
	one[31] = 1
	k, err := curve.ParseScalar(one)
	require.NoError(t, err)
	pub := curve.BaseMult(k)

	assert.Len(t, curve.Serialize(pub, true), 33)
	assert.Len(t, curve.Serialize(pub, false), 65)
	assert.Equal(t, byte(0x04), curve.Serialize(pub, false)[0])
}

func TestScalarMult_MatchesBaseMultOfProduct(t *testing.T) {
	t.Parallel()

	a := make([]byte, 32)
	a[31] = 7
	b := make([]byte, 32)
	b[31] = 11

	sa, err := curve.ParseScalar(a)
	require.NoError(t, err)
	sb, err := curve.ParseScalar(b)
	require.NoError(t, err)

	// (G*a)*b == G*(a*b mod n)
	left, err := curve.ScalarMult(curve.BaseMult(sa), sb)
	require.NoError(t, err)

	product, err := curve.MulScalars(sa, sb)
	require.NoError(t, err)
	right := curve.BaseMult(product)

	assert.Equal(t, curve.Serialize(right, true), curve.Serialize(left, true))
}

func TestParsePoint_RoundTrip(t *testing.T) {
	t.Parallel()

	one := make([]byte, 32)
	one[31] = 5
	k, err := curve.ParseScalar(one)
	require.NoError(t, err)

	compressed := curve.Serialize(curve.BaseMult(k), true)
	parsed, err := curve.ParsePoint(compressed)
	require.NoError(t, err)
	assert.Equal(t, compressed, curve.Serialize(parsed, true))
}

func TestParsePoint_Invalid(t *testing.T) {
	t.Parallel()

	_, err := curve.ParsePoint(make([]byte, 33))
	require.Error(t, err)
	assert.ErrorIs(t, err, bip38err.ErrInvalidPublicKey)
}

func TestScalarBytes_FixedWidth(t *testing.T) {
	t.Parallel()

	one := make([]byte, 32)
	one[31] = 1
	k, err := curve.ParseScalar(one)
	require.NoError(t, err)

	got := curve.ScalarBytes(k)
	assert.Len(t, got, 32)
	assert.Equal(t, one, got)
}
