package ed25519core

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// groupOrder is the prime order L of the base point.
var groupOrder, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

func scalarFromUint64(n uint64) []byte {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return buf[:]
}

func scalarFromBigInt(n *big.Int) []byte {
	return bigIntBytes(n, 256)
}

// edwardsScalar returns the 32-byte little-endian scalar x reduced modulo the
// group order as an [edwards25519.Scalar].
func edwardsScalar(x []byte) *edwards25519.Scalar {
	var buf [64]byte
	copy(buf[:], x)

	xs, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return xs
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// scalarGen draws arbitrary unreduced 256-bit scalars, biased towards the
// all-zero and all-one edges.
func scalarGen() *rapid.Generator[[]byte] {
	return rapid.OneOf(
		rapid.SliceOfN(rapid.Byte(), 32, 32),
		rapid.SampledFrom([][]byte{
			make([]byte, 32),
			scalarFromUint64(1),
			scalarFromUint64(2),
			decodeHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
			decodeHex("feffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		}),
	)
}

// pointGen draws multiples of the base point.
func pointGen() *rapid.Generator[*Point] {
	return rapid.Custom(func(t *rapid.T) *Point {
		s := scalarGen().Draw(t, "pointScalar")
		p, err := new(Point).ScalarBaseMult(s)
		if err != nil {
			t.Fatalf("ScalarBaseMult: %v", err)
		}
		return p
	})
}

func TestFieldElementFromString(t *testing.T) {
	assert.Equal(t, _1.Bytes(), fieldElementFromString("1").Bytes())
	assert.Panics(t, func() { fieldElementFromString("x") })
}

func TestBigIntBytes(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(1), 255)
	assert.Panics(t, func() { bigIntBytes(n, 255) })
	assert.Panics(t, func() { bigIntBytes(big.NewInt(-1), 255) })

	b := bigIntBytes(n, 256)
	require.Len(t, b, 32)
	assert.Equal(t, byte(0x80), b[31])
	assert.Equal(t, byte(0), b[0])
}
