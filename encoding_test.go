package ed25519core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const basepointEncoding = "5866666666666666666666666666666666666666666666666666666666666666"

func TestBasepointEncoding(t *testing.T) {
	b, err := new(Point).SetBytes(decodeHex(basepointEncoding))
	require.NoError(t, err)

	assert.Equal(t, 1, b.Equal(NewGeneratorPoint()))
	assert.Equal(t, decodeHex(basepointEncoding), NewGeneratorPoint().Bytes())
}

func TestEncodingRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := pointGen().Draw(t, "p")
		enc := p.Bytes()

		q, err := new(Point).SetBytes(enc)
		if err != nil {
			t.Fatalf("SetBytes(%x): %v", enc, err)
		}
		if q.Equal(p) != 1 {
			t.Fatalf("SetBytes(Bytes(P)) != P for %x", enc)
		}
		if got := q.Bytes(); string(got) != string(enc) {
			t.Fatalf("re-encoding: got %x, want %x", got, enc)
		}
	})
}

func TestSetBytesInvalidEncoding(t *testing.T) {
	// y = 2 has no x on the curve.
	enc := decodeHex("0200000000000000000000000000000000000000000000000000000000000000")

	p := NewGeneratorPoint()
	_, err := p.SetBytes(enc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPointEncoding))

	// The receiver is unchanged.
	assert.Equal(t, 1, p.Equal(NewGeneratorPoint()))
}

func TestSetBytesInvalidLength(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		_, err := new(Point).SetBytes(make([]byte, n))
		assert.True(t, errors.Is(err, ErrInvalidLength), "length %d", n)
	}
}

func TestSetBytesNonCanonical(t *testing.T) {
	// y = p + 1 is a non-canonical encoding of the identity.
	enc := decodeHex("eeffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")

	p, err := new(Point).SetBytes(enc)
	require.NoError(t, err)
	assert.Equal(t, 1, p.IsIdentity())
	assert.Equal(t, decodeHex(smallOrderEncodings[0]), p.Bytes())
}

func TestSetBytesSign(t *testing.T) {
	enc := decodeHex(basepointEncoding)
	enc[31] |= 0x80

	p, err := new(Point).SetBytes(enc)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Equal(new(Point).Negate(NewGeneratorPoint())))
	assert.Equal(t, enc, p.Bytes())
}
