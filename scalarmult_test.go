package ed25519core

import (
	"errors"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var scalarBaseMultTests = []struct {
	name   string
	scalar string
	want   string
}{
	{
		name:   "zero",
		scalar: "0000000000000000000000000000000000000000000000000000000000000000",
		want:   "0100000000000000000000000000000000000000000000000000000000000000",
	},
	{
		name:   "one",
		scalar: "0100000000000000000000000000000000000000000000000000000000000000",
		want:   basepointEncoding,
	},
	{
		name:   "two",
		scalar: "0200000000000000000000000000000000000000000000000000000000000000",
		want:   "c9a3f86aae465f0e56513864510f3997561fa2c9e85ea21dc2292309f3cd6022",
	},
	{
		name:   "255",
		scalar: "ff00000000000000000000000000000000000000000000000000000000000000",
		want:   "cc613540cd8c99fa4647e6e83e969761b17515dbe1896fd0a3e4358ebca65c31",
	},
	{
		name:   "group order",
		scalar: "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010",
		want:   "0100000000000000000000000000000000000000000000000000000000000000",
	},
	{
		name:   "all ones",
		scalar: "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		want:   "db27fe4b7a4beb8c1b8c38a21e943a852304c9bb3035a5f36626b51162a68f9c",
	},
	{
		name:   "random",
		scalar: "38b4e652e44da7f2370d9e260e27136550a4a3a6d07f5c0c332f8b1224083fd2",
		want:   "9713b8d72eb33655b6100dca0714b12a26ee31a4624dc4123ae6dc7812a49fcf",
	},
}

func TestScalarBaseMultVectors(t *testing.T) {
	for _, tc := range scalarBaseMultTests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := new(Point).ScalarBaseMult(decodeHex(tc.scalar))
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

func TestScalarMultVectors(t *testing.T) {
	b := NewGeneratorPoint()
	for _, tc := range scalarBaseMultTests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := new(Point).ScalarMult(decodeHex(tc.scalar), b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

func TestScalarBaseMultMatchesEdwards25519(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := scalarGen().Draw(t, "s")

		p, err := new(Point).ScalarBaseMult(s)
		if err != nil {
			t.Fatalf("ScalarBaseMult: %v", err)
		}
		want := new(edwards25519.Point).ScalarBaseMult(edwardsScalar(s)).Bytes()
		if got := p.Bytes(); string(got) != string(want) {
			t.Fatalf("got %x, want %x", got, want)
		}
	})
}

func TestScalarMultMatchesEdwards25519(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := scalarGen().Draw(t, "s")
		q := pointGen().Draw(t, "q")

		p, err := new(Point).ScalarMult(s, q)
		if err != nil {
			t.Fatalf("ScalarMult: %v", err)
		}
		want := new(edwards25519.Point).ScalarMult(edwardsScalar(s), q.ToEdwards25519()).Bytes()
		if got := p.Bytes(); string(got) != string(want) {
			t.Fatalf("got %x, want %x", got, want)
		}
	})
}

func TestScalarMultSmallScalars(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := pointGen().Draw(t, "p")

		// [0]P = 0
		r, err := new(Point).ScalarMult(scalarFromUint64(0), p)
		if err != nil || r.IsIdentity() != 1 {
			t.Fatalf("[0]P != 0")
		}
		// [1]P = P
		r, err = new(Point).ScalarMult(scalarFromUint64(1), p)
		if err != nil || r.Equal(p) != 1 {
			t.Fatalf("[1]P != P")
		}
		// [2]P = P + P
		r, err = new(Point).ScalarMult(scalarFromUint64(2), p)
		if err != nil || r.Equal(new(Point).Add(p, p)) != 1 {
			t.Fatalf("[2]P != P + P")
		}
	})
}

func TestScalarMultAlias(t *testing.T) {
	p := NewGeneratorPoint()
	_, err := p.ScalarMult(scalarFromUint64(3), p)
	require.NoError(t, err)

	want, err := new(Point).ScalarBaseMult(scalarFromUint64(3))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Equal(want))
}

func TestScalarBaseMultLinearity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Uint64().Draw(t, "a")
		b := rapid.Uint64().Draw(t, "b")

		pa, _ := new(Point).ScalarBaseMult(scalarFromUint64(a))
		pb, _ := new(Point).ScalarBaseMult(scalarFromUint64(b))

		sum := new(big.Int).Add(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		pab, _ := new(Point).ScalarBaseMult(scalarFromBigInt(sum))

		if pab.Equal(new(Point).Add(pa, pb)) != 1 {
			t.Fatalf("[a+b]B != [a]B + [b]B")
		}
	})
}

func TestVarTimeDoubleScalarBaseMult(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := scalarGen().Draw(t, "a")
		b := scalarGen().Draw(t, "b")
		A := pointGen().Draw(t, "A")

		p, err := new(Point).VarTimeDoubleScalarBaseMult(a, A, b)
		if err != nil {
			t.Fatalf("VarTimeDoubleScalarBaseMult: %v", err)
		}
		want := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(edwardsScalar(a), A.ToEdwards25519(), edwardsScalar(b)).Bytes()
		if got := p.Bytes(); string(got) != string(want) {
			t.Fatalf("got %x, want %x", got, want)
		}
	})
}

func TestScalarMultInvalidLength(t *testing.T) {
	b := NewGeneratorPoint()

	_, err := new(Point).ScalarBaseMult(make([]byte, 31))
	assert.True(t, errors.Is(err, ErrInvalidLength))

	_, err = new(Point).ScalarMult(make([]byte, 33), b)
	assert.True(t, errors.Is(err, ErrInvalidLength))

	_, err = new(Point).VarTimeDoubleScalarBaseMult(make([]byte, 32), b, nil)
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func BenchmarkScalarBaseMult(b *testing.B) {
	s := decodeHex(scalarBaseMultTests[len(scalarBaseMultTests)-1].scalar)
	p := new(Point)

	b.ResetTimer()
	for range b.N {
		p.ScalarBaseMult(s)
	}
}

func BenchmarkScalarMult(b *testing.B) {
	s := decodeHex(scalarBaseMultTests[len(scalarBaseMultTests)-1].scalar)
	p := NewGeneratorPoint()

	b.ResetTimer()
	for range b.N {
		p.ScalarMult(s, p)
	}
}
