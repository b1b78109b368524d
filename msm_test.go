package ed25519core

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestVarTimeMultiScalarMult(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 8, 17} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				scalars := rapid.SliceOfN(scalarGen(), n, n).Draw(t, "scalars")
				points := rapid.SliceOfN(pointGen(), n, n).Draw(t, "points")

				got, err := new(Point).VarTimeMultiScalarMult(scalars, points)
				if err != nil {
					t.Fatalf("VarTimeMultiScalarMult: %v", err)
				}

				want := NewIdentityPoint()
				for i := range scalars {
					p, err := new(Point).ScalarMult(scalars[i], points[i])
					if err != nil {
						t.Fatalf("ScalarMult: %v", err)
					}
					want.Add(want, p)
				}

				if got.Equal(want) != 1 {
					t.Fatalf("got %v, want %v", got, want)
				}
			})
		})
	}
}

func TestVarTimeMultiScalarMultMatchesEdwards25519(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(strausMinTerms, 12).Draw(t, "n")
		scalars := rapid.SliceOfN(scalarGen(), n, n).Draw(t, "scalars")
		points := rapid.SliceOfN(pointGen(), n, n).Draw(t, "points")

		es := make([]*edwards25519.Scalar, n)
		ep := make([]*edwards25519.Point, n)
		for i := range n {
			es[i] = edwardsScalar(scalars[i])
			ep[i] = points[i].ToEdwards25519()
		}

		got, err := new(Point).VarTimeMultiScalarMult(scalars, points)
		if err != nil {
			t.Fatalf("VarTimeMultiScalarMult: %v", err)
		}
		want := new(edwards25519.Point).VarTimeMultiScalarMult(es, ep).Bytes()
		if string(got.Bytes()) != string(want) {
			t.Fatalf("got %v, want %x", got, want)
		}
	})
}

func TestVarTimeMultiScalarMultSmallOrder(t *testing.T) {
	// Points outside the prime order subgroup go through the same tables.
	points := make([]*Point, len(smallOrderEncodings))
	scalars := make([][]byte, len(smallOrderEncodings))
	want := NewIdentityPoint()
	for i, s := range smallOrderEncodings {
		p, err := new(Point).SetBytes(decodeHex(s))
		require.NoError(t, err)
		points[i] = p.Add(p, NewGeneratorPoint())
		scalars[i] = scalarFromUint64(uint64(i*i + 1))

		q, err := new(Point).ScalarMult(scalars[i], points[i])
		require.NoError(t, err)
		want.Add(want, q)
	}

	got, err := new(Point).VarTimeMultiScalarMult(scalars, points)
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), got.Bytes())
}

func TestVarTimeMultiScalarMultErrors(t *testing.T) {
	b := NewGeneratorPoint()

	_, err := new(Point).VarTimeMultiScalarMult([][]byte{scalarFromUint64(1)}, []*Point{b, b})
	assert.True(t, errors.Is(err, ErrMismatchedLengths))

	_, err = new(Point).VarTimeMultiScalarMult([][]byte{make([]byte, 16)}, []*Point{b})
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestSignedRadix16(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := scalarGen().Draw(t, "s")
		digits := signedRadix16(s)

		sum := new(big.Int)
		for i := len(digits) - 1; i >= 0; i-- {
			d := digits[i]
			if d < -8 || d > 7 {
				t.Fatalf("digit %d = %d out of range", i, d)
			}
			sum.Lsh(sum, 4)
			sum.Add(sum, big.NewInt(int64(d)))
		}

		want := new(big.Int).SetBytes(reverse(append([]byte(nil), s...)))
		if sum.Cmp(want) != 0 {
			t.Fatalf("digits sum to %x, want %x", sum, want)
		}
	})
}

func BenchmarkVarTimeMultiScalarMult(b *testing.B) {
	for _, n := range []int{2, 8, 64} {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			scalars := make([][]byte, n)
			points := make([]*Point, n)
			for i := range n {
				scalars[i] = decodeHex(scalarBaseMultTests[len(scalarBaseMultTests)-1].scalar)
				points[i], _ = new(Point).ScalarBaseMult(scalarFromUint64(uint64(i + 1)))
			}
			p := new(Point)

			b.ResetTimer()
			for range b.N {
				p.VarTimeMultiScalarMult(scalars, points)
			}
		})
	}
}
