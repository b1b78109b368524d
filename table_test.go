package ed25519core

import (
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	ffield "filippo.io/edwards25519/field"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGenerateBasepointTable(t *testing.T) {
	got := GenerateBasepointTable()
	if diff := cmp.Diff(&basepointOddMultiplesBytes, got); diff != "" {
		t.Errorf("table_generated.go is stale, run go generate (-want +got):\n%s", diff)
	}
}

func TestBasepointTableMatchesEdwards25519(t *testing.T) {
	d2, err := new(ffield.Element).SetBytes(_2d.Bytes())
	require.NoError(t, err)

	table := BasepointTable()
	require.Len(t, table, BasepointTableSize)

	for i, e := range table {
		p := new(edwards25519.Point).ScalarBaseMult(edwardsScalar(scalarFromUint64(uint64(2*i + 1))))
		X, Y, Z, _ := p.ExtendedCoordinates()

		var zInv, x, y, yMinusX, yPlusX, t2d ffield.Element
		zInv.Invert(Z)
		x.Multiply(X, &zInv)
		y.Multiply(Y, &zInv)
		yMinusX.Subtract(&y, &x)
		yPlusX.Add(&y, &x)
		t2d.Multiply(&x, &y)
		t2d.Multiply(&t2d, d2)

		assert.Equal(t, yMinusX.Bytes(), e.YMinusX.Bytes(), "[%d]B y-x", 2*i+1)
		assert.Equal(t, yPlusX.Bytes(), e.YPlusX.Bytes(), "[%d]B y+x", 2*i+1)
		assert.Equal(t, t2d.Bytes(), e.T2d.Bytes(), "[%d]B 2dxy", 2*i+1)
	}
}

func TestBasepointTableIsCopy(t *testing.T) {
	table := BasepointTable()
	table[0].YMinusX.Zero()

	assert.Equal(t, basepointOddMultiplesBytes[0][0][:], BasepointTable()[0].YMinusX.Bytes())
}

func TestLookupBasepoint(t *testing.T) {
	b := NewGeneratorPoint()
	var pp precomputedPoint
	var r partialPoint

	for _, d := range []int32{1, -1, 3, -3, 127, -127, 255, -255} {
		want, err := new(Point).ScalarBaseMult(scalarFromUint64(uint64(max(d, -d))))
		require.NoError(t, err)
		if d < 0 {
			want.Negate(want)
		}

		// [d]B = 0 + [d]B
		got := new(Point).fromPartial(r.addPrecomputed(NewIdentityPoint(), pp.lookupBasepoint(d)))
		assert.Equal(t, 1, got.Equal(want), "d = %d", d)

		// B - [d]B
		got.fromPartial(r.subPrecomputed(b, pp.lookupBasepoint(d)))
		assert.Equal(t, 1, got.Equal(new(Point).Subtract(b, want)), "d = %d", d)
	}
}

func TestBasepointDigits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s [32]byte
		copy(s[:], scalarGen().Draw(t, "s"))
		s[0] |= 1

		digits := basepointDigits(&s)

		// The implicit top digit is 1.
		sum := new(big.Int).Lsh(big.NewInt(1), 256)
		for i := 31; i >= 0; i-- {
			d := digits[i]
			if d%2 == 0 || d > 255 || d < -255 {
				t.Fatalf("digit %d = %d is not odd in -255..255", i, d)
			}
			sum.Add(sum, new(big.Int).Lsh(big.NewInt(int64(d)), uint(8*i)))
		}

		want := new(big.Int).SetBytes(reverse(s[:]))
		if sum.Cmp(want) != 0 {
			t.Fatalf("digits sum to %x, want %x", sum, want)
		}
	})
}
