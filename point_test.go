package ed25519core

import (
	"fmt"
	"testing"
	"unsafe"

	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/ed25519core/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func (v *Point) String() string {
	return fmt.Sprintf("%x", v.Bytes())
}

// smallOrderEncodings are the 8 points of order dividing 8.
var smallOrderEncodings = []string{
	"0100000000000000000000000000000000000000000000000000000000000000",
	"ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
	"0000000000000000000000000000000000000000000000000000000000000000",
	"0000000000000000000000000000000000000000000000000000000000000080",
	"26e8958fc2b227b045c3f489f2ef98f0d5dfac05d3c63339b13802886d53fc05",
	"26e8958fc2b227b045c3f489f2ef98f0d5dfac05d3c63339b13802886d53fc85",
	"c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac037a",
	"c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac03fa",
}

func TestGenerator(t *testing.T) {
	b := NewGeneratorPoint()
	assert.Equal(t, edwards25519.NewGeneratorPoint().Bytes(), b.Bytes())
	assert.Equal(t, 1, b.z.Equal(_1))

	var xy field.Element
	xy.Multiply(&b.x, &b.y)
	assert.Equal(t, xy.Bytes(), b.t.Bytes())
}

func TestIdentity(t *testing.T) {
	i := NewIdentityPoint()
	assert.Equal(t, 1, i.IsIdentity())
	assert.Equal(t, decodeHex(smallOrderEncodings[0]), i.Bytes())
	assert.Equal(t, 0, NewGeneratorPoint().IsIdentity())
}

func TestGroupLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := pointGen().Draw(t, "p")
		q := pointGen().Draw(t, "q")
		id := NewIdentityPoint()

		// P + 0 = P
		if new(Point).Add(p, id).Equal(p) != 1 {
			t.Fatalf("P + 0 != P")
		}
		// P - P = 0
		if new(Point).Subtract(p, p).IsIdentity() != 1 {
			t.Fatalf("P - P != 0")
		}
		// 2P = P + P
		if new(Point).Double(p).Equal(new(Point).Add(p, p)) != 1 {
			t.Fatalf("2P != P + P")
		}
		// P + Q = Q + P
		if new(Point).Add(p, q).Equal(new(Point).Add(q, p)) != 1 {
			t.Fatalf("P + Q != Q + P")
		}
		// (P + Q) - Q = P
		r := new(Point).Add(p, q)
		if r.Subtract(r, q).Equal(p) != 1 {
			t.Fatalf("(P + Q) - Q != P")
		}
		// P - Q = P + (-Q)
		if new(Point).Subtract(p, q).Equal(new(Point).Add(p, new(Point).Negate(q))) != 1 {
			t.Fatalf("P - Q != P + (-Q)")
		}
	})
}

func TestGroupLawMatchesEdwards25519(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := pointGen().Draw(t, "p")
		q := pointGen().Draw(t, "q")
		ep, eq := p.ToEdwards25519(), q.ToEdwards25519()

		if got, want := new(Point).Add(p, q).Bytes(), new(edwards25519.Point).Add(ep, eq).Bytes(); string(got) != string(want) {
			t.Fatalf("Add: got %x, want %x", got, want)
		}
		if got, want := new(Point).Subtract(p, q).Bytes(), new(edwards25519.Point).Subtract(ep, eq).Bytes(); string(got) != string(want) {
			t.Fatalf("Subtract: got %x, want %x", got, want)
		}
		if got, want := new(Point).Double(p).Bytes(), new(edwards25519.Point).Add(ep, ep).Bytes(); string(got) != string(want) {
			t.Fatalf("Double: got %x, want %x", got, want)
		}
		if got, want := new(Point).MultByCofactor(p).Bytes(), new(edwards25519.Point).MultByCofactor(ep).Bytes(); string(got) != string(want) {
			t.Fatalf("MultByCofactor: got %x, want %x", got, want)
		}
		if got, want := new(Point).Negate(p).Bytes(), new(edwards25519.Point).Negate(ep).Bytes(); string(got) != string(want) {
			t.Fatalf("Negate: got %x, want %x", got, want)
		}
	})
}

func TestAddAlias(t *testing.T) {
	b := NewGeneratorPoint()
	b3, err := new(Point).ScalarBaseMult(scalarFromUint64(3))
	require.NoError(t, err)

	p := NewGeneratorPoint()
	p.Add(p, p)
	p.Add(p, b)
	assert.Equal(t, b3.Bytes(), p.Bytes())

	p.Subtract(p, p)
	assert.Equal(t, 1, p.IsIdentity())
}

func TestDoubleN(t *testing.T) {
	b := NewGeneratorPoint()
	for n := range 10 {
		want, err := new(Point).ScalarBaseMult(scalarFromUint64(1 << n))
		require.NoError(t, err)
		assert.Equal(t, want.Bytes(), new(Point).DoubleN(b, n).Bytes(), "n = %d", n)
	}
}

func TestEqual(t *testing.T) {
	b := NewGeneratorPoint()

	// Same point, different Z.
	var two field.Element
	two.Add(_1, _1)
	var scaled Point
	scaled.x.Multiply(&b.x, &two)
	scaled.y.Multiply(&b.y, &two)
	scaled.t.Multiply(&b.t, &two)
	scaled.z.Multiply(&b.z, &two)

	assert.Equal(t, 1, b.Equal(&scaled))
	assert.Equal(t, 0, b.Equal(NewIdentityPoint()))
	assert.Equal(t, 0, b.Equal(new(Point).Negate(b)))
}

func TestEqualNegated(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := pointGen().Draw(t, "p")
		if p.EqualNegated(new(Point).Negate(p)) != 1 {
			t.Fatalf("EqualNegated(P, -P) = 0")
		}
	})

	b := NewGeneratorPoint()
	b3, err := new(Point).ScalarBaseMult(scalarFromUint64(3))
	require.NoError(t, err)
	assert.Equal(t, 0, b.EqualNegated(b3))
}

func TestIsSmallOrder(t *testing.T) {
	for _, s := range smallOrderEncodings {
		p, err := new(Point).SetBytes(decodeHex(s))
		require.NoError(t, err, s)
		assert.Equal(t, 1, p.IsSmallOrder(), s)

		// Adding a small order point to a point of prime order gives a
		// point that is not of small order.
		p.Add(p, NewGeneratorPoint())
		assert.Equal(t, 0, p.IsSmallOrder(), s)
	}
	assert.Equal(t, 0, NewGeneratorPoint().IsSmallOrder())
}

func TestExtendedCoordinates(t *testing.T) {
	b := NewGeneratorPoint()
	X, Y, Z, T := b.ExtendedCoordinates()

	p, err := new(Point).SetExtendedCoordinates(X, Y, Z, T)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Equal(b))

	var zero field.Element
	q, err := new(Point).SetExtendedCoordinates(X, Y, &zero, T)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
	assert.Nil(t, q)

	q, err = new(Point).SetExtendedCoordinates(X, Y, Z, X)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
	assert.Nil(t, q)
}

func TestEdwards25519RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := pointGen().Draw(t, "p")
		if new(Point).FromEdwards25519(p.ToEdwards25519()).Equal(p) != 1 {
			t.Fatalf("round trip through edwards25519 changed %v", p)
		}
	})
}

func TestPointLayout(t *testing.T) {
	var p Point
	size := unsafe.Sizeof(field.Element{})

	assert.Equal(t, 0*size, unsafe.Offsetof(p.x))
	assert.Equal(t, 1*size, unsafe.Offsetof(p.y))
	assert.Equal(t, 2*size, unsafe.Offsetof(p.t))
	assert.Equal(t, 3*size, unsafe.Offsetof(p.z))
	assert.Equal(t, 4*size, unsafe.Sizeof(p))

	var pp precomputedPoint
	assert.Equal(t, 0*size, unsafe.Offsetof(pp.yMinusX))
	assert.Equal(t, 1*size, unsafe.Offsetof(pp.yPlusX))
	assert.Equal(t, 2*size, unsafe.Offsetof(pp.t2d))
}

func BenchmarkAdd(b *testing.B) {
	p := NewGeneratorPoint()
	q := new(Point).Double(p)

	b.ResetTimer()
	for range b.N {
		p.Add(p, q)
	}
}

func BenchmarkDouble(b *testing.B) {
	p := NewGeneratorPoint()

	b.ResetTimer()
	for range b.N {
		p.Double(p)
	}
}

func BenchmarkBytes(b *testing.B) {
	p := NewGeneratorPoint()

	b.ResetTimer()
	for range b.N {
		p.Bytes()
	}
}

func BenchmarkSetBytes(b *testing.B) {
	p := NewGeneratorPoint()
	buf := p.Bytes()

	b.ResetTimer()
	for range b.N {
		p.SetBytes(buf)
	}
}
