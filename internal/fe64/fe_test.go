package fe64

import (
	"encoding/hex"
	"math/big"
	mathrand "math/rand"
	"reflect"
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quickCheckConfig returns a quick.Config that scales the max count by the
// given factor if the -short flag is not set.
func quickCheckConfig(slowScale int) *quick.Config {
	cfg := new(quick.Config)
	if !testing.Short() {
		cfg.MaxCountScale = float64(slowScale)
	}
	return cfg
}

func generateFieldElement(rand *mathrand.Rand) Element {
	return Element{
		rand.Uint64(),
		rand.Uint64(),
		rand.Uint64(),
		rand.Uint64(),
	}
}

// generateWeirdFieldElement returns elements close to 0, p, 2p and 2^256,
// where the carry folding is exercised.
func generateWeirdFieldElement(rand *mathrand.Rand) Element {
	lows := []uint64{0, 1, 18, 19, 20, 37, 38, 1<<64 - 39, 1<<64 - 38, 1<<64 - 20, 1<<64 - 19, 1<<64 - 1}
	tops := []uint64{0, 1<<63 - 1, 1 << 63, 1<<64 - 1}
	mid := []uint64{0, 1<<64 - 1}[rand.Intn(2)]
	return Element{
		lows[rand.Intn(len(lows))],
		mid,
		mid,
		tops[rand.Intn(len(tops))],
	}
}

func (Element) Generate(rand *mathrand.Rand, size int) reflect.Value {
	if rand.Intn(2) == 0 {
		return reflect.ValueOf(generateWeirdFieldElement(rand))
	}
	return reflect.ValueOf(generateFieldElement(rand))
}

var bigP = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// toBig returns the integer represented by the limbs, not reduced modulo p.
func toBig(v *Element) *big.Int {
	n := new(big.Int)
	for i, l := range [4]uint64{v.l3, v.l2, v.l1, v.l0} {
		if i > 0 {
			n.Lsh(n, 64)
		}
		n.Add(n, new(big.Int).SetUint64(l))
	}
	return n
}

func modP(n *big.Int) *big.Int {
	return n.Mod(n, bigP)
}

func TestAdd(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for range 10 {
		x.Add(x, y)
	}

	assert.Equal(t, uint64(21), x.l0)
	assert.Equal(t, uint64(0), x.l1)
	assert.Equal(t, uint64(0), x.l2)
	assert.Equal(t, uint64(0), x.l3)
}

func TestSubtract(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for range 10 {
		x.Subtract(x, y)
	}
	x.reduce()

	assert.Equal(t, uint64(1<<64-19-19), x.l0)
	assert.Equal(t, uint64(1<<64-1), x.l1)
	assert.Equal(t, uint64(1<<64-1), x.l2)
	assert.Equal(t, uint64(1<<63-1), x.l3)
}

func TestMultiply(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for range 10 {
		x.Multiply(x, y)
	}

	assert.Equal(t, uint64(1024), x.l0)
	assert.Equal(t, uint64(0), x.l1)
	assert.Equal(t, uint64(0), x.l2)
	assert.Equal(t, uint64(0), x.l3)
}

func TestSquare(t *testing.T) {
	x := new(Element).Add(feOne, feOne)

	for range 3 {
		x.Square(x)
	}

	assert.Equal(t, uint64(256), x.l0)
	assert.Equal(t, uint64(0), x.l1)
	assert.Equal(t, uint64(0), x.l2)
	assert.Equal(t, uint64(0), x.l3)
}

func TestMultiplyDistributesOverAdd(t *testing.T) {
	multiplyDistributesOverAdd := func(x, y, z Element) bool {
		// Compute t1 = (x+y)*z
		t1 := new(Element)
		t1.Add(&x, &y)
		t1.Multiply(t1, &z)

		// Compute t2 = x*z + y*z
		t2 := new(Element)
		t3 := new(Element)
		t2.Multiply(&x, &z)
		t3.Multiply(&y, &z)
		t2.Add(t2, t3)

		return t1.Equal(t2) == 1
	}

	err := quick.Check(multiplyDistributesOverAdd, quickCheckConfig(1024))
	assert.NoError(t, err)
}

func TestArithmeticMatchesBigInt(t *testing.T) {
	arithmeticMatchesBigInt := func(x, y Element) bool {
		bx, by := toBig(&x), toBig(&y)

		sum := new(Element).Add(&x, &y)
		diff := new(Element).Subtract(&x, &y)
		prod := new(Element).Multiply(&x, &y)
		sq := new(Element).Square(&x)

		return modP(toBig(sum)).Cmp(modP(new(big.Int).Add(bx, by))) == 0 &&
			modP(toBig(diff)).Cmp(modP(new(big.Int).Sub(bx, by))) == 0 &&
			modP(toBig(prod)).Cmp(modP(new(big.Int).Mul(bx, by))) == 0 &&
			modP(toBig(sq)).Cmp(modP(new(big.Int).Mul(bx, bx))) == 0
	}

	err := quick.Check(arithmeticMatchesBigInt, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestReduce(t *testing.T) {
	reduceIsCanonical := func(x Element) bool {
		want := modP(toBig(&x))
		x.reduce()
		return toBig(&x).Cmp(want) == 0
	}

	err := quick.Check(reduceIsCanonical, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestBytesReduces(t *testing.T) {
	// 2^256 - 1 = 2p + 37 and encodes as 37.
	v := &Element{1<<64 - 1, 1<<64 - 1, 1<<64 - 1, 1<<64 - 1}

	want := make([]byte, 32)
	want[0] = 37
	assert.Equal(t, want, v.Bytes())
	assert.Equal(t, want, v.FillBytes(make([]byte, 32)))
}

func TestSetBytesInvalidLength(t *testing.T) {
	v := new(Element).One()
	got, err := v.SetBytes(make([]byte, 33))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, *feOne, *v)
}

func TestSqrtM1(t *testing.T) {
	var minusOne Element
	minusOne.Negate(feOne)

	assert.Equal(t, 1, new(Element).Square(sqrtM1).Equal(&minusOne))
}

func TestLayout(t *testing.T) {
	var v Element
	assert.EqualValues(t, Size, unsafe.Sizeof(v))
	assert.EqualValues(t, 0, unsafe.Offsetof(v.l0))
	assert.EqualValues(t, 8, unsafe.Offsetof(v.l1))
	assert.EqualValues(t, 16, unsafe.Offsetof(v.l2))
	assert.EqualValues(t, 24, unsafe.Offsetof(v.l3))
}

func TestSqrtRatio(t *testing.T) {
	// From draft-irtf-cfrg-ristretto255-decaf448-00, Appendix A.4.
	type test struct {
		u, v      string
		wasSquare int
		r         string
	}
	tests := []test{
		// If u is 0, the function is defined to return (0, TRUE), even if v
		// is zero. Note that where used in this package, the denominator v
		// is never zero.
		{
			"0000000000000000000000000000000000000000000000000000000000000000",
			"0000000000000000000000000000000000000000000000000000000000000000",
			1, "0000000000000000000000000000000000000000000000000000000000000000",
		},
		// 0/1 == 0²
		{
			"0000000000000000000000000000000000000000000000000000000000000000",
			"0100000000000000000000000000000000000000000000000000000000000000",
			1, "0000000000000000000000000000000000000000000000000000000000000000",
		},
		// If u is non-zero and v is zero, defined to return (0, FALSE).
		{
			"0100000000000000000000000000000000000000000000000000000000000000",
			"0000000000000000000000000000000000000000000000000000000000000000",
			0, "0000000000000000000000000000000000000000000000000000000000000000",
		},
		// 2/1 is not square in this field.
		{
			"0200000000000000000000000000000000000000000000000000000000000000",
			"0100000000000000000000000000000000000000000000000000000000000000",
			0, "3c5ff1b5d8e4113b871bd052f9e7bcd0582804c266ffb2d4f4203eb07fdb7c54",
		},
		// 4/1 == 2²
		{
			"0400000000000000000000000000000000000000000000000000000000000000",
			"0100000000000000000000000000000000000000000000000000000000000000",
			1, "0200000000000000000000000000000000000000000000000000000000000000",
		},
		// 1/4 == (2⁻¹)² == (2^(p-2))² per Euler's theorem
		{
			"0100000000000000000000000000000000000000000000000000000000000000",
			"0400000000000000000000000000000000000000000000000000000000000000",
			1, "f6ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff3f",
		},
	}

	for i, tt := range tests {
		u, _ := new(Element).SetBytes(decodeHex(tt.u))
		v, _ := new(Element).SetBytes(decodeHex(tt.v))
		want, _ := new(Element).SetBytes(decodeHex(tt.r))
		got, wasSquare := new(Element).SqrtRatio(u, v)
		if got.Equal(want) == 0 || wasSquare != tt.wasSquare {
			t.Errorf("%d: got (%v, %v), want (%v, %v)", i, got, wasSquare, want, tt.wasSquare)
		}
	}
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func BenchmarkAdd(b *testing.B) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	b.ResetTimer()
	for range b.N {
		x.Add(x, y)
	}
}

func BenchmarkSubtract(b *testing.B) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	b.ResetTimer()
	for range b.N {
		x.Subtract(x, y)
	}
}

func BenchmarkMultiply(b *testing.B) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	b.ResetTimer()
	for range b.N {
		x.Multiply(x, y)
	}
}

var z Element

func BenchmarkMultiplyNoAlias(b *testing.B) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	b.ResetTimer()
	for range b.N {
		z.Multiply(x, y)
	}
}

func BenchmarkMultiplyParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		x := new(Element).One()
		y := new(Element).Add(x, x)
		for pb.Next() {
			x.Multiply(x, y)
		}
	})
}

func BenchmarkSquare(b *testing.B) {
	x := new(Element).Add(feOne, feOne)

	b.ResetTimer()
	for range b.N {
		x.Square(x)
	}
}
