package fe2526

import (
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

// generateFieldElement returns a carried element with limbs anywhere in the
// balanced range.
func generateFieldElement(rand *mathrand.Rand) Element {
	var v Element
	for i := range v.l {
		half := int32(1) << (limbBits(i) - 1)
		v.l[i] = rand.Int31n(2*half) - half
	}
	return v
}

func (Element) Generate(rand *mathrand.Rand, size int) reflect.Value {
	return reflect.ValueOf(generateFieldElement(rand))
}

// isInBounds returns whether every limb is within the balanced carried bound.
func isInBounds(x *Element) bool {
	for i, l := range x.l {
		bound := int32(1)<<(limbBits(i)-1) + 1<<(limbBits(i)-7)
		if l > bound || l < -bound {
			return false
		}
	}
	return true
}

var bigP = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// toBig returns the integer represented by the signed limbs, reduced modulo p.
func toBig(v *Element) *big.Int {
	n := new(big.Int)
	var off uint
	for i, l := range v.l {
		n.Add(n, new(big.Int).Lsh(big.NewInt(int64(l)), off))
		off += limbBits(i)
	}
	return n.Mod(n, bigP)
}

func TestLimbOffsets(t *testing.T) {
	var off uint
	want := []uint{0, 26, 51, 77, 102, 128, 153, 179, 204, 230}
	for i := range 10 {
		assert.Equal(t, want[i], off, "limb %d", i)
		off += limbBits(i)
	}
	assert.Equal(t, uint(255), off)
}

func TestAdd(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for range 10 {
		x.Add(x, y)
	}

	assert.Equal(t, Element{l: [10]int32{21}}, *x)
}

func TestMultiply(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for range 10 {
		x.Multiply(x, y)
	}

	assert.Equal(t, Element{l: [10]int32{1024}}, *x)
}

func TestSquare(t *testing.T) {
	x := new(Element).Add(feOne, feOne)

	for range 3 {
		x.Square(x)
	}

	assert.Equal(t, Element{l: [10]int32{256}}, *x)
}

func TestSubtractBalancesLimbs(t *testing.T) {
	// 1 - 2 = -1 is kept as a negative low limb rather than as p - 1.
	x := new(Element).One()
	y := new(Element).Add(x, x)
	x.Subtract(x, y)

	assert.Equal(t, Element{l: [10]int32{-1}}, *x)

	want := make([]byte, 32)
	want[0] = 0xec
	for i := 1; i < 31; i++ {
		want[i] = 0xff
	}
	want[31] = 0x7f
	assert.Equal(t, want, x.Bytes())
}

func TestArithmeticMatchesBigInt(t *testing.T) {
	arithmeticMatchesBigInt := func(x, y Element) bool {
		bx, by := toBig(&x), toBig(&y)
		mod := func(n *big.Int) *big.Int { return n.Mod(n, bigP) }

		sum := new(Element).Add(&x, &y)
		diff := new(Element).Subtract(&x, &y)
		prod := new(Element).Multiply(&x, &y)
		sq := new(Element).Square(&x)
		m32 := new(Element).Mult32(&x, 121666)

		return isInBounds(sum) && isInBounds(diff) && isInBounds(prod) && isInBounds(sq) && isInBounds(m32) &&
			toBig(sum).Cmp(mod(new(big.Int).Add(bx, by))) == 0 &&
			toBig(diff).Cmp(mod(new(big.Int).Sub(bx, by))) == 0 &&
			toBig(prod).Cmp(mod(new(big.Int).Mul(bx, by))) == 0 &&
			toBig(sq).Cmp(mod(new(big.Int).Mul(bx, bx))) == 0 &&
			toBig(m32).Cmp(mod(new(big.Int).Mul(bx, big.NewInt(121666)))) == 0
	}

	err := quick.Check(arithmeticMatchesBigInt, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestBytesMatchesBigInt(t *testing.T) {
	bytesMatchesBigInt := func(x Element) bool {
		var want [32]byte
		toBig(&x).FillBytes(want[:])
		for i, j := 0, 31; i < j; i, j = i+1, j-1 {
			want[i], want[j] = want[j], want[i]
		}
		return reflect.DeepEqual(want[:], x.Bytes())
	}

	err := quick.Check(bytesMatchesBigInt, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestSetBytesRoundTrip(t *testing.T) {
	f := func(in [32]byte, fe Element) bool {
		fe.SetBytes(in[:])

		in[len(in)-1] &= (1 << 7) - 1

		return reflect.DeepEqual(in[:], fe.Bytes()) && isInBounds(&fe)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Errorf("failed bytes->FE->bytes round-trip: %v", err)
	}
}

func TestBytesReduces(t *testing.T) {
	for k := range 19 {
		// p + k is accepted by SetBytes and encodes as k.
		in := make([]byte, 32)
		in[0] = 0xed + byte(k)
		for i := 1; i < 31; i++ {
			in[i] = 0xff
		}
		in[31] = 0x7f

		v, err := new(Element).SetBytes(in)
		require.NoError(t, err)

		want := make([]byte, 32)
		want[0] = byte(k)
		assert.Equal(t, want, v.Bytes(), "p + %d", k)
	}
}

func TestSetBytesInvalidLength(t *testing.T) {
	v := new(Element).One()
	got, err := v.SetBytes(nil)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, *feOne, *v)
}

func TestSelectSwap(t *testing.T) {
	a := generateFieldElement(mathrand.New(mathrand.NewSource(1)))
	b := generateFieldElement(mathrand.New(mathrand.NewSource(2)))

	var c, d Element
	c.Select(&a, &b, 1)
	d.Select(&a, &b, 0)
	assert.Equal(t, a, c)
	assert.Equal(t, b, d)

	c.Swap(&d, 0)
	assert.Equal(t, a, c)
	assert.Equal(t, b, d)

	c.Swap(&d, 1)
	assert.Equal(t, b, c)
	assert.Equal(t, a, d)
}

func TestSqrtM1(t *testing.T) {
	var minusOne Element
	minusOne.Negate(feOne)

	assert.True(t, isInBounds(sqrtM1))
	assert.Equal(t, 1, new(Element).Square(sqrtM1).Equal(&minusOne))
}

func TestInvert(t *testing.T) {
	invertIsInverse := func(x Element) bool {
		var xinv, r Element
		xinv.Invert(&x)
		r.Multiply(&x, &xinv)
		return x.IsZero() == 1 || r.Equal(feOne) == 1
	}

	err := quick.Check(invertIsInverse, quickCheckConfig(4))
	assert.NoError(t, err)
}

func TestLayout(t *testing.T) {
	var v Element
	assert.EqualValues(t, Size, unsafe.Sizeof(v))
	for i := range v.l {
		assert.EqualValues(t, 4*i, uintptr(unsafe.Pointer(&v.l[i]))-uintptr(unsafe.Pointer(&v)), "limb %d", i)
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

func BenchmarkSquare(b *testing.B) {
	x := new(Element).Add(feOne, feOne)

	b.ResetTimer()
	for range b.N {
		x.Square(x)
	}
}
