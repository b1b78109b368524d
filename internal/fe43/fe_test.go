package fe43

import (
	"math/big"
	"math/bits"
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
		l0: rand.Uint64() & maskLow43Bits,
		l1: rand.Uint64() & maskLow43Bits,
		l2: rand.Uint64() & maskLow43Bits,
		l3: rand.Uint64() & maskLow43Bits,
		l4: rand.Uint64() & maskLow43Bits,
		l5: rand.Uint64() & maskLow40Bits,
	}
}

// generateWeirdFieldElement returns elements with limbs at the edges of the
// carried bound.
func generateWeirdFieldElement(rand *mathrand.Rand) Element {
	weirdLimbs43 := []uint64{0, 1, 19, 1<<43 - 1, 1 << 43, 1<<43 + 1<<12}
	weirdLimbs40 := []uint64{0, 1, 1<<40 - 1, 1 << 40, 1<<40 + 1<<12}
	return Element{
		l0: weirdLimbs43[rand.Intn(len(weirdLimbs43))],
		l1: weirdLimbs43[rand.Intn(len(weirdLimbs43))],
		l2: weirdLimbs43[rand.Intn(len(weirdLimbs43))],
		l3: weirdLimbs43[rand.Intn(len(weirdLimbs43))],
		l4: weirdLimbs43[rand.Intn(len(weirdLimbs43))],
		l5: weirdLimbs40[rand.Intn(len(weirdLimbs40))],
	}
}

func (Element) Generate(rand *mathrand.Rand, size int) reflect.Value {
	if rand.Intn(2) == 0 {
		return reflect.ValueOf(generateWeirdFieldElement(rand))
	}
	return reflect.ValueOf(generateFieldElement(rand))
}

// isInBounds returns whether the element is within the expected bit size bounds.
func isInBounds(x *Element) bool {
	return bits.Len64(x.l0) <= 44 &&
		bits.Len64(x.l1) <= 44 &&
		bits.Len64(x.l2) <= 44 &&
		bits.Len64(x.l3) <= 44 &&
		bits.Len64(x.l4) <= 44 &&
		bits.Len64(x.l5) <= 41
}

var bigP = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// toBig returns the integer represented by the limbs, reduced modulo p.
func toBig(v *Element) *big.Int {
	n := new(big.Int)
	var off uint
	for i, l := range v.limbs() {
		n.Add(n, new(big.Int).Lsh(new(big.Int).SetUint64(l), off))
		off += limbBits(i)
	}
	return n.Mod(n, bigP)
}

func TestAdd(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for range 10 {
		x.Add(x, y)
	}

	assert.Equal(t, Element{l0: 21}, *x)
}

func TestSubtract(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for range 10 {
		x.Subtract(x, y)
	}
	x.reduce()

	assert.Equal(t, Element{
		l0: 1<<43 - 38,
		l1: 1<<43 - 1,
		l2: 1<<43 - 1,
		l3: 1<<43 - 1,
		l4: 1<<43 - 1,
		l5: 1<<40 - 1,
	}, *x)
}

func TestMultiply(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for range 10 {
		x.Multiply(x, y)
	}

	assert.Equal(t, Element{l0: 1024}, *x)
}

func TestSquare(t *testing.T) {
	x := new(Element).Add(feOne, feOne)

	for range 3 {
		x.Square(x)
	}

	assert.Equal(t, Element{l0: 256}, *x)
}

func TestArithmeticMatchesBigInt(t *testing.T) {
	arithmeticMatchesBigInt := func(x, y Element) bool {
		bx, by := toBig(&x), toBig(&y)
		mod := func(n *big.Int) *big.Int { return n.Mod(n, bigP) }

		sum := new(Element).Add(&x, &y)
		diff := new(Element).Subtract(&x, &y)
		prod := new(Element).Multiply(&x, &y)
		sq := new(Element).Square(&x)
		m32 := new(Element).Mult32(&x, 1<<32-1)

		return isInBounds(sum) && isInBounds(diff) && isInBounds(prod) && isInBounds(sq) && isInBounds(m32) &&
			toBig(sum).Cmp(mod(new(big.Int).Add(bx, by))) == 0 &&
			toBig(diff).Cmp(mod(new(big.Int).Sub(bx, by))) == 0 &&
			toBig(prod).Cmp(mod(new(big.Int).Mul(bx, by))) == 0 &&
			toBig(sq).Cmp(mod(new(big.Int).Mul(bx, bx))) == 0 &&
			toBig(m32).Cmp(mod(new(big.Int).Mul(bx, big.NewInt(1<<32-1)))) == 0
	}

	err := quick.Check(arithmeticMatchesBigInt, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestSquareMatchesMultiply(t *testing.T) {
	squareMatchesMultiply := func(x Element) bool {
		var sq, m Element
		sq.Square(&x)
		m.Multiply(&x, &x)
		return sq == m
	}

	err := quick.Check(squareMatchesMultiply, quickCheckConfig(1024))
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
	// p + 18 = 2^255 - 1 is accepted by SetBytes and encodes as 18.
	in := make([]byte, 32)
	for i := range in {
		in[i] = 0xff
	}

	v, err := new(Element).SetBytes(in)
	require.NoError(t, err)

	want := make([]byte, 32)
	want[0] = 18
	assert.Equal(t, want, v.Bytes())
	assert.Equal(t, want, v.FillBytes(make([]byte, 32)))
}

func TestSetBytesInvalidLength(t *testing.T) {
	v := new(Element).One()
	got, err := v.SetBytes(make([]byte, 64))
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

	c.Swap(&d, 1)
	assert.Equal(t, b, c)
	assert.Equal(t, a, d)
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
	assert.EqualValues(t, 32, unsafe.Offsetof(v.l4))
	assert.EqualValues(t, 40, unsafe.Offsetof(v.l5))
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
