package field

import (
	"bytes"
	"testing"

	ffield "filippo.io/edwards25519/field"
	"github.com/AlexanderYastrebov/ed25519core/internal/fe2526"
	"github.com/AlexanderYastrebov/ed25519core/internal/fe43"
	"github.com/AlexanderYastrebov/ed25519core/internal/fe51"
	"github.com/AlexanderYastrebov/ed25519core/internal/fe64"
	"pgregory.net/rapid"
)

// element is the method set shared by every limb representation and by
// filippo.io/edwards25519/field, which serves as the reference. The reference
// has no IsZero, see registers.isZero.
type element[T any] interface {
	*T
	SetBytes(x []byte) (*T, error)
	Bytes() []byte
	Add(a, b *T) *T
	Subtract(a, b *T) *T
	Negate(a *T) *T
	Multiply(x, y *T) *T
	Square(x *T) *T
	Mult32(x *T, y uint32) *T
	Invert(z *T) *T
	Pow22523(x *T) *T
	Absolute(u *T) *T
	SqrtRatio(u, v *T) (*T, int)
	Select(a, b *T, cond int) *T
	Swap(u *T, cond int)
	IsNegative() int
}

const numRegisters = 4

const (
	opAdd = iota
	opSubtract
	opNegate
	opMultiply
	opSquare
	opMult32
	opInvert
	opPow22523
	opAbsolute
	opSqrtRatio
	opSelect
	opSwap
	numOps
)

var opNames = [numOps]string{
	"add", "sub", "neg", "mul", "sqr", "mult32", "invert", "pow22523", "abs", "sqrt_ratio", "select", "swap",
}

type instruction struct {
	op, dst, a, b int
	k             uint32
}

// machine runs instructions on registers of one representation, so that
// limbs are carried from one operation to the next without an intermediate
// encoding.
type machine interface {
	load(i int, x []byte)
	exec(in instruction) int
	store(i int) []byte
	sign(i int) int
	isZero(i int) int
}

type registers[T any, E element[T]] struct {
	r [numRegisters]T
}

func (m *registers[T, E]) load(i int, x []byte) {
	if _, err := E(&m.r[i]).SetBytes(x); err != nil {
		panic(err)
	}
}

func (m *registers[T, E]) exec(in instruction) int {
	d, x, y := E(&m.r[in.dst]), E(&m.r[in.a]), E(&m.r[in.b])
	switch in.op {
	case opAdd:
		d.Add(x, y)
	case opSubtract:
		d.Subtract(x, y)
	case opNegate:
		d.Negate(x)
	case opMultiply:
		d.Multiply(x, y)
	case opSquare:
		d.Square(x)
	case opMult32:
		d.Mult32(x, in.k)
	case opInvert:
		d.Invert(x)
	case opPow22523:
		d.Pow22523(x)
	case opAbsolute:
		d.Absolute(x)
	case opSqrtRatio:
		_, wasSquare := d.SqrtRatio(x, y)
		return wasSquare
	case opSelect:
		d.Select(x, y, int(in.k&1))
	case opSwap:
		x.Swap(y, int(in.k&1))
	}
	return 0
}

func (m *registers[T, E]) store(i int) []byte { return E(&m.r[i]).Bytes() }
func (m *registers[T, E]) sign(i int) int     { return E(&m.r[i]).IsNegative() }

// isZero uses the IsZero method where the representation has one, and
// compares the encoding against zero otherwise.
func (m *registers[T, E]) isZero(i int) int {
	v := E(&m.r[i])
	if z, ok := any(v).(interface{ IsZero() int }); ok {
		return z.IsZero()
	}
	if bytes.Equal(v.Bytes(), make([]byte, 32)) {
		return 1
	}
	return 0
}

func newMachines() map[string]machine {
	return map[string]machine{
		"edwards25519": new(registers[ffield.Element, *ffield.Element]),
		"fe51":         new(registers[fe51.Element, *fe51.Element]),
		"fe64":         new(registers[fe64.Element, *fe64.Element]),
		"fe2526":       new(registers[fe2526.Element, *fe2526.Element]),
		"fe43":         new(registers[fe43.Element, *fe43.Element]),
	}
}

// fieldBytesGen draws 32-byte encodings, including non-canonical ones and
// values next to 0 and p.
func fieldBytesGen() *rapid.Generator[[]byte] {
	return rapid.OneOf(
		rapid.SliceOfN(rapid.Byte(), 32, 32),
		rapid.SampledFrom([][]byte{
			decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
			decodeHex("0100000000000000000000000000000000000000000000000000000000000000"),
			decodeHex("ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"), // p-1
			decodeHex("edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"), // p
			decodeHex("eeffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"), // p+1
			decodeHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		}),
	)
}

func instructionGen() *rapid.Generator[instruction] {
	return rapid.Custom(func(t *rapid.T) instruction {
		return instruction{
			op:  rapid.IntRange(0, numOps-1).Draw(t, "op"),
			dst: rapid.IntRange(0, numRegisters-1).Draw(t, "dst"),
			a:   rapid.IntRange(0, numRegisters-1).Draw(t, "a"),
			b:   rapid.IntRange(0, numRegisters-1).Draw(t, "b"),
			k:   rapid.Uint32().Draw(t, "k"),
		}
	})
}

// TestBackendEquivalence checks that every representation produces the same
// encodings as the reference for random sequences of operations.
func TestBackendEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		machines := newMachines()

		for i := range numRegisters {
			x := fieldBytesGen().Draw(t, "x")
			for _, m := range machines {
				m.load(i, x)
			}
		}

		program := rapid.SliceOfN(instructionGen(), 1, 64).Draw(t, "program")
		for step, in := range program {
			ref := machines["edwards25519"]
			wantFlag := ref.exec(in)

			for name, m := range machines {
				if name == "edwards25519" {
					continue
				}
				if got := m.exec(in); got != wantFlag {
					t.Fatalf("step %d %s: %s flag = %d, want %d", step, opNames[in.op], name, got, wantFlag)
				}
			}

			for i := range numRegisters {
				want := ref.store(i)
				for name, m := range machines {
					if got := m.store(i); !bytes.Equal(got, want) {
						t.Fatalf("step %d %s: %s r%d = %x, want %x", step, opNames[in.op], name, i, got, want)
					}
					if got, want := m.sign(i), ref.sign(i); got != want {
						t.Fatalf("step %d %s: %s sign(r%d) = %d, want %d", step, opNames[in.op], name, i, got, want)
					}
					if got, want := m.isZero(i), ref.isZero(i); got != want {
						t.Fatalf("step %d %s: %s r%d is zero = %d, want %d", step, opNames[in.op], name, i, got, want)
					}
				}
			}
		}
	})
}

// TestRoundTripEquivalence checks that decoding then encoding reduces the
// input the same way in every representation.
func TestRoundTripEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := fieldBytesGen().Draw(t, "x")
		machines := newMachines()

		want := []byte(nil)
		for name, m := range machines {
			m.load(0, x)
			got := m.store(0)
			if want == nil {
				want = got
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("%s: Bytes(SetBytes(%x)) = %x, want %x", name, x, got, want)
			}
		}

		if want[31]&0x80 != 0 {
			t.Fatalf("encoding %x has the top bit set", want)
		}
	})
}
