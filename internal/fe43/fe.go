// Package fe43 implements arithmetic modulo 2^255-19 with six limbs: five of
// 43 bits and a top limb of 40 bits.
//
// The limbs fit the 52-bit multiplier lanes of integer fused multiply-add
// vector units. A limb product at or above 2^258 wraps around multiplied by
// 152, because 2^258 = 8 * 2^255 = 8 * 19 mod p.
package fe43

import (
	"crypto/subtle"

	"github.com/AlexanderYastrebov/ed25519core/internal/addchain"
	"github.com/pkg/errors"
)

// Element represents an element of the field GF(2^255-19).
//
// All arguments and receivers are allowed to alias.
//
// The zero value is a valid zero element.
type Element struct {
	// An element t represents the integer
	//     t.l0 + t.l1*2^43 + t.l2*2^86 + t.l3*2^129 + t.l4*2^172 + t.l5*2^215
	//
	// Between operations, l0 through l4 are expected to be lower than 2^44
	// and l5 lower than 2^41.
	l0, l1, l2, l3, l4, l5 uint64

	// Two unused lanes pad the element to one 512-bit vector.
	_ [2]uint64
}

const (
	maskLow43Bits uint64 = (1 << 43) - 1
	maskLow40Bits uint64 = (1 << 40) - 1
)

var feZero = &Element{}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = &Element{l0: 1}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// limbs returns the six limbs of v, least significant first.
func (v *Element) limbs() [6]uint64 {
	return [6]uint64{v.l0, v.l1, v.l2, v.l3, v.l4, v.l5}
}

// limbBits is the width of limb i.
func limbBits(i int) uint {
	if i == 5 {
		return 40
	}
	return 43
}

// SetBytes sets v to x, where x is a 32-byte little-endian encoding. If x is
// not of the right length, SetBytes returns nil and an error, and the
// receiver is unchanged.
//
// Consistent with RFC 7748, the most significant bit (the high bit of the
// last byte) is ignored, and non-canonical values (2^255-19 through 2^255-1)
// are accepted.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.Errorf("fe43: invalid field element input size %d", len(x))
	}

	var l [6]uint64
	var acc uint64
	var accBits uint
	k := 0
	for i := range l {
		w := limbBits(i)
		for accBits < w {
			acc |= uint64(x[k]) << accBits
			accBits += 8
			k++
		}
		l[i] = acc & (1<<w - 1)
		acc >>= w
		accBits -= w
	}

	*v = Element{l0: l[0], l1: l[1], l2: l[2], l3: l[3], l4: l[4], l5: l[5]}
	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var out [32]byte
	return v.bytes(&out)
}

// FillBytes sets buf to the canonical 32-byte little-endian encoding of v,
// and returns buf. If buf is shorter than 32 bytes, FillBytes panics.
func (v *Element) FillBytes(buf []byte) []byte {
	var out [32]byte
	copy(buf[:32], v.bytes(&out))
	return buf
}

func (v *Element) bytes(out *[32]byte) []byte {
	t := *v
	t.reduce()

	var acc uint64
	var accBits uint
	j := 0
	for i, l := range t.limbs() {
		acc |= l << accBits
		accBits += limbBits(i)
		for accBits >= 8 {
			out[j] = byte(acc)
			acc >>= 8
			accBits -= 8
			j++
		}
	}
	out[j] = byte(acc)

	return out[:]
}

// reduce reduces v modulo 2^255 - 19 and returns it.
func (v *Element) reduce() *Element {
	v.carryPropagate()

	// After the light reduction v < 2^255 + 2^20, and v >= 2^255 - 19 exactly
	// when v + 19 carries out of the top limb.
	c := (v.l0 + 19) >> 43
	c = (v.l1 + c) >> 43
	c = (v.l2 + c) >> 43
	c = (v.l3 + c) >> 43
	c = (v.l4 + c) >> 43
	c = (v.l5 + c) >> 40

	v.l0 += 19 * c

	v.l1 += v.l0 >> 43
	v.l0 &= maskLow43Bits
	v.l2 += v.l1 >> 43
	v.l1 &= maskLow43Bits
	v.l3 += v.l2 >> 43
	v.l2 &= maskLow43Bits
	v.l4 += v.l3 >> 43
	v.l3 &= maskLow43Bits
	v.l5 += v.l4 >> 43
	v.l4 &= maskLow43Bits
	// no additional carry
	v.l5 &= maskLow40Bits

	return v
}

// carryPropagate brings l0 through l4 below 2^44 and l5 below 2^41 by
// applying the reduction identity to the l5 carry.
func (v *Element) carryPropagate() *Element {
	c0 := v.l0 >> 43
	c1 := v.l1 >> 43
	c2 := v.l2 >> 43
	c3 := v.l3 >> 43
	c4 := v.l4 >> 43
	c5 := v.l5 >> 40

	v.l0 = v.l0&maskLow43Bits + c5*19
	v.l1 = v.l1&maskLow43Bits + c0
	v.l2 = v.l2&maskLow43Bits + c1
	v.l3 = v.l3&maskLow43Bits + c2
	v.l4 = v.l4&maskLow43Bits + c3
	v.l5 = v.l5&maskLow40Bits + c4

	return v
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	var bu, bv [32]byte
	return subtle.ConstantTimeCompare(u.bytes(&bu), v.bytes(&bv))
}

// IsZero returns 1 if v is zero modulo p, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(feZero)
}

// mask64Bits returns 0xffffffffffffffff if cond is 1, and 0 otherwise.
func mask64Bits(cond int) uint64 { return ^(uint64(cond) - 1) }

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask64Bits(cond)
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	v.l4 = (m & a.l4) | (^m & b.l4)
	v.l5 = (m & a.l5) | (^m & b.l5)
	return v
}

// Swap swaps v and u if cond == 1 or leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	m := mask64Bits(cond)
	t := m & (v.l0 ^ u.l0)
	v.l0 ^= t
	u.l0 ^= t
	t = m & (v.l1 ^ u.l1)
	v.l1 ^= t
	u.l1 ^= t
	t = m & (v.l2 ^ u.l2)
	v.l2 ^= t
	u.l2 ^= t
	t = m & (v.l3 ^ u.l3)
	v.l3 ^= t
	u.l3 ^= t
	t = m & (v.l4 ^ u.l4)
	v.l4 ^= t
	u.l4 ^= t
	t = m & (v.l5 ^ u.l5)
	v.l5 ^= t
	u.l5 ^= t
}

// Add sets v = a + b, and returns v.
func (v *Element) Add(a, b *Element) *Element {
	v.l0 = a.l0 + b.l0
	v.l1 = a.l1 + b.l1
	v.l2 = a.l2 + b.l2
	v.l3 = a.l3 + b.l3
	v.l4 = a.l4 + b.l4
	v.l5 = a.l5 + b.l5
	return v.carryPropagate()
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	// Add 2 * p first so that no limb underflows: every limb of 2 * p below
	// is larger than the carried bound of the matching limb of b.
	v.l0 = (a.l0 + (1<<44 - 38)) - b.l0
	v.l1 = (a.l1 + (1<<44 - 2)) - b.l1
	v.l2 = (a.l2 + (1<<44 - 2)) - b.l2
	v.l3 = (a.l3 + (1<<44 - 2)) - b.l3
	v.l4 = (a.l4 + (1<<44 - 2)) - b.l4
	v.l5 = (a.l5 + (1<<41 - 2)) - b.l5
	return v.carryPropagate()
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// IsNegative returns 1 if v is negative, and 0 otherwise.
func (v *Element) IsNegative() int {
	var out [32]byte
	return int(v.bytes(&out)[0] & 1)
}

// Absolute sets v to |u|, and returns v.
func (v *Element) Absolute(u *Element) *Element {
	return addchain.Absolute(v, u)
}

// Multiply sets v = x * y, and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	feMul(v, x, y)
	return v
}

// Square sets v = x * x, and returns v.
func (v *Element) Square(x *Element) *Element {
	feSquare(v, x)
	return v
}

// Mult32 sets v = x * y, and returns v.
func (v *Element) Mult32(x *Element, y uint32) *Element {
	x0lo, x0hi := mul43(x.l0, y, 43)
	x1lo, x1hi := mul43(x.l1, y, 43)
	x2lo, x2hi := mul43(x.l2, y, 43)
	x3lo, x3hi := mul43(x.l3, y, 43)
	x4lo, x4hi := mul43(x.l4, y, 43)
	x5lo, x5hi := mul43(x.l5, y, 40)
	v.l0 = x0lo + 19*x5hi
	v.l1 = x1lo + x0hi
	v.l2 = x2lo + x1hi
	v.l3 = x3lo + x2hi
	v.l4 = x4lo + x3hi
	v.l5 = x5lo + x4hi
	return v.carryPropagate()
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	return addchain.Invert(v, z)
}

// Pow22523 set v = x^((p-5)/8), and returns v. (p-5)/8 is 2^252-3.
func (v *Element) Pow22523(x *Element) *Element {
	return addchain.Pow22523(v, x)
}

// sqrtM1 is 2^((p-1)/4), which squared is equal to -1 by Euler's Criterion.
var sqrtM1 = &Element{
	l0: 3467281080496,
	l1: 6582290652611,
	l2: 5210002954932,
	l3: 329084955603,
	l4: 4526638806224,
	l5: 373767602335,
}

// SqrtRatio sets r to the non-negative square root of the ratio of u and v.
//
// If u/v is square, SqrtRatio returns r and 1. If u/v is not square, SqrtRatio
// sets r according to Section 4.3 of draft-irtf-cfrg-ristretto255-decaf448-00,
// and returns r and 0.
func (r *Element) SqrtRatio(u, v *Element) (R *Element, wasSquare int) {
	return addchain.SqrtRatio(r, u, v, sqrtM1)
}
