// Package fe2526 implements arithmetic modulo 2^255-19 with ten signed limbs
// alternating between 26 and 25 bits.
//
// The radix 2^25.5 keeps every limb product and its 19x wrap-around fold inside
// 64 bits, which is the shape used by 4-way 64-bit vector units.
package fe2526

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
	//     t.l[0] + t.l[1]*2^26 + t.l[2]*2^51 + t.l[3]*2^77 + t.l[4]*2^102 +
	//     t.l[5]*2^128 + t.l[6]*2^153 + t.l[7]*2^179 + t.l[8]*2^204 + t.l[9]*2^230
	//
	// Limbs are signed. Between operations, even limbs are bounded by about
	// 2^25 and odd limbs by about 2^24 in absolute value.
	l [10]int32
}

// limbBits is the width of limb i: 26 for even i, 25 for odd i.
func limbBits(i int) uint { return 26 - uint(i&1) }

var feZero = &Element{}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = &Element{l: [10]int32{1}}

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

// SetBytes sets v to x, where x is a 32-byte little-endian encoding. If x is
// not of the right length, SetBytes returns nil and an error, and the
// receiver is unchanged.
//
// Consistent with RFC 7748, the most significant bit (the high bit of the
// last byte) is ignored, and non-canonical values (2^255-19 through 2^255-1)
// are accepted.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.Errorf("fe2526: invalid field element input size %d", len(x))
	}

	var h [10]int64
	var acc uint64
	var accBits uint
	k := 0
	for i := range h {
		w := limbBits(i)
		for accBits < w {
			acc |= uint64(x[k]) << accBits
			accBits += 8
			k++
		}
		h[i] = int64(acc & (1<<w - 1))
		acc >>= w
		accBits -= w
	}

	*v = feCombine(&h)
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
	var h [10]int64
	for i := range h {
		h[i] = int64(v.l[i])
	}

	// q is 1 if v >= p and 0 otherwise, computed from the carry chain of
	// v + 19 without reducing anything yet.
	q := (19*h[9] + (1 << 24)) >> 25
	for i := range h {
		q = (h[i] + q) >> limbBits(i)
	}

	// v - q*p = v + 19*q - q*2^255. The 2^255 part is the final carry out of
	// h[9], which is discarded.
	h[0] += 19 * q
	for i := 0; i < 9; i++ {
		c := h[i] >> limbBits(i)
		h[i+1] += c
		h[i] -= c << limbBits(i)
	}
	h[9] &= 1<<25 - 1

	var acc uint64
	var accBits uint
	j := 0
	for i := range h {
		acc |= uint64(h[i]) << accBits
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

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	var bu, bv [32]byte
	return subtle.ConstantTimeCompare(u.bytes(&bu), v.bytes(&bv))
}

// IsZero returns 1 if v is zero modulo p, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(feZero)
}

// mask32Bits returns 0xffffffff if cond is 1, and 0 otherwise.
func mask32Bits(cond int) int32 { return -int32(cond) }

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask32Bits(cond)
	for i := range v.l {
		v.l[i] = (m & a.l[i]) | (^m & b.l[i])
	}
	return v
}

// Swap swaps v and u if cond == 1 or leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	m := mask32Bits(cond)
	for i := range v.l {
		t := m & (v.l[i] ^ u.l[i])
		v.l[i] ^= t
		u.l[i] ^= t
	}
}

// Add sets v = a + b, and returns v.
func (v *Element) Add(a, b *Element) *Element {
	var h [10]int64
	for i := range h {
		h[i] = int64(a.l[i]) + int64(b.l[i])
	}
	*v = feCombine(&h)
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	var h [10]int64
	for i := range h {
		h[i] = int64(a.l[i]) - int64(b.l[i])
	}
	*v = feCombine(&h)
	return v
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
	var h [10]int64
	for i := range h {
		h[i] = int64(x.l[i]) * int64(y)
	}
	*v = feCombine(&h)
	return v
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
var sqrtM1 = &Element{l: [10]int32{
	-32595792, -7943725, 9377950, 3500415, 12389472,
	-272473, -25146209, -2005654, 326686, 11406482,
}}

// SqrtRatio sets r to the non-negative square root of the ratio of u and v.
//
// If u/v is square, SqrtRatio returns r and 1. If u/v is not square, SqrtRatio
// sets r according to Section 4.3 of draft-irtf-cfrg-ristretto255-decaf448-00,
// and returns r and 0.
func (r *Element) SqrtRatio(u, v *Element) (R *Element, wasSquare int) {
	return addchain.SqrtRatio(r, u, v, sqrtM1)
}
