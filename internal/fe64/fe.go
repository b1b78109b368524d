// Package fe64 implements arithmetic modulo 2^255-19 with four saturated
// 64-bit limbs.
//
// Values are kept below 2^256 rather than below p: 2^256 is 38 mod p, so an
// overflow out of the top limb folds back as 38 times the carry. Only
// [Element.Bytes] and the functions built on it reduce fully.
package fe64

import (
	"crypto/subtle"
	"encoding/binary"

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
	//     t.l0 + t.l1*2^64 + t.l2*2^128 + t.l3*2^192
	l0 uint64
	l1 uint64
	l2 uint64
	l3 uint64
}

const maskLow63Bits uint64 = (1 << 63) - 1

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
// are accepted. Note that this is laxer than specified by RFC 8032, but
// consistent with most Ed25519 implementations.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.Errorf("fe64: invalid field element input size %d", len(x))
	}

	v.l0 = binary.LittleEndian.Uint64(x[0*8:])
	v.l1 = binary.LittleEndian.Uint64(x[1*8:])
	v.l2 = binary.LittleEndian.Uint64(x[2*8:])
	v.l3 = binary.LittleEndian.Uint64(x[3*8:])
	v.l3 &= maskLow63Bits

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

	binary.LittleEndian.PutUint64(out[0*8:], t.l0)
	binary.LittleEndian.PutUint64(out[1*8:], t.l1)
	binary.LittleEndian.PutUint64(out[2*8:], t.l2)
	binary.LittleEndian.PutUint64(out[3*8:], t.l3)

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

// mask64Bits returns 0xffffffffffffffff if cond is 1, and 0 otherwise.
func mask64Bits(cond int) uint64 { return ^(uint64(cond) - 1) }

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask64Bits(cond)
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
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
}

var feZero = &Element{0, 0, 0, 0}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = &Element{1, 0, 0, 0}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Add sets v = x + y, and returns v.
func (v *Element) Add(x, y *Element) *Element {
	feAdd(v, x, y)
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	feSub(v, a, b)
	return v
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

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	return addchain.Invert(v, z)
}

// Mult32 sets v = x * y, and returns v.
func (v *Element) Mult32(x *Element, y uint32) *Element {
	return v.Multiply(x, &Element{uint64(y), 0, 0, 0})
}

// Pow22523 set v = x^((p-5)/8), and returns v. (p-5)/8 is 2^252-3.
func (v *Element) Pow22523(x *Element) *Element {
	return addchain.Pow22523(v, x)
}

// sqrtM1 is 2^((p-1)/4), which squared is equal to -1 by Euler's Criterion.
var sqrtM1 = &Element{
	l0: 14190309331451158704,
	l1: 3405592160176694392,
	l2: 3120150775007532967,
	l3: 3135389899092516619,
}

// SqrtRatio sets r to the non-negative square root of the ratio of u and v.
//
// If u/v is square, SqrtRatio returns r and 1. If u/v is not square, SqrtRatio
// sets r according to Section 4.3 of draft-irtf-cfrg-ristretto255-decaf448-00,
// and returns r and 0.
func (r *Element) SqrtRatio(u, v *Element) (R *Element, wasSquare int) {
	return addchain.SqrtRatio(r, u, v, sqrtM1)
}
