package ed25519core

import (
	"fmt"

	"github.com/AlexanderYastrebov/ed25519core/field"
)

// Birational map between edwards25519 and the Montgomery curve
// "curve25519" v^2 = u^3 + 486662*u^2 + u.
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1

// BytesMontgomery converts v to a point on the birationally-equivalent
// Curve25519 Montgomery curve, and returns its canonical 32 bytes encoding
// according to RFC 7748.
//
// Note that BytesMontgomery only encodes the u-coordinate, so v and -v encode
// to the same value. If v is the identity point, BytesMontgomery returns 32
// zero bytes, analogously to the X25519 function.
func (v *Point) BytesMontgomery() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var buf [32]byte
	return v.bytesMontgomery(&buf)
}

func (v *Point) bytesMontgomery(buf *[32]byte) []byte {
	// u = (1 + y) / (1 - y) = (Z + Y) / (Z - Y)
	var n, r, u field.Element
	n.Add(&v.z, &v.y)
	r.Subtract(&v.z, &v.y)
	u.Multiply(&n, r.Invert(&r))

	return u.FillBytes(buf[:])
}

// SetMontgomeryBytes sets v to the edwards25519 point with the given
// Montgomery u-coordinate and the sign of x given by sign, and returns v.
//
// y = (u - 1) / (u + 1)
//
// If u is not the u-coordinate of a point on Curve25519, SetMontgomeryBytes
// returns nil and an error and the receiver is unchanged.
func (v *Point) SetMontgomeryBytes(u []byte, sign int) (*Point, error) {
	if len(u) != 32 {
		str := fmt.Sprintf("invalid u-coordinate length %d", len(u))
		return nil, makeError(ErrInvalidLength, str)
	}
	uu, err := new(field.Element).SetBytes(u)
	if err != nil {
		return nil, err
	}

	// u = -1 maps to no point: v^2 = 486660 there, which is not a square.
	var y, t field.Element
	t.Add(uu, _1)
	if t.IsZero() == 1 {
		return nil, makeError(ErrInvalidPointEncoding, "u-coordinate is not on the curve")
	}
	t.Invert(&t)
	y.Subtract(uu, _1)
	y.Multiply(&y, &t)

	var buf [32]byte
	y.FillBytes(buf[:])
	buf[31] |= byte(sign&1) << 7

	return v.SetBytes(buf[:])
}
