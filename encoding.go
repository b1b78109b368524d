package ed25519core

import (
	"fmt"

	"github.com/AlexanderYastrebov/ed25519core/field"
)

// SetBytes sets v = x, where x is a 32-byte encoding of v. If x does not
// represent a valid point on the curve, SetBytes returns nil and an error and
// the receiver is unchanged. Otherwise, SetBytes returns v.
//
// The encoding is the y-coordinate in little-endian order with the sign of x
// in the most significant bit, as in RFC 8032, Section 5.1.3. Non-canonical
// y-coordinates are accepted and reduced.
func (v *Point) SetBytes(x []byte) (*Point, error) {
	if len(x) != 32 {
		str := fmt.Sprintf("invalid point encoding length %d", len(x))
		return nil, makeError(ErrInvalidLength, str)
	}

	y, err := new(field.Element).SetBytes(x)
	if err != nil {
		return nil, err
	}

	// -x^2 + y^2 = 1 + d*x^2*y^2
	// x^2 = (y^2 - 1) / (d*y^2 + 1)
	var u, w, xx, xxNeg field.Element

	w.Square(y)
	u.Subtract(&w, _1)
	w.Multiply(&w, _d)
	w.Add(&w, _1)

	_, wasSquare := xx.SqrtRatio(&u, &w)
	if wasSquare == 0 {
		return nil, makeError(ErrInvalidPointEncoding, "y-coordinate has no matching x-coordinate")
	}

	// SqrtRatio returns the non-negative root, pick the other one if the
	// sign bit is set.
	xxNeg.Negate(&xx)
	xx.Select(&xxNeg, &xx, int(x[31]>>7))

	v.SetAffineCoordinates(&xx, y)
	return v, nil
}

// Bytes returns the canonical 32-byte encoding of v, according to RFC 8032,
// Section 5.1.2.
func (v *Point) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var buf [32]byte
	return v.bytes(&buf)
}

func (v *Point) bytes(buf *[32]byte) []byte {
	var zInv, x, y field.Element
	zInv.Invert(&v.z)
	x.Multiply(&v.x, &zInv)
	y.Multiply(&v.y, &zInv)

	out := y.FillBytes(buf[:])
	out[31] |= byte(x.IsNegative() << 7)
	return out
}

// normalize sets v to the representation of p with z = 1, and returns v.
func (v *Point) normalize(p *Point) *Point {
	var zInv, x, y field.Element
	zInv.Invert(&p.z)
	x.Multiply(&p.x, &zInv)
	y.Multiply(&p.y, &zInv)
	return v.SetAffineCoordinates(&x, &y)
}
