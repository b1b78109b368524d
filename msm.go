package ed25519core

import (
	"fmt"

	"github.com/AlexanderYastrebov/ed25519core/field"
)

const (
	// strausWindow is the signed window width in bits.
	strausWindow = 4
	// strausTableSize is the number of multiples [1]P..[8]P kept per point.
	strausTableSize = 1 << (strausWindow - 1)
	// strausDigits is the number of radix-16 digits of a 256-bit scalar,
	// plus one for the final carry.
	strausDigits = 256/strausWindow + 1
	// strausMinTerms is the smallest number of terms for which the shared
	// doublings and batch normalization pay off.
	strausMinTerms = 4
)

// VarTimeMultiScalarMult sets v = sum(scalars[i] * points[i]), and returns v.
//
// Scalars are 32-byte little-endian integers and are not reduced. If the
// number of scalars and points differ, VarTimeMultiScalarMult returns nil and
// an error and the receiver is unchanged.
//
// Execution time depends on the inputs.
func (v *Point) VarTimeMultiScalarMult(scalars [][]byte, points []*Point) (*Point, error) {
	if len(scalars) != len(points) {
		str := fmt.Sprintf("%d scalars and %d points", len(scalars), len(points))
		return nil, makeError(ErrMismatchedLengths, str)
	}
	for _, s := range scalars {
		if err := checkScalar(s); err != nil {
			return nil, err
		}
	}

	if len(points) < strausMinTerms {
		var acc, t Point
		acc.Identity()
		for i := range points {
			// Lengths are already checked.
			t.ScalarMult(scalars[i], points[i])
			acc.Add(&acc, &t)
		}
		return v.Set(&acc), nil
	}

	return v.straus(scalars, points), nil
}

// signedRadix16 recodes the 256-bit scalar s into digits d[i] in -8..7 such
// that s = sum(d[i] * 16^i). The last digit is the final carry, 0 or 1.
func signedRadix16(s []byte) [strausDigits]int8 {
	var digits [strausDigits]int8
	var carry int8
	for i := range 32 {
		lo := int8(s[i]&15) + carry
		carry = (lo + 8) >> 4
		digits[2*i] = lo - carry<<4

		hi := int8(s[i]>>4) + carry
		carry = (hi + 8) >> 4
		digits[2*i+1] = hi - carry<<4
	}
	digits[strausDigits-1] = carry
	return digits
}

// straus computes sum(scalars[i] * points[i]) with interleaved signed
// windows, sharing one chain of doublings between all terms.
//
// The multiples [1]P..[8]P of every point are normalized to z = 1 together
// with a single [field.BatchInvert], so that every addition in the main
// loop skips the Z1*Z2 multiplication.
func (v *Point) straus(scalars [][]byte, points []*Point) *Point {
	n := len(points)

	multiples := make([]Point, n*strausTableSize)
	for i, p := range points {
		m := multiples[i*strausTableSize : (i+1)*strausTableSize]
		m[0].Set(p)
		m[1].Double(p)
		for j := 2; j < strausTableSize; j++ {
			m[j].Add(&m[j-1], p)
		}
	}

	zInv := make([]field.Element, len(multiples))
	scratch := make([]field.Element, len(multiples))
	for i := range multiples {
		zInv[i].Set(&multiples[i].z)
	}
	field.BatchInvert(zInv, scratch)

	tables := make([]affinePoint, len(multiples))
	for i := range multiples {
		a := &tables[i]
		a.x.Multiply(&multiples[i].x, &zInv[i])
		a.y.Multiply(&multiples[i].y, &zInv[i])
		a.t.Multiply(&a.x, &a.y)
	}

	digits := make([][strausDigits]int8, n)
	for i, s := range scalars {
		digits[i] = signedRadix16(s)
	}

	var acc Point
	var r partialPoint
	acc.Identity()
	for i := strausDigits - 1; i >= 0; i-- {
		if i != strausDigits-1 {
			acc.DoubleN(&acc, strausWindow)
		}
		for j := range n {
			d := digits[j][i]
			switch {
			case d > 0:
				acc.fromPartial(r.addAffine(&acc, &tables[j*strausTableSize+int(d)-1]))
			case d < 0:
				acc.fromPartial(r.subAffine(&acc, &tables[j*strausTableSize+int(-d)-1]))
			}
		}
	}

	return v.Set(&acc)
}
