package fe51

import "math/bits"

// madd64 returns lo + hi*2^64 + a*b as a 128-bit (lo, hi) pair.
func madd64(lo, hi, a, b uint64) (olo, ohi uint64) {
	mh, ml := bits.Mul64(a, b)
	var c uint64
	olo, c = bits.Add64(ml, lo, 0)
	ohi, _ = bits.Add64(mh, hi, c)
	return
}

// mul51 returns lo + hi * 2^51 = a * b.
func mul51(a uint64, b uint32) (lo uint64, hi uint64) {
	mh, ml := bits.Mul64(a, uint64(b))
	lo = ml & maskLow51Bits
	hi = (mh << 13) | (ml >> 51)
	return
}

func feMul(v, x, y *Element) {
	x0 := x.l0
	x1 := x.l1
	x2 := x.l2
	x3 := x.l3
	x4 := x.l4

	y0 := y.l0
	y1 := y.l1
	y2 := y.l2
	y3 := y.l3
	y4 := y.l4

	// Reduction is carried out simultaneously to multiplication: whenever a
	// product belongs to r5 or above, one of the inputs is multiplied by 19
	// and the product is added to the coefficient 255 bits lower.

	x1_19 := x1 * 19
	x2_19 := x2 * 19
	x3_19 := x3 * 19
	x4_19 := x4 * 19

	// r0 = x0*y0 + 19*(x1*y4 + x2*y3 + x3*y2 + x4*y1)
	r00, r01 := madd64(0, 0, x0, y0)
	r00, r01 = madd64(r00, r01, x1_19, y4)
	r00, r01 = madd64(r00, r01, x2_19, y3)
	r00, r01 = madd64(r00, r01, x3_19, y2)
	r00, r01 = madd64(r00, r01, x4_19, y1)

	// r1 = x0*y1 + x1*y0 + 19*(x2*y4 + x3*y3 + x4*y2)
	r10, r11 := madd64(0, 0, x0, y1)
	r10, r11 = madd64(r10, r11, x1, y0)
	r10, r11 = madd64(r10, r11, x2_19, y4)
	r10, r11 = madd64(r10, r11, x3_19, y3)
	r10, r11 = madd64(r10, r11, x4_19, y2)

	// r2 = x0*y2 + x1*y1 + x2*y0 + 19*(x3*y4 + x4*y3)
	r20, r21 := madd64(0, 0, x0, y2)
	r20, r21 = madd64(r20, r21, x1, y1)
	r20, r21 = madd64(r20, r21, x2, y0)
	r20, r21 = madd64(r20, r21, x3_19, y4)
	r20, r21 = madd64(r20, r21, x4_19, y3)

	// r3 = x0*y3 + x1*y2 + x2*y1 + x3*y0 + 19*x4*y4
	r30, r31 := madd64(0, 0, x0, y3)
	r30, r31 = madd64(r30, r31, x1, y2)
	r30, r31 = madd64(r30, r31, x2, y1)
	r30, r31 = madd64(r30, r31, x3, y0)
	r30, r31 = madd64(r30, r31, x4_19, y4)

	// r4 = x0*y4 + x1*y3 + x2*y2 + x3*y1 + x4*y0
	r40, r41 := madd64(0, 0, x0, y4)
	r40, r41 = madd64(r40, r41, x1, y3)
	r40, r41 = madd64(r40, r41, x2, y2)
	r40, r41 = madd64(r40, r41, x3, y1)
	r40, r41 = madd64(r40, r41, x4, y0)

	*v = reduce128(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41)
}

func feSquare(v, x *Element) {
	// Squaring needs only 15 multiplications. Some inputs are multiplied by 2;
	// this is combined with multiplication by 19 where possible.

	x0 := x.l0
	x1 := x.l1
	x2 := x.l2
	x3 := x.l3
	x4 := x.l4

	x0_2 := x0 << 1
	x1_2 := x1 << 1

	x1_38 := x1 * 38
	x2_38 := x2 * 38
	x3_38 := x3 * 38

	x3_19 := x3 * 19
	x4_19 := x4 * 19

	// r0 = x0*x0 + x1*38*x4 + x2*38*x3
	r00, r01 := madd64(0, 0, x0, x0)
	r00, r01 = madd64(r00, r01, x1_38, x4)
	r00, r01 = madd64(r00, r01, x2_38, x3)

	// r1 = x0*2*x1 + x2*38*x4 + x3*19*x3
	r10, r11 := madd64(0, 0, x0_2, x1)
	r10, r11 = madd64(r10, r11, x2_38, x4)
	r10, r11 = madd64(r10, r11, x3_19, x3)

	// r2 = x0*2*x2 + x1*x1 + x3*38*x4
	r20, r21 := madd64(0, 0, x0_2, x2)
	r20, r21 = madd64(r20, r21, x1, x1)
	r20, r21 = madd64(r20, r21, x3_38, x4)

	// r3 = x0*2*x3 + x1*2*x2 + x4*19*x4
	r30, r31 := madd64(0, 0, x0_2, x3)
	r30, r31 = madd64(r30, r31, x1_2, x2)
	r30, r31 = madd64(r30, r31, x4_19, x4)

	// r4 = x0*2*x4 + x1*2*x3 + x2*x2
	r40, r41 := madd64(0, 0, x0_2, x4)
	r40, r41 = madd64(r40, r41, x1_2, x3)
	r40, r41 = madd64(r40, r41, x2, x2)

	*v = reduce128(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41)
}

// reduce128 folds five 128-bit coefficients back into 51-bit limbs.
//
// The high word of each coefficient is shifted left by 13 while shifting in
// the top bits of the low word, and added to the next coefficient; the r4
// carry is multiplied by 19 and added to r0. A final carry pass brings every
// limb below 2^52.
func reduce128(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41 uint64) Element {
	r01 = (r01 << 13) | (r00 >> 51)
	r00 &= maskLow51Bits

	r11 = (r11 << 13) | (r10 >> 51)
	r10 &= maskLow51Bits
	r10 += r01

	r21 = (r21 << 13) | (r20 >> 51)
	r20 &= maskLow51Bits
	r20 += r11

	r31 = (r31 << 13) | (r30 >> 51)
	r30 &= maskLow51Bits
	r30 += r21

	r41 = (r41 << 13) | (r40 >> 51)
	r40 &= maskLow51Bits
	r40 += r31

	r41 *= 19
	r00 += r41

	v := Element{r00, r10, r20, r30, r40}
	v.carryPropagate()
	return v
}

// carryPropagate brings the limbs below 52 bits by applying the reduction
// identity to the l4 carry.
func (v *Element) carryPropagate() *Element {
	c0 := v.l0 >> 51
	c1 := v.l1 >> 51
	c2 := v.l2 >> 51
	c3 := v.l3 >> 51
	c4 := v.l4 >> 51

	v.l0 = v.l0&maskLow51Bits + c4*19
	v.l1 = v.l1&maskLow51Bits + c0
	v.l2 = v.l2&maskLow51Bits + c1
	v.l3 = v.l3&maskLow51Bits + c2
	v.l4 = v.l4&maskLow51Bits + c3

	return v
}
