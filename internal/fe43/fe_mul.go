package fe43

import "math/bits"

// madd64 returns lo + hi*2^64 + a*b as a 128-bit (lo, hi) pair.
func madd64(lo, hi, a, b uint64) (olo, ohi uint64) {
	mh, ml := bits.Mul64(a, b)
	var c uint64
	olo, c = bits.Add64(ml, lo, 0)
	ohi, _ = bits.Add64(mh, hi, c)
	return
}

// mul43 returns lo + hi * 2^w = a * b, with lo below 2^w.
func mul43(a uint64, b uint32, w uint) (lo uint64, hi uint64) {
	mh, ml := bits.Mul64(a, uint64(b))
	lo = ml & (1<<w - 1)
	hi = (mh << (64 - w)) | (ml >> w)
	return
}

func feMul(v, x, y *Element) {
	x0, x1, x2, x3, x4, x5 := x.l0, x.l1, x.l2, x.l3, x.l4, x.l5
	y0, y1, y2, y3, y4, y5 := y.l0, y.l1, y.l2, y.l3, y.l4, y.l5

	y1_152 := y1 * 152
	y2_152 := y2 * 152
	y3_152 := y3 * 152
	y4_152 := y4 * 152
	y5_152 := y5 * 152

	// r0 = x0*y0 + 152*(x1*y5 + x2*y4 + x3*y3 + x4*y2 + x5*y1)
	r00, r01 := madd64(0, 0, x0, y0)
	r00, r01 = madd64(r00, r01, x1, y5_152)
	r00, r01 = madd64(r00, r01, x2, y4_152)
	r00, r01 = madd64(r00, r01, x3, y3_152)
	r00, r01 = madd64(r00, r01, x4, y2_152)
	r00, r01 = madd64(r00, r01, x5, y1_152)

	// r1 = x0*y1 + x1*y0 + 152*(x2*y5 + x3*y4 + x4*y3 + x5*y2)
	r10, r11 := madd64(0, 0, x0, y1)
	r10, r11 = madd64(r10, r11, x1, y0)
	r10, r11 = madd64(r10, r11, x2, y5_152)
	r10, r11 = madd64(r10, r11, x3, y4_152)
	r10, r11 = madd64(r10, r11, x4, y3_152)
	r10, r11 = madd64(r10, r11, x5, y2_152)

	// r2 = x0*y2 + x1*y1 + x2*y0 + 152*(x3*y5 + x4*y4 + x5*y3)
	r20, r21 := madd64(0, 0, x0, y2)
	r20, r21 = madd64(r20, r21, x1, y1)
	r20, r21 = madd64(r20, r21, x2, y0)
	r20, r21 = madd64(r20, r21, x3, y5_152)
	r20, r21 = madd64(r20, r21, x4, y4_152)
	r20, r21 = madd64(r20, r21, x5, y3_152)

	// r3 = x0*y3 + x1*y2 + x2*y1 + x3*y0 + 152*(x4*y5 + x5*y4)
	r30, r31 := madd64(0, 0, x0, y3)
	r30, r31 = madd64(r30, r31, x1, y2)
	r30, r31 = madd64(r30, r31, x2, y1)
	r30, r31 = madd64(r30, r31, x3, y0)
	r30, r31 = madd64(r30, r31, x4, y5_152)
	r30, r31 = madd64(r30, r31, x5, y4_152)

	// r4 = x0*y4 + x1*y3 + x2*y2 + x3*y1 + x4*y0 + 152*x5*y5
	r40, r41 := madd64(0, 0, x0, y4)
	r40, r41 = madd64(r40, r41, x1, y3)
	r40, r41 = madd64(r40, r41, x2, y2)
	r40, r41 = madd64(r40, r41, x3, y1)
	r40, r41 = madd64(r40, r41, x4, y0)
	r40, r41 = madd64(r40, r41, x5, y5_152)

	// r5 = x0*y5 + x1*y4 + x2*y3 + x3*y2 + x4*y1 + x5*y0
	r50, r51 := madd64(0, 0, x0, y5)
	r50, r51 = madd64(r50, r51, x1, y4)
	r50, r51 = madd64(r50, r51, x2, y3)
	r50, r51 = madd64(r50, r51, x3, y2)
	r50, r51 = madd64(r50, r51, x4, y1)
	r50, r51 = madd64(r50, r51, x5, y0)

	*v = reduce128(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41, r50, r51)
}

func feSquare(v, x *Element) {
	x0, x1, x2, x3, x4, x5 := x.l0, x.l1, x.l2, x.l3, x.l4, x.l5

	x0_2 := x0 << 1
	x1_2 := x1 << 1
	x2_2 := x2 << 1

	x3_152 := x3 * 152
	x4_152 := x4 * 152
	x5_152 := x5 * 152
	x4_304 := x4 * 304
	x5_304 := x5 * 304

	// r0 = x0*x0 + 152*(2*x1*x5 + 2*x2*x4 + x3*x3)
	r00, r01 := madd64(0, 0, x0, x0)
	r00, r01 = madd64(r00, r01, x1, x5_304)
	r00, r01 = madd64(r00, r01, x2, x4_304)
	r00, r01 = madd64(r00, r01, x3, x3_152)

	// r1 = 2*x0*x1 + 152*(2*x2*x5 + 2*x3*x4)
	r10, r11 := madd64(0, 0, x0_2, x1)
	r10, r11 = madd64(r10, r11, x2, x5_304)
	r10, r11 = madd64(r10, r11, x3, x4_304)

	// r2 = 2*x0*x2 + x1*x1 + 152*(2*x3*x5 + x4*x4)
	r20, r21 := madd64(0, 0, x0_2, x2)
	r20, r21 = madd64(r20, r21, x1, x1)
	r20, r21 = madd64(r20, r21, x3, x5_304)
	r20, r21 = madd64(r20, r21, x4, x4_152)

	// r3 = 2*x0*x3 + 2*x1*x2 + 152*2*x4*x5
	r30, r31 := madd64(0, 0, x0_2, x3)
	r30, r31 = madd64(r30, r31, x1_2, x2)
	r30, r31 = madd64(r30, r31, x4, x5_304)

	// r4 = 2*x0*x4 + 2*x1*x3 + x2*x2 + 152*x5*x5
	r40, r41 := madd64(0, 0, x0_2, x4)
	r40, r41 = madd64(r40, r41, x1_2, x3)
	r40, r41 = madd64(r40, r41, x2, x2)
	r40, r41 = madd64(r40, r41, x5, x5_152)

	// r5 = 2*x0*x5 + 2*x1*x4 + 2*x2*x3
	r50, r51 := madd64(0, 0, x0_2, x5)
	r50, r51 = madd64(r50, r51, x1_2, x4)
	r50, r51 = madd64(r50, r51, x2_2, x3)

	*v = reduce128(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41, r50, r51)
}

// reduce128 folds six 128-bit coefficients back into 43-bit limbs (40 bits
// for the top one).
//
// Each coefficient keeps its low bits and passes the rest on to the next one;
// the r5 carry wraps around to r0 multiplied by 19. A final carry pass brings
// every limb within the carried bound.
func reduce128(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41, r50, r51 uint64) Element {
	r01 = (r01 << 21) | (r00 >> 43)
	r00 &= maskLow43Bits

	r11 = (r11 << 21) | (r10 >> 43)
	r10 &= maskLow43Bits
	r10 += r01

	r21 = (r21 << 21) | (r20 >> 43)
	r20 &= maskLow43Bits
	r20 += r11

	r31 = (r31 << 21) | (r30 >> 43)
	r30 &= maskLow43Bits
	r30 += r21

	r41 = (r41 << 21) | (r40 >> 43)
	r40 &= maskLow43Bits
	r40 += r31

	r51 = (r51 << 24) | (r50 >> 40)
	r50 &= maskLow40Bits
	r50 += r41

	r51 *= 19
	r00 += r51

	v := Element{l0: r00, l1: r10, l2: r20, l3: r30, l4: r40, l5: r50}
	v.carryPropagate()
	return v
}
