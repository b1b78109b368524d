package fe64

import "math/bits"

// feAdd sets out = a + b.
func feAdd(out, a, b *Element) {
	l0, c := bits.Add64(a.l0, b.l0, 0)
	l1, c := bits.Add64(a.l1, b.l1, c)
	l2, c := bits.Add64(a.l2, b.l2, c)
	l3, c := bits.Add64(a.l3, b.l3, c)

	// 2^256 = 38 mod p. A second carry leaves l0 below 38, so the last
	// addition cannot overflow.
	l0, c = bits.Add64(l0, c*38, 0)
	l1, c = bits.Add64(l1, 0, c)
	l2, c = bits.Add64(l2, 0, c)
	l3, c = bits.Add64(l3, 0, c)
	l0 += c * 38

	*out = Element{l0, l1, l2, l3}
}

// feSub sets out = a - b.
func feSub(out, a, b *Element) {
	l0, bw := bits.Sub64(a.l0, b.l0, 0)
	l1, bw := bits.Sub64(a.l1, b.l1, bw)
	l2, bw := bits.Sub64(a.l2, b.l2, bw)
	l3, bw := bits.Sub64(a.l3, b.l3, bw)

	// A borrow added 2^256, which is 38 too much. A second borrow leaves l0
	// above 2^64-38, so the last subtraction cannot underflow.
	l0, bw = bits.Sub64(l0, bw*38, 0)
	l1, bw = bits.Sub64(l1, 0, bw)
	l2, bw = bits.Sub64(l2, 0, bw)
	l3, bw = bits.Sub64(l3, 0, bw)
	l0 -= bw * 38

	*out = Element{l0, l1, l2, l3}
}

// feMul sets out = a * b.
func feMul(out, a, b *Element) {
	x := [4]uint64{a.l0, a.l1, a.l2, a.l3}
	y := [4]uint64{b.l0, b.l1, b.l2, b.l3}

	// Schoolbook product into eight words. Each step adds two words to a
	// 128-bit product, which cannot overflow 128 bits.
	var r [8]uint64
	for i := range 4 {
		var carry uint64
		for j := range 4 {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, r[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			r[i+j] = lo
			carry = hi
		}
		r[i+4] = carry
	}

	*out = reduce512(&r)
}

// feSquare sets out = a * a.
func feSquare(out, a *Element) {
	feMul(out, a, a)
}

// reduce512 folds the 512-bit value r into four words using 2^256 = 38 mod p.
func reduce512(r *[8]uint64) Element {
	h0, m0 := bits.Mul64(r[4], 38)
	h1, m1 := bits.Mul64(r[5], 38)
	h2, m2 := bits.Mul64(r[6], 38)
	h3, m3 := bits.Mul64(r[7], 38)

	var c uint64
	m1, c = bits.Add64(m1, h0, 0)
	m2, c = bits.Add64(m2, h1, c)
	m3, c = bits.Add64(m3, h2, c)
	top := h3 + c

	l0, c := bits.Add64(r[0], m0, 0)
	l1, c := bits.Add64(r[1], m1, c)
	l2, c := bits.Add64(r[2], m2, c)
	l3, c := bits.Add64(r[3], m3, c)
	top += c

	// top is at most 39, so folding it once more can carry out at most once,
	// and that carry leaves l0 small.
	l0, c = bits.Add64(l0, top*38, 0)
	l1, c = bits.Add64(l1, 0, c)
	l2, c = bits.Add64(l2, 0, c)
	l3, c = bits.Add64(l3, 0, c)
	l0 += c * 38

	return Element{l0, l1, l2, l3}
}

// reduce reduces v modulo 2^255 - 19 and returns it.
func (v *Element) reduce() *Element {
	l0, l1, l2, l3 := v.l0, v.l1, v.l2, v.l3

	// Fold bit 255 twice: the first fold leaves v < 2^255 + 19, the second
	// leaves v < 2^255.
	for range 2 {
		var c uint64
		top := l3 >> 63
		l3 &= maskLow63Bits
		l0, c = bits.Add64(l0, top*19, 0)
		l1, c = bits.Add64(l1, 0, c)
		l2, c = bits.Add64(l2, 0, c)
		l3 += c
	}

	// If v >= 2^255 - 19, then v + 19 >= 2^255 and bit 255 of t is set. In
	// that case t - 2^255 = v - p is the reduced value.
	t0, c := bits.Add64(l0, 19, 0)
	t1, c := bits.Add64(l1, 0, c)
	t2, c := bits.Add64(l2, 0, c)
	t3 := l3 + c

	m := -(t3 >> 63)
	t3 &= maskLow63Bits

	v.l0 = (m & t0) | (^m & l0)
	v.l1 = (m & t1) | (^m & l1)
	v.l2 = (m & t2) | (^m & l2)
	v.l3 = (m & t3) | (^m & l3)
	return v
}
