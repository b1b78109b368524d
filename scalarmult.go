package ed25519core

import (
	"fmt"
)

// checkScalar returns an error if x is not a 32-byte scalar encoding.
func checkScalar(x []byte) error {
	if len(x) != 32 {
		str := fmt.Sprintf("invalid scalar length %d", len(x))
		return makeError(ErrInvalidLength, str)
	}
	return nil
}

// basepointDigits recodes the odd 256-bit scalar s into 33 odd digits d[i]
// in -255..255 such that s = sum(d[i] * 256^i). The top digit d[32] is
// always 1 and is not returned.
//
// Bit 0 of every byte above the lowest decides whether the digit below it
// borrows 256: an even byte b[i+1] leaves d[i] = (b[i]|1) - 256 and is itself
// rounded up to an odd value.
func basepointDigits(s *[32]byte) [32]int32 {
	var digits [32]int32
	for i := range 31 {
		digits[i] = int32(s[i]|1) + int32(s[i+1]&1)<<8 - 256
	}
	digits[31] = int32(s[31]|1) - 256
	return digits
}

// ScalarBaseMult sets v = [x]B, where B is the canonical generator, and
// returns v.
//
// The scalar x is a 32-byte little-endian integer and it is not reduced.
// ScalarBaseMult runs in constant time.
func (v *Point) ScalarBaseMult(x []byte) (*Point, error) {
	if err := checkScalar(x); err != nil {
		return nil, err
	}

	// Force the scalar odd, so that it has a recoding in odd digits only,
	// and subtract B at the end if it was even.
	var s [32]byte
	copy(s[:], x)
	even := 1 - int(s[0]&1)
	s[0] |= 1

	digits := basepointDigits(&s)

	var p Point
	var pp projectivePoint
	var r partialPoint
	var q precomputedPoint

	// The implicit top digit is 1.
	p.Generator()
	for i := 31; i >= 0; i-- {
		pp.fromPoint(&p)
		for range 7 {
			pp.fromPartial(r.double(&pp))
		}
		p.fromPartial(r.double(&pp))
		p.fromPartial(r.addPrecomputed(&p, q.lookupBasepoint(digits[i])))
	}

	var t Point
	t.fromPartial(r.subPrecomputed(&p, &basepointOddMultiples[0]))

	return v.selectPoint(&t, &p, even), nil
}

// ScalarMult sets v = [x]q, and returns v.
//
// The scalar x is a 32-byte little-endian integer and it is not reduced.
// ScalarMult runs in constant time: it adds q at every bit and keeps the sum
// only where the bit is set.
func (v *Point) ScalarMult(x []byte, q *Point) (*Point, error) {
	if err := checkScalar(x); err != nil {
		return nil, err
	}

	var qq, acc, sum Point
	qq.Set(q)
	acc.Identity()

	for i := 255; i >= 0; i-- {
		acc.Double(&acc)
		sum.Add(&acc, &qq)
		bit := int(x[i/8]>>(i%8)) & 1
		acc.selectPoint(&sum, &acc, bit)
	}

	return v.Set(&acc), nil
}

// VarTimeDoubleScalarBaseMult sets v = [a]A + [b]B, where B is the canonical
// generator, and returns v.
//
// Execution time depends on the inputs.
func (v *Point) VarTimeDoubleScalarBaseMult(a []byte, A *Point, b []byte) (*Point, error) {
	if err := checkScalar(a); err != nil {
		return nil, err
	}
	if err := checkScalar(b); err != nil {
		return nil, err
	}
	return v.straus([][]byte{a, b}, []*Point{A, NewGeneratorPoint()}), nil
}

// selectPoint sets v to a if cond == 1, and to b if cond == 0.
func (v *Point) selectPoint(a, b *Point, cond int) *Point {
	v.x.Select(&a.x, &b.x, cond)
	v.y.Select(&a.y, &b.y, cond)
	v.t.Select(&a.t, &b.t, cond)
	v.z.Select(&a.z, &b.z, cond)
	return v
}
