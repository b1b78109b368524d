package ed25519core

import (
	"crypto/subtle"

	"github.com/AlexanderYastrebov/ed25519core/field"
)

//go:generate go run ./cmd/ed25519core gentable --output table_generated.go

// BasepointTableSize is the number of odd multiples [1]B, [3]B, ..., [255]B
// of the base point kept for [Point.ScalarBaseMult].
const BasepointTableSize = 128

// basepointOddMultiples is basepointOddMultiplesBytes decoded into the
// compiled field representation. It is read-only after package
// initialization.
var basepointOddMultiples = decodeBasepointTable(&basepointOddMultiplesBytes)

func decodeBasepointTable(b *[BasepointTableSize][3][32]byte) *[BasepointTableSize]precomputedPoint {
	table := new([BasepointTableSize]precomputedPoint)
	for i := range b {
		table[i].yMinusX.Set(fieldElementFromBytes(b[i][0][:]))
		table[i].yPlusX.Set(fieldElementFromBytes(b[i][1][:]))
		table[i].t2d.Set(fieldElementFromBytes(b[i][2][:]))
	}
	return table
}

// BasepointTableEntry is one entry of the base point table: an affine odd
// multiple (x, y) of B stored as y-x, y+x and 2d*x*y.
type BasepointTableEntry struct {
	YMinusX, YPlusX, T2d field.Element
}

// BasepointTable returns a copy of the decoded base point table. Entry i
// holds [2i+1]B.
func BasepointTable() []BasepointTableEntry {
	entries := make([]BasepointTableEntry, BasepointTableSize)
	for i := range basepointOddMultiples {
		e := &basepointOddMultiples[i]
		entries[i].YMinusX.Set(&e.yMinusX)
		entries[i].YPlusX.Set(&e.yPlusX)
		entries[i].T2d.Set(&e.t2d)
	}
	return entries
}

// GenerateBasepointTable computes the encodings stored in
// table_generated.go from the base point, by repeated addition of [2]B.
func GenerateBasepointTable() *[BasepointTableSize][3][32]byte {
	var b, b2, p Point
	var a affinePoint
	var pp precomputedPoint

	b.Generator()
	b2.Double(&b)
	p.Set(&b)

	out := new([BasepointTableSize][3][32]byte)
	for i := range out {
		pp.fromAffine(a.fromPoint(new(Point).normalize(&p)))
		pp.yMinusX.FillBytes(out[i][0][:])
		pp.yPlusX.FillBytes(out[i][1][:])
		pp.t2d.FillBytes(out[i][2][:])

		p.Add(&p, &b2)
	}
	return out
}

// lookupBasepoint sets v to [d]B for an odd digit d in -255..255, in
// constant time.
func (v *precomputedPoint) lookupBasepoint(d int32) *precomputedPoint {
	// mask is 0 for d >= 0 and -1 otherwise.
	mask := d >> 31
	abs := (d ^ mask) - mask
	idx := (abs - 1) >> 1

	v.yMinusX.One()
	v.yPlusX.One()
	v.t2d.Zero()
	for j := int32(0); j < BasepointTableSize; j++ {
		cond := subtle.ConstantTimeEq(j, idx)
		e := &basepointOddMultiples[j]
		v.yMinusX.Select(&e.yMinusX, &v.yMinusX, cond)
		v.yPlusX.Select(&e.yPlusX, &v.yPlusX, cond)
		v.t2d.Select(&e.t2d, &v.t2d, cond)
	}

	return v.condNegate(int(mask & 1))
}
