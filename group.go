package ed25519core

import "github.com/AlexanderYastrebov/ed25519core/field"

// The addition formulas come from https://eprint.iacr.org/2008/522
// (add-2008-hwcd-3 and dbl-2008-hwcd with a = -1). Every variant stops before
// the last four multiplications and leaves the sum in a partialPoint, which
// is then converted to the representation the next step needs.

// partialPoint is a sum or double whose last multiplications are still
// pending. It represents the point (X*Y : Z*T : Y*Z : X*T).
type partialPoint struct {
	X, Y, Z, T field.Element
}

// projectivePoint is (X : Y : Z) with x = X/Z and y = Y/Z. Doubling needs
// nothing more.
type projectivePoint struct {
	X, Y, Z field.Element
}

// affinePoint is a point with Z = 1.
type affinePoint struct {
	x, y, t field.Element
}

// precomputedPoint is an affine point prepared as an addition operand.
type precomputedPoint struct {
	yMinusX, yPlusX, t2d field.Element
}

// fromPartial sets v to p, and returns v.
//
// Complexity: 4M
func (v *Point) fromPartial(p *partialPoint) *Point {
	v.x.Multiply(&p.X, &p.Y)
	v.y.Multiply(&p.Z, &p.T)
	v.t.Multiply(&p.X, &p.T)
	v.z.Multiply(&p.Y, &p.Z)
	return v
}

// fromPartial sets v to p dropping T, and returns v.
//
// Complexity: 3M
func (v *projectivePoint) fromPartial(p *partialPoint) *projectivePoint {
	v.X.Multiply(&p.X, &p.Y)
	v.Y.Multiply(&p.Z, &p.T)
	v.Z.Multiply(&p.Y, &p.Z)
	return v
}

func (v *projectivePoint) fromPoint(p *Point) *projectivePoint {
	v.X.Set(&p.x)
	v.Y.Set(&p.y)
	v.Z.Set(&p.z)
	return v
}

// fromPoint sets v to p, which must already have z = 1.
func (v *affinePoint) fromPoint(p *Point) *affinePoint {
	v.x.Set(&p.x)
	v.y.Set(&p.y)
	v.t.Set(&p.t)
	return v
}

// fromAffine sets v to p prepared for addition, and returns v.
func (v *precomputedPoint) fromAffine(p *affinePoint) *precomputedPoint {
	v.yMinusX.Subtract(&p.y, &p.x)
	v.yPlusX.Add(&p.y, &p.x)
	v.t2d.Multiply(&p.t, _2d)
	return v
}

// condNegate sets v = -v if cond == 1 and leaves it unchanged if cond == 0.
func (v *precomputedPoint) condNegate(cond int) *precomputedPoint {
	var neg field.Element
	v.yMinusX.Swap(&v.yPlusX, cond)
	neg.Negate(&v.t2d)
	v.t2d.Select(&neg, &v.t2d, cond)
	return v
}

// add sets v = p + q, and returns v.
//
// Complexity: 5M + 8A
func (v *partialPoint) add(p, q *Point) *partialPoint {
	var a, b, c, d, t field.Element

	a.Subtract(&p.y, &p.x)
	t.Subtract(&q.y, &q.x)
	a.Multiply(&a, &t) // (Y1-X1)*(Y2-X2)

	b.Add(&p.y, &p.x)
	t.Add(&q.y, &q.x)
	b.Multiply(&b, &t) // (Y1+X1)*(Y2+X2)

	c.Multiply(&p.t, _2d)
	c.Multiply(&c, &q.t) // T1*2d*T2

	d.Multiply(&p.z, &q.z)
	d.Add(&d, &d) // 2*Z1*Z2

	return v.combine(&a, &b, &c, &d, 0)
}

// sub sets v = p - q, and returns v.
//
// Complexity: 5M + 8A
func (v *partialPoint) sub(p, q *Point) *partialPoint {
	var a, b, c, d, t field.Element

	a.Subtract(&p.y, &p.x)
	t.Add(&q.y, &q.x)
	a.Multiply(&a, &t)

	b.Add(&p.y, &p.x)
	t.Subtract(&q.y, &q.x)
	b.Multiply(&b, &t)

	c.Multiply(&p.t, _2d)
	c.Multiply(&c, &q.t)

	d.Multiply(&p.z, &q.z)
	d.Add(&d, &d)

	return v.combine(&a, &b, &c, &d, 1)
}

// addAffine sets v = p + q where q has z = 1, and returns v.
//
// Complexity: 4M + 8A
func (v *partialPoint) addAffine(p *Point, q *affinePoint) *partialPoint {
	var a, b, c, d, t field.Element

	a.Subtract(&p.y, &p.x)
	t.Subtract(&q.y, &q.x)
	a.Multiply(&a, &t)

	b.Add(&p.y, &p.x)
	t.Add(&q.y, &q.x)
	b.Multiply(&b, &t)

	c.Multiply(&p.t, _2d)
	c.Multiply(&c, &q.t)

	d.Add(&p.z, &p.z)

	return v.combine(&a, &b, &c, &d, 0)
}

// subAffine sets v = p - q where q has z = 1, and returns v.
//
// Complexity: 4M + 8A
func (v *partialPoint) subAffine(p *Point, q *affinePoint) *partialPoint {
	var a, b, c, d, t field.Element

	a.Subtract(&p.y, &p.x)
	t.Add(&q.y, &q.x)
	a.Multiply(&a, &t)

	b.Add(&p.y, &p.x)
	t.Subtract(&q.y, &q.x)
	b.Multiply(&b, &t)

	c.Multiply(&p.t, _2d)
	c.Multiply(&c, &q.t)

	d.Add(&p.z, &p.z)

	return v.combine(&a, &b, &c, &d, 1)
}

// addPrecomputed sets v = p + q, and returns v.
//
// Complexity: 3M + 6A
func (v *partialPoint) addPrecomputed(p *Point, q *precomputedPoint) *partialPoint {
	var a, b, c, d field.Element

	a.Subtract(&p.y, &p.x)
	a.Multiply(&a, &q.yMinusX)

	b.Add(&p.y, &p.x)
	b.Multiply(&b, &q.yPlusX)

	c.Multiply(&p.t, &q.t2d)

	d.Add(&p.z, &p.z)

	return v.combine(&a, &b, &c, &d, 0)
}

// subPrecomputed sets v = p - q, and returns v.
//
// Complexity: 3M + 6A
func (v *partialPoint) subPrecomputed(p *Point, q *precomputedPoint) *partialPoint {
	var a, b, c, d field.Element

	a.Subtract(&p.y, &p.x)
	a.Multiply(&a, &q.yPlusX)

	b.Add(&p.y, &p.x)
	b.Multiply(&b, &q.yMinusX)

	c.Multiply(&p.t, &q.t2d)

	d.Add(&p.z, &p.z)

	return v.combine(&a, &b, &c, &d, 1)
}

// combine sets v = (B-A, D-C, D+C, B+A). If neg == 1 the sign of C is
// flipped, which turns an addition of q into a subtraction.
func (v *partialPoint) combine(a, b, c, d *field.Element, neg int) *partialPoint {
	v.X.Subtract(b, a)
	v.T.Add(b, a)
	v.Y.Subtract(d, c)
	v.Z.Add(d, c)
	v.Y.Swap(&v.Z, neg)
	return v
}

// double sets v = p + p, and returns v.
//
// Complexity: 4S + 6A
func (v *partialPoint) double(p *projectivePoint) *partialPoint {
	var xx, yy, zz2, xPlusYSq field.Element

	xx.Square(&p.X)
	yy.Square(&p.Y)
	zz2.Square(&p.Z)
	zz2.Add(&zz2, &zz2)
	xPlusYSq.Add(&p.X, &p.Y)
	xPlusYSq.Square(&xPlusYSq)

	v.T.Add(&xx, &yy)
	v.Z.Subtract(&xx, &yy)
	v.Y.Add(&zz2, &v.Z)
	v.X.Subtract(&v.T, &xPlusYSq)
	return v
}
