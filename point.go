package ed25519core

import "github.com/AlexanderYastrebov/ed25519core/field"

// Curve constants.
var (
	// Constant 1
	_1 = new(field.Element).One()
	// d = -121665/121666
	_d = fieldElementFromString("37095705934669439343138083508754565189542113879843219016388785533085940283555")
	// 2*d
	_2d = fieldElementFromString("16295367250680780974490674513165176452449235426866156013048779062215315747161")
)

// Base point B = (x, 4/5) with positive x.
var (
	_Bx = fieldElementFromString("15112221349535400772501151409588531511454012693041857206046113283949847762202")
	_By = fieldElementFromString("46316835694926478169428394003475163141307993866256225615783033603165251855960")
)

// incomparable prevents a struct from being compared with == or used as a map
// key, since equal points can be represented by different Go values.
type incomparable [0]func()

// Point represents a point on the edwards25519 curve.
//
// This type works similarly to math/big.Int, and all arguments and receivers
// are allowed to alias.
//
// The zero value is NOT valid, and it may be used only as a receiver.
type Point struct {
	_ incomparable

	// The point is internally represented in extended coordinates (X, Y, T, Z)
	// where x = X/Z, y = Y/Z, and xy = T/Z per https://eprint.iacr.org/2008/522.
	x, y, t, z field.Element
}

// NewIdentityPoint returns a new Point set to the identity.
func NewIdentityPoint() *Point {
	return new(Point).Identity()
}

// Identity sets v to the identity point (0, 1), and returns v.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()
	v.t.Zero()
	v.z.One()
	return v
}

// NewGeneratorPoint returns a new Point set to the canonical generator.
func NewGeneratorPoint() *Point {
	return new(Point).Generator()
}

// Generator sets v to the canonical generator B, and returns v.
func (v *Point) Generator() *Point {
	return v.SetAffineCoordinates(_Bx, _By)
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// SetAffineCoordinates sets v = (x, y) with z = 1, and returns v.
//
// It does not check that (x, y) is on the curve.
func (v *Point) SetAffineCoordinates(x, y *field.Element) *Point {
	v.x.Set(x)
	v.y.Set(y)
	v.t.Multiply(x, y)
	v.z.One()
	return v
}

// SetExtendedCoordinates sets v = (X, Y, Z, T) in extended coordinates where
// x = X/Z, y = Y/Z, and xy = T/Z.
//
// If the coordinates are invalid, SetExtendedCoordinates returns nil and an
// error and the receiver is unchanged. Only X*Y = Z*T and Z != 0 are checked,
// not that the point is on the curve.
func (v *Point) SetExtendedCoordinates(X, Y, Z, T *field.Element) (*Point, error) {
	var xy, zt field.Element
	xy.Multiply(X, Y)
	zt.Multiply(Z, T)
	if Z.IsZero() == 1 || xy.Equal(&zt) != 1 {
		return nil, makeError(ErrInvalidCoordinates, "invalid extended coordinates")
	}
	v.x.Set(X)
	v.y.Set(Y)
	v.t.Set(T)
	v.z.Set(Z)
	return v, nil
}

// ExtendedCoordinates returns v in extended coordinates (X:Y:Z:T) where
// x = X/Z, y = Y/Z, and xy = T/Z as in https://eprint.iacr.org/2008/522.
func (v *Point) ExtendedCoordinates() (X, Y, Z, T *field.Element) {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var e [4]field.Element
	X, Y, Z, T = v.extendedCoordinates(&e)
	return
}

func (v *Point) extendedCoordinates(e *[4]field.Element) (X, Y, Z, T *field.Element) {
	e[0].Set(&v.x)
	e[1].Set(&v.y)
	e[2].Set(&v.z)
	e[3].Set(&v.t)
	return &e[0], &e[1], &e[2], &e[3]
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	var r partialPoint
	return v.fromPartial(r.add(p, q))
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	var r partialPoint
	return v.fromPartial(r.sub(p, q))
}

// Double sets v = p + p, and returns v.
func (v *Point) Double(p *Point) *Point {
	var pp projectivePoint
	var r partialPoint
	return v.fromPartial(r.double(pp.fromPoint(p)))
}

// DoubleN sets v = [2^n]p, and returns v.
func (v *Point) DoubleN(p *Point, n int) *Point {
	if n <= 0 {
		return v.Set(p)
	}
	var pp projectivePoint
	var r partialPoint
	pp.fromPoint(p)
	for range n - 1 {
		pp.fromPartial(r.double(&pp))
	}
	return v.fromPartial(r.double(&pp))
}

// MultByCofactor sets v = 8 * p, and returns v.
func (v *Point) MultByCofactor(p *Point) *Point {
	return v.DoubleN(p, 3)
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.t.Negate(&p.t)
	v.z.Set(&p.z)
	return v
}

// Equal returns 1 if v is equivalent to u, and 0 otherwise.
func (v *Point) Equal(u *Point) int {
	var t1, t2, t3, t4 field.Element
	t1.Multiply(&v.x, &u.z)
	t2.Multiply(&u.x, &v.z)
	t3.Multiply(&v.y, &u.z)
	t4.Multiply(&u.y, &v.z)

	return t1.Equal(&t2) & t3.Equal(&t4)
}

// EqualNegated returns 1 if -v and u represent the same ristretto255 element,
// and 0 otherwise. In particular it returns 1 for u = -v.
//
// https://ristretto.group/details/equality.html
func (v *Point) EqualNegated(u *Point) int {
	var neg, t1, t2 field.Element
	neg.Negate(&v.x)

	t1.Multiply(&neg, &u.y)
	t2.Multiply(&u.x, &v.y)
	xx := t1.Equal(&t2)

	t1.Multiply(&neg, &u.x)
	t2.Multiply(&v.y, &u.y)
	yy := t1.Equal(&t2)

	return xx | yy
}

// IsIdentity returns 1 if v is the identity point, and 0 otherwise.
func (v *Point) IsIdentity() int {
	return v.x.IsZero() & v.y.Equal(&v.z)
}

// IsSmallOrder returns 1 if the order of v divides 8, and 0 otherwise.
//
// There are 8 such points: the identity, (0, -1), (+-sqrt(-1), 0) and four
// points of order 8.
func (v *Point) IsSmallOrder() int {
	var r Point
	return r.MultByCofactor(v).IsIdentity()
}
