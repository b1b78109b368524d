// Package addchain implements the fixed exponentiation chains modulo 2^255-19
// once for every field element representation.
//
// The chains take the same sequence of squarings and multiplications regardless
// of the input, so they run in constant time as long as the element operations do.
package addchain

// Element is the method set a field element representation must provide for
// the chains in this package. T is the element struct, and *T implements the
// methods.
type Element[T any] interface {
	*T
	Set(a *T) *T
	Zero() *T
	One() *T
	Add(a, b *T) *T
	Subtract(a, b *T) *T
	Negate(a *T) *T
	Multiply(x, y *T) *T
	Square(x *T) *T
	Select(a, b *T, cond int) *T
	Equal(u *T) int
	IsNegative() int
}

// squareN sets v = x^(2^n), and returns v. n must be positive.
func squareN[T any, E Element[T]](v, x E, n int) E {
	v.Square(x)
	for i := 1; i < n; i++ {
		v.Square(v)
	}
	return v
}

// pow2250 sets v = z^(2^250-1) and z11 = z^11.
//
// This is the shared prefix of [Invert] and [Pow22523]: 250 squarings and
// 10 multiplications.
func pow2250[T any, E Element[T]](v, z11, z E) {
	var z2, z9, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t T

	E(&z2).Square(z)                    // 2
	squareN[T, E](&t, &z2, 2)           // 8
	E(&z9).Multiply(&t, z)              // 9
	z11.Multiply(&z9, &z2)              // 11
	E(&t).Square(z11)                   // 22
	E(&z2_5_0).Multiply(&t, &z9)        // 2^5 - 2^0
	squareN[T, E](&t, &z2_5_0, 5)       // 2^10 - 2^5
	E(&z2_10_0).Multiply(&t, &z2_5_0)   // 2^10 - 2^0
	squareN[T, E](&t, &z2_10_0, 10)     // 2^20 - 2^10
	E(&z2_20_0).Multiply(&t, &z2_10_0)  // 2^20 - 2^0
	squareN[T, E](&t, &z2_20_0, 20)     // 2^40 - 2^20
	E(&t).Multiply(&t, &z2_20_0)        // 2^40 - 2^0
	squareN[T, E](&t, &t, 10)           // 2^50 - 2^10
	E(&z2_50_0).Multiply(&t, &z2_10_0)  // 2^50 - 2^0
	squareN[T, E](&t, &z2_50_0, 50)     // 2^100 - 2^50
	E(&z2_100_0).Multiply(&t, &z2_50_0) // 2^100 - 2^0
	squareN[T, E](&t, &z2_100_0, 100)   // 2^200 - 2^100
	E(&t).Multiply(&t, &z2_100_0)       // 2^200 - 2^0
	squareN[T, E](&t, &t, 50)           // 2^250 - 2^50
	v.Multiply(&t, &z2_50_0)            // 2^250 - 2^0
}

// Invert sets v = 1/z mod p, and returns v.
//
// Inversion is implemented as exponentiation with exponent p - 2. It uses the
// same sequence of 254 squarings and 11 multiplications as Curve25519.
// If z == 0, Invert returns v = 0.
func Invert[T any, E Element[T]](v, z E) E {
	var t, z11 T

	pow2250[T, E](&t, &z11, z)
	squareN[T, E](&t, &t, 5)    // 2^255 - 2^5
	return v.Multiply(&t, &z11) // 2^255 - 21
}

// Pow22523 sets v = x^((p-5)/8), and returns v. (p-5)/8 is 2^252-3.
func Pow22523[T any, E Element[T]](v, x E) E {
	var t, z11 T

	pow2250[T, E](&t, &z11, x)
	squareN[T, E](&t, &t, 2) // 2^252 - 2^2
	return v.Multiply(&t, x) // 2^252 - 3
}

// Absolute sets v to |u|, and returns v.
func Absolute[T any, E Element[T]](v, u E) E {
	var neg T
	E(&neg).Negate(u)
	return v.Select(&neg, u, u.IsNegative())
}

// SqrtRatio sets r to the non-negative square root of the ratio of u and v.
//
// If u/v is square, SqrtRatio returns r and 1. If u/v is not square, SqrtRatio
// sets r according to Section 4.3 of draft-irtf-cfrg-ristretto255-decaf448-00,
// and returns r and 0.
//
// The candidate checks run in the order correct, flipped, flipped_i, and r is
// replaced by r*sqrtM1 when either flipped check matched.
func SqrtRatio[T any, E Element[T]](r, u, v, sqrtM1 E) (E, int) {
	var t0, v2, uv3, uv7, rr, check, uNeg, rPrime T

	// r = (u * v3) * (u * v7)^((p-5)/8)
	E(&v2).Square(v)
	E(&uv3).Multiply(u, E(&t0).Multiply(&v2, v))
	E(&uv7).Multiply(&uv3, E(&t0).Square(&v2))
	E(&rr).Multiply(&uv3, Pow22523[T, E](&t0, &uv7))

	E(&check).Multiply(v, E(&t0).Square(&rr)) // check = v * r^2

	E(&uNeg).Negate(u)
	correctSignSqrt := E(&check).Equal(u)
	flippedSignSqrt := E(&check).Equal(&uNeg)
	flippedSignSqrtI := E(&check).Equal(E(&t0).Multiply(&uNeg, sqrtM1))

	E(&rPrime).Multiply(&rr, sqrtM1) // r_prime = SQRT_M1 * r
	// r = CT_SELECT(r_prime IF flipped_sign_sqrt | flipped_sign_sqrt_i ELSE r)
	E(&rr).Select(&rPrime, &rr, flippedSignSqrt|flippedSignSqrtI)

	Absolute[T, E](r, &rr) // Choose the nonnegative square root.
	return r, correctSignSqrt | flippedSignSqrt
}
