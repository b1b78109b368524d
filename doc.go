// Package ed25519core implements the group logic of the [twisted Edwards curve]
//
//	-x^2 + y^2 = 1 + -(121665/121666)*x^2*y^2
//
// on top of the GF(2^255-19) field in package [field], whose limb
// representation is chosen at build time.
//
// The package provides point addition, doubling and their cheaper variants,
// point encoding, fixed-base scalar multiplication from a precomputed table of
// 128 odd multiples of the base point, and variable-base scalar multiplication.
//
// Functions prefixed with VarTime are not constant time and must only be used
// with public inputs.
//
// [twisted Edwards curve]: https://eprint.iacr.org/2008/522
package ed25519core
