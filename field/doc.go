// Package field implements fast arithmetic modulo 2^255-19.
//
// [Element] type API is the same as [filippo.io/edwards25519/field.Element].
//
// Backends:
// Element is an alias for one of four limb representations, chosen at
// build time by the target's capability level. The widest available
// representation wins:
//
//	GOAMD64=v4          6 x 43-bit limbs    ("fe43")
//	GOAMD64=v3          10 x 25.5-bit limbs ("fe2526")
//	GOARCH=arm64        4 x 64-bit limbs    ("fe64")
//	otherwise, purego   5 x 51-bit limbs    ("fe51")
//
// All representations compute bit-identical encodings for the same sequence
// of operations, so the choice only affects speed. [Backend] names the one
// compiled in. The selection never changes at runtime.
package field
