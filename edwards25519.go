package ed25519core

import (
	"filippo.io/edwards25519"
)

// ToEdwards25519 returns v as a [edwards25519.Point]. It panics if v is not
// on the curve, which is only possible for points built from unchecked
// coordinates.
func (v *Point) ToEdwards25519() *edwards25519.Point {
	p, err := new(edwards25519.Point).SetBytes(v.Bytes())
	if err != nil {
		panic(err)
	}
	return p
}

// FromEdwards25519 sets v = p, and returns v.
func (v *Point) FromEdwards25519(p *edwards25519.Point) *Point {
	if _, err := v.SetBytes(p.Bytes()); err != nil {
		panic(err)
	}
	return v
}
