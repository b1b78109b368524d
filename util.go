package ed25519core

import (
	"math/big"

	"github.com/AlexanderYastrebov/ed25519core/field"
)

func fieldElementFromString(s string) *field.Element {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid fieldElement string")
	}
	return fieldElementFromBigInt(n)
}

func fieldElementFromBigInt(n *big.Int) *field.Element {
	return fieldElementFromBytes(bigIntBytes(n, 255))
}

func fieldElementFromBytes(x []byte) *field.Element {
	var buf [32]byte
	copy(buf[:], x)
	fe, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return fe
}

// bigIntBytes returns the 32-byte little-endian encoding of n, which must
// fit in maxBits bits.
func bigIntBytes(n *big.Int, maxBits int) []byte {
	if n == nil || n.Sign() < 0 {
		panic("n must be non-negative")
	}
	if n.BitLen() > maxBits {
		panic("n is too large")
	}
	var buf [32]byte
	return reverse(n.FillBytes(buf[:]))
}

func reverse(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
