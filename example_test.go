package ed25519core_test

import (
	"encoding/hex"
	"fmt"

	"github.com/AlexanderYastrebov/ed25519core"
)

func ExamplePoint_ScalarBaseMult() {
	scalar, _ := hex.DecodeString("0200000000000000000000000000000000000000000000000000000000000000")

	p, err := new(ed25519core.Point).ScalarBaseMult(scalar)
	if err != nil {
		panic(err)
	}

	fmt.Printf("[2]B: %x\n", p.Bytes())
	fmt.Printf("B + B: %x\n", new(ed25519core.Point).Double(ed25519core.NewGeneratorPoint()).Bytes())
	// Output:
	// [2]B: c9a3f86aae465f0e56513864510f3997561fa2c9e85ea21dc2292309f3cd6022
	// B + B: c9a3f86aae465f0e56513864510f3997561fa2c9e85ea21dc2292309f3cd6022
}

func ExamplePoint_SetBytes() {
	enc, _ := hex.DecodeString("0200000000000000000000000000000000000000000000000000000000000000")

	_, err := new(ed25519core.Point).SetBytes(enc)
	fmt.Println(err)
	// Output:
	// y-coordinate has no matching x-coordinate
}

func ExamplePoint_BytesMontgomery() {
	fmt.Printf("%x\n", ed25519core.NewGeneratorPoint().BytesMontgomery())
	// Output:
	// 0900000000000000000000000000000000000000000000000000000000000000
}
