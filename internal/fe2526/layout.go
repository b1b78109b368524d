package fe2526

import "unsafe"

// Size is the in-memory size of Element: ten int32 limbs, limb i at byte
// offset 4*i, least significant first.
const Size = 40

var (
	_ [Size - unsafe.Sizeof(Element{})]struct{}
	_ [unsafe.Sizeof(Element{}) - Size]struct{}
)
