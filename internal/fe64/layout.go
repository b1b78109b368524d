package fe64

import "unsafe"

// Size is the in-memory size of Element: four uint64 limbs at byte offsets
// 0, 8, 16 and 24, least significant first. The layout matches the
// little-endian encoding of the value on little-endian targets.
const Size = 32

var (
	_ [Size - unsafe.Sizeof(Element{})]struct{}
	_ [unsafe.Sizeof(Element{}) - Size]struct{}
)
