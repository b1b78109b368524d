package fe43

import "unsafe"

// Size is the in-memory size of Element: six uint64 limbs at byte offsets
// 0, 8, 16, 24, 32 and 40, least significant first, followed by two zero
// lanes, for one 512-bit vector in total.
const Size = 64

var (
	_ [Size - unsafe.Sizeof(Element{})]struct{}
	_ [unsafe.Sizeof(Element{}) - Size]struct{}
)
