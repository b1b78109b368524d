package fe51

import "unsafe"

// Size is the in-memory size of Element: five uint64 limbs at byte offsets
// 0, 8, 16, 24 and 32, least significant first.
const Size = 40

var (
	_ [Size - unsafe.Sizeof(Element{})]struct{}
	_ [unsafe.Sizeof(Element{}) - Size]struct{}
)
