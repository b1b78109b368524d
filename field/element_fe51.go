//go:build purego || (!amd64.v3 && !arm64)

package field

import "github.com/AlexanderYastrebov/ed25519core/internal/fe51"

// Element represents an element of the field GF(2^255-19).
//
// The zero value is a valid zero element.
type Element = fe51.Element

// Backend names the limb representation bound to [Element].
const Backend = "fe51"
