//go:build arm64 && !purego

package field

import "github.com/AlexanderYastrebov/ed25519core/internal/fe64"

// Element represents an element of the field GF(2^255-19).
//
// The zero value is a valid zero element.
type Element = fe64.Element

// Backend names the limb representation bound to [Element].
const Backend = "fe64"
