//go:build amd64.v3 && !amd64.v4 && !purego

package field

import "github.com/AlexanderYastrebov/ed25519core/internal/fe2526"

// Element represents an element of the field GF(2^255-19).
//
// The zero value is a valid zero element.
type Element = fe2526.Element

// Backend names the limb representation bound to [Element].
const Backend = "fe2526"
