package ed25519core

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidLength is returned when a point or scalar encoding is not
	// 32 bytes long.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidPointEncoding is returned when the encoded y-coordinate has
	// no matching x-coordinate on the curve.
	ErrInvalidPointEncoding = ErrorKind("ErrInvalidPointEncoding")

	// ErrInvalidCoordinates is returned when extended coordinates have
	// Z = 0 or do not satisfy X*Y = Z*T.
	ErrInvalidCoordinates = ErrorKind("ErrInvalidCoordinates")

	// ErrMismatchedLengths is returned when the scalars and points passed to
	// a multi-scalar multiplication differ in number.
	ErrMismatchedLengths = ErrorKind("ErrMismatchedLengths")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to point encoding or scalar
// multiplication. It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
