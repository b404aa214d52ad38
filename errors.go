package uuidb64

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by DecodeError through errors.Is.
var (
	// ErrInvalidCharacter is reported when text contains a character outside
	// the URL-safe base64 alphabet (including '=' padding and line breaks).
	ErrInvalidCharacter = errors.New("uuidb64: invalid character")

	// ErrInvalidLength is reported when text does not decode to exactly 16 bytes.
	ErrInvalidLength = errors.New("uuidb64: invalid length")

	// ErrNonCanonical is reported when the last character carries non-zero
	// trailing bits, i.e. the text is not the one Encode would produce.
	ErrNonCanonical = errors.New("uuidb64: non-canonical encoding")
)

// DecodeErrorKind classifies a decode failure.
type DecodeErrorKind int

const (
	// InvalidCharacter marks a character outside the URL-safe alphabet.
	InvalidCharacter DecodeErrorKind = iota + 1
	// InvalidLength marks text that is not exactly 22 characters long.
	InvalidLength
	// NonCanonical marks text whose last character has non-zero trailing bits.
	NonCanonical
)

func (k DecodeErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "invalid character"
	case InvalidLength:
		return "invalid length"
	case NonCanonical:
		return "non-canonical encoding"
	}
	return fmt.Sprintf("DecodeErrorKind(%d)", int(k))
}

// DecodeError is returned by Decode.
type DecodeError struct {
	Kind DecodeErrorKind
	// Offset is the position of the offending character, or -1 when the
	// failure is not tied to a single character.
	Offset int
	// Char is the offending character for InvalidCharacter.
	Char byte
	// Length is the length of the rejected input.
	Length int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("uuidb64: invalid character %q at offset %d", e.Char, e.Offset)
	case InvalidLength:
		return fmt.Sprintf("uuidb64: invalid length %d, expected %d", e.Length, EncodedLen)
	}
	return "uuidb64: " + e.Kind.String()
}

// Is reports whether target is the sentinel matching e.Kind.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrInvalidCharacter:
		return e.Kind == InvalidCharacter
	case ErrInvalidLength:
		return e.Kind == InvalidLength
	case ErrNonCanonical:
		return e.Kind == NonCanonical
	}
	return false
}

// ParseError is returned when text cannot be parsed into a UUID. Callers
// handling untrusted input should treat it as a malformed identifier.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uuidb64: invalid identifier text %q", e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
