package uuidb64

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/viant/uuidb64/internal/idgen"
)

// UUID is a 128-bit identifier whose textual form is the 22 character,
// URL-safe, unpadded base64 encoding of its bytes. It is comparable and can be
// used directly as a map key; any 128-bit value is accepted, not only v4.
type UUID [Size]byte

// Nil is the all-zero UUID.
var Nil UUID

// New returns a fresh random (version 4) UUID.
func New() UUID {
	return UUID(idgen.New())
}

// FromUUID wraps a raw uuid.UUID of any version.
func FromUUID(u uuid.UUID) UUID {
	return UUID(u)
}

// FromBytes copies exactly 16 raw bytes into a UUID.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("uuidb64: invalid byte length %d, expected %d", len(b), Size)
	}
	var u UUID
	copy(u[:], b)
	return u, nil
}

// Parse decodes the canonical text form. On failure it returns a *ParseError
// carrying s and wrapping the underlying *DecodeError.
func Parse(s string) (UUID, error) {
	b, err := Decode(s)
	if err != nil {
		return Nil, &ParseError{Text: s, Err: err}
	}
	return UUID(b), nil
}

// MustParse is like Parse but panics on malformed text. It simplifies safe
// initialization of global variables holding known identifiers.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// ParseHex parses the conventional hyphenated hex form (and the other forms
// accepted by uuid.Parse).
func ParseHex(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, &ParseError{Text: s, Err: err}
	}
	return UUID(u), nil
}

// UUID returns the underlying raw identifier unchanged.
func (u UUID) UUID() uuid.UUID {
	return uuid.UUID(u)
}

// Bytes returns a copy of the 16 raw bytes.
func (u UUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// IsZero reports whether u is Nil.
func (u UUID) IsZero() bool {
	return u == Nil
}

// String returns the canonical text form.
func (u UUID) String() string {
	return Encode(u)
}

// GoString labels the text form so it is not mistaken for another
// identifier format in debug output (%#v).
func (u UUID) GoString() string {
	return "UuidB64(" + Encode(u) + ")"
}

// Hex returns the hyphenated lowercase hex form used by databases' native
// UUID columns.
func (u UUID) Hex() string {
	return uuid.UUID(u).String()
}

// Hash returns a deterministic 64-bit hash of the raw bytes, stable across
// processes.
func (u UUID) Hash() uint64 {
	return xxhash.Sum64(u[:])
}

// Compare orders identifiers by their raw bytes.
func (u UUID) Compare(other UUID) int {
	return bytes.Compare(u[:], other[:])
}
