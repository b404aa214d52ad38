package uuidb64

import "encoding/base64"

const (
	// Size is the number of raw bytes in an identifier.
	Size = 16
	// EncodedLen is the length of the canonical text form.
	EncodedLen = 22
)

// textEncoding is the only base64 configuration used by this package: URL-safe
// alphabet, no padding, no line wrapping, zero trailing bits.
var textEncoding = base64.RawURLEncoding.Strict()

// Encode returns the canonical 22 character text form of b.
func Encode(b [Size]byte) string {
	return textEncoding.EncodeToString(b[:])
}

// AppendEncode appends the canonical text form of b to dst.
func AppendEncode(dst []byte, b [Size]byte) []byte {
	return textEncoding.AppendEncode(dst, b[:])
}

// Decode converts canonical text back into 16 raw bytes. It fails with
// *DecodeError when s contains a character outside the URL-safe alphabet,
// does not decode to exactly 16 bytes, or carries non-zero trailing bits.
func Decode(s string) ([Size]byte, error) {
	var out [Size]byte
	// the stdlib decoder skips '\r' and '\n', so the alphabet is checked here first
	for i := 0; i < len(s); i++ {
		if !isAlphabet(s[i]) {
			return out, &DecodeError{Kind: InvalidCharacter, Offset: i, Char: s[i], Length: len(s)}
		}
	}
	if len(s) != EncodedLen {
		return out, &DecodeError{Kind: InvalidLength, Offset: -1, Length: len(s)}
	}
	n, err := textEncoding.Decode(out[:], []byte(s))
	if err != nil {
		offset := -1
		if corrupt, ok := err.(base64.CorruptInputError); ok {
			offset = int(corrupt)
		}
		return [Size]byte{}, &DecodeError{Kind: NonCanonical, Offset: offset, Length: len(s)}
	}
	if n != Size {
		return [Size]byte{}, &DecodeError{Kind: InvalidLength, Offset: -1, Length: len(s)}
	}
	return out, nil
}

func isAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
	case c >= 'a' && c <= 'z':
	case c >= '0' && c <= '9':
	case c == '-' || c == '_':
	default:
		return false
	}
	return true
}
