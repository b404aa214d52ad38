// Package uuidb64 provides a UUID value type whose textual form is the
// compact, URL-safe, unpadded base64 encoding of its 16 bytes.
//
// A UUID keeps the usual properties of 128-bit identifiers (fixed size,
// coordination-free generation, native database column support) but prints
// as 22 case-sensitive characters instead of 36 hex digits:
//
//	id := uuidb64.FromUUID(uuid.MustParse("b0c1ee86-6f46-4f1b-8d8b-7849e75dbcee"))
//	fmt.Println(id)            // sMHuhm9GTxuNi3hJ51287g
//	same, _ := uuidb64.Parse("sMHuhm9GTxuNi3hJ51287g")
//	fmt.Println(same == id)    // true
//
// The text form is the only representation used by String, MarshalText,
// MarshalJSON and MarshalYAML. Values stored through database/sql use the
// hyphenated hex form so they fit native UUID columns; the sqlite sub-package
// registers SQL functions translating between the two forms for ad-hoc queries.
package uuidb64
