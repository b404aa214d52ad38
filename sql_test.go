package uuidb64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	value, err := MustParse(knownText).Value()
	require.NoError(t, err)
	assert.Equal(t, knownHex, value)
}

func TestScan(t *testing.T) {
	known := MustParse(knownText)
	tests := []struct {
		name     string
		src      interface{}
		expected UUID
	}{
		{name: "nil", src: nil, expected: Nil},
		{name: "empty text", src: "", expected: Nil},
		{name: "canonical text", src: knownText, expected: known},
		{name: "canonical text bytes", src: []byte(knownText), expected: known},
		{name: "hex text", src: knownHex, expected: known},
		{name: "hex text bytes", src: []byte(knownHex), expected: known},
		{name: "upper hex", src: "B0C1EE86-6F46-4F1B-8D8B-7849E75DBCEE", expected: known},
		{name: "raw bytes", src: known.Bytes(), expected: known},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := New()
			require.NoError(t, actual.Scan(tc.src))
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestScan_Errors(t *testing.T) {
	var id UUID
	assert.EqualError(t, id.Scan(42), "uuidb64: unable to scan type int into UUID")
	assert.True(t, IsParseError(id.Scan("sMHuhm9GTxuNi3hJ5128+g")))
	assert.True(t, IsParseError(id.Scan("not-a-uuid")))
	assert.True(t, IsParseError(id.Scan([]byte{1, 2, 3})))
	assert.True(t, id.IsZero())
}

func TestScan_SixteenBytesAreRaw(t *testing.T) {
	text := "ABCDEFGHIJKLMNOP"

	var fromBytes UUID
	require.NoError(t, fromBytes.Scan([]byte(text)))
	assert.Equal(t, "QUJDREVGR0hJSktMTU5PUA", fromBytes.String())

	var fromString UUID
	assert.True(t, IsParseError(fromString.Scan(text)))
	assert.True(t, fromString.IsZero())
}
