package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEscapes_NamedEscapes(t *testing.T) {
	cases := map[string]string{
		`a\nb`:   "a\nb",
		`a\tb`:   "a\tb",
		`a\\b`:   `a\b`,
		`a\'b`:   "a'b",
		`a\"b`:   `a"b`,
		"a\\`b":  "a`b",
		`a\0b`:   "a\x00b",
		`no esc`: "no esc",
	}
	for in, want := range cases {
		assert.Equal(t, want, DecodeEscapes(in), "input %q", in)
	}
}

func TestDecodeEscapes_Hex(t *testing.T) {
	assert.Equal(t, "=", DecodeEscapes(`\x3d`))
	assert.Equal(t, "A=B", DecodeEscapes(`A\x3dB`))
}

func TestDecodeEscapes_Unicode(t *testing.T) {
	assert.Equal(t, "=", DecodeEscapes(`\`+`u003d`))
	assert.Equal(t, "=", DecodeEscapes(`\u{3D}`))
	assert.Equal(t, "==", DecodeEscapes(`\`+`u003d\u{3d}`))
}

func TestDecodeEscapes_LegacyOctal(t *testing.T) {
	assert.Equal(t, "=", DecodeEscapes(`\075`))
}

func TestDecodeEscapes_InvalidEscapePassesThrough(t *testing.T) {
	assert.Equal(t, `\q`, DecodeEscapes(`\q`))
}

func TestDecodeEscapes_LineContinuation(t *testing.T) {
	assert.Equal(t, "ab", DecodeEscapes("a\\\nb"))
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "hello", StripQuotes(`"hello"`))
	assert.Equal(t, "hello", StripQuotes(`'hello'`))
	assert.Equal(t, "hello", StripQuotes("`hello`"))
	assert.Equal(t, "", StripQuotes(`""`))
	assert.Equal(t, "x", StripQuotes("x"))
}
