package id3v1

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Text is a string in ISO-8859-1, the only encoding tags know about.
// Every character occupies exactly one byte, so Len is both the number
// of characters and the number of bytes the text needs on disk.
//
// The zero value is the empty text.
type Text struct {
	raw string
}

type UnrepresentableError struct {
	Text    string
	Offset  int // byte offset of the offending rune in Text
	Rune    rune
	Invalid bool // Text is not valid UTF-8 at Offset
}

func (err UnrepresentableError) Error() string {
	if err.Invalid {
		return fmt.Sprintf("Invalid UTF-8 at offset %d in %q", err.Offset, err.Text)
	}
	return fmt.Sprintf("Character %q at offset %d in %q cannot be represented in ISO-8859-1",
		err.Rune, err.Offset, err.Text)
}

// NewText converts UTF-8 input to ISO-8859-1. Input containing runes
// beyond U+00FF, or invalid UTF-8, is rejected.
func NewText(s string) (Text, error) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return Text{}, UnrepresentableError{Text: s, Offset: i, Rune: r, Invalid: true}
		}
		if r > 0xFF {
			return Text{}, UnrepresentableError{Text: s, Offset: i, Rune: r}
		}
		i += size
	}

	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return Text{}, err
	}

	return Text{raw: raw}, nil
}

// MustText is like NewText but panics if s cannot be represented.
func MustText(s string) Text {
	t, err := NewText(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TextFromBytes interprets b as ISO-8859-1. It never fails since every
// byte is a valid character.
func TextFromBytes(b []byte) Text {
	return Text{raw: string(b)}
}

// String returns the text as UTF-8.
func (t Text) String() string {
	return iso88591ToUTF8(t.raw)
}

// Bytes returns the ISO-8859-1 encoded text.
func (t Text) Bytes() []byte {
	return []byte(t.raw)
}

func (t Text) Len() int {
	return len(t.raw)
}

// Truncate returns the first n characters of t.
func (t Text) Truncate(n int) Text {
	if n < 0 {
		n = 0
	}
	if len(t.raw) <= n {
		return t
	}
	return Text{raw: t.raw[:n]}
}

func iso88591ToUTF8(s string) string {
	// ISO-8859-1 bytes map one to one onto the first 256 code points,
	// so decoding cannot fail.
	out, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		panic(err)
	}
	return out
}
