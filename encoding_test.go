package id3v1

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	UTF8TestString = "Ein etwas kürzerer Text mit wenigen Umlauten: äöüß äöüß"
	ISOTestString  = []byte("Ein etwas k\xFCrzerer Text mit wenigen Umlauten: \xE4\xF6\xFC\xDF \xE4\xF6\xFC\xDF")
)

func TestNewText(t *testing.T) {
	text, err := NewText(UTF8TestString)
	require.NoError(t, err)
	require.Equal(t, ISOTestString, text.Bytes())
	require.Equal(t, len(ISOTestString), text.Len())
	require.Equal(t, UTF8TestString, text.String())
}

func TestTextFromBytes(t *testing.T) {
	text := TextFromBytes(ISOTestString)
	require.Equal(t, UTF8TestString, text.String())

	// every byte is a character, including the C1 range
	text = TextFromBytes([]byte{0x80, 0x9F, 0xFF})
	require.Equal(t, "\u0080\u009Fÿ", text.String())
}

func TestNewTextRejects(t *testing.T) {
	tests := []struct {
		in      string
		offset  int
		invalid bool
	}{
		{"日本語", 0, false},
		{"Just a test: äüö 日本語", 20, false},
		{"snowman ☃", 8, false},
		{"replacement �", 12, false},
		{"broken \xFF", 7, true},
	}

	for _, test := range tests {
		_, err := NewText(test.in)
		var uerr UnrepresentableError
		if !errors.As(err, &uerr) {
			t.Fatalf("NewText(%q) = %v, want UnrepresentableError", test.in, err)
		}
		require.Equal(t, test.offset, uerr.Offset, test.in)
		require.Equal(t, test.invalid, uerr.Invalid, test.in)
	}
}

func TestTextTruncate(t *testing.T) {
	text := MustText("äöüß")
	require.Equal(t, "äö", text.Truncate(2).String())
	require.Equal(t, text, text.Truncate(4))
	require.Equal(t, text, text.Truncate(30))
	require.Equal(t, Text{}, text.Truncate(0))
	require.Equal(t, Text{}, text.Truncate(-1))
}

func TestMustTextPanics(t *testing.T) {
	require.Panics(t, func() { MustText("日本語") })
}

func BenchmarkNewText(b *testing.B) {
	b.SetBytes(int64(len(UTF8TestString)))
	for i := 0; i < b.N; i++ {
		_, _ = NewText(UTF8TestString)
	}
}

func BenchmarkTextString(b *testing.B) {
	text := TextFromBytes(ISOTestString)
	b.SetBytes(int64(len(ISOTestString)))
	for i := 0; i < b.N; i++ {
		_ = text.String()
	}
}
