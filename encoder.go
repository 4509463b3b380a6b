package id3v1

import (
	"io"
)

type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) Encode(t *Tag) error {
	_, err := e.w.Write(Encode(t))
	return err
}

// Encode returns the Size bytes representing t. Text fields longer
// than their width are truncated, shorter ones are padded with null
// bytes.
func Encode(t *Tag) []byte {
	b := make([]byte, Size)
	copy(b[magicOffset:], Magic[:])
	writeField(b, titleOffset, TitleWidth, t.title)
	writeField(b, artistOffset, ArtistWidth, t.artist)
	writeField(b, albumOffset, AlbumWidth, t.album)
	writeField(b, yearOffset, YearWidth, t.year)
	writeField(b, commentOffset, CommentWidth, t.comment)
	b[genreOffset] = byte(t.genre)

	return b
}

func writeField(b []byte, offset, width int, text Text) {
	// b is zeroed, so copying the truncated text is enough to pad it
	copy(b[offset:offset+width], text.Truncate(width).Bytes())
}

func (t *Tag) Encode(w io.Writer) error {
	return NewEncoder(w).Encode(t)
}
