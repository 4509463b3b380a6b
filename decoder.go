package id3v1

import (
	"bytes"
	"io"
)

type Decoder struct {
	r io.ReadSeeker
}

func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{r: r}
}

// Decode decodes a tag from exactly Size bytes. Trailing null bytes
// are stripped from text fields.
func Decode(b []byte) (*Tag, error) {
	if len(b) != Size {
		return nil, SizeError{len(b)}
	}

	var magic [3]byte
	copy(magic[:], b[magicOffset:titleOffset])
	if magic != Magic {
		return nil, NotATagError{magic}
	}

	return &Tag{
		title:   readField(b, titleOffset, TitleWidth),
		artist:  readField(b, artistOffset, ArtistWidth),
		album:   readField(b, albumOffset, AlbumWidth),
		year:    readField(b, yearOffset, YearWidth),
		comment: readField(b, commentOffset, CommentWidth),
		genre:   Genre(b[genreOffset]),
	}, nil
}

func readField(b []byte, offset, width int) Text {
	return TextFromBytes(bytes.TrimRight(b[offset:offset+width], "\x00"))
}

// Parse reads the tag at the end of the stream. It returns ErrTooShort
// or a NotATagError if there is none, and an *IOError if the stream
// couldn't be read.
//
// Parse leaves the stream positioned at its end.
func (d *Decoder) Parse() (*Tag, error) {
	size, err := d.r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &IOError{"seek", err}
	}
	if size < Size {
		return nil, ErrTooShort
	}

	if _, err := d.r.Seek(-Size, io.SeekEnd); err != nil {
		return nil, &IOError{"seek", err}
	}

	b := make([]byte, Size)
	if _, err := io.ReadFull(d.r, b); err != nil {
		return nil, &IOError{"read", err}
	}

	return Decode(b)
}

// Check reports whether the stream ends with a tag.
func Check(r io.ReadSeeker) (bool, error) {
	_, err := NewDecoder(r).Parse()
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
