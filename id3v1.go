package id3v1

import (
	"errors"
	"fmt"
	"log"
)

// Enables logging if set to true.
var Logging LogFlag

type LogFlag bool

func (l LogFlag) Println(args ...interface{}) {
	if l {
		log.Println(args...)
	}
}

// Size is the size of a tag on disk. A tag always occupies the last
// Size bytes of a file.
const Size = 128

var Magic = [3]byte{0x54, 0x41, 0x47}

// Offsets and widths of the fields inside a tag.
const (
	magicOffset   = 0
	titleOffset   = 3
	artistOffset  = 33
	albumOffset   = 63
	yearOffset    = 93
	commentOffset = 97
	genreOffset   = 127

	TitleWidth   = 30
	ArtistWidth  = 30
	AlbumWidth   = 30
	YearWidth    = 4
	CommentWidth = 30
)

// ErrTooShort is returned when a stream is too short to contain a
// tag.
var ErrTooShort = errors.New("Stream shorter than an ID3v1 tag")

type NotATagError struct {
	Magic [3]byte
}

type SizeError struct {
	Size int
}

// IOError wraps a failed operation on the underlying stream.
type IOError struct {
	Op  string
	Err error
}

func (err NotATagError) Error() string {
	return fmt.Sprintf("Not an ID3v1 tag: %q", err.Magic)
}

func (err SizeError) Error() string {
	return fmt.Sprintf("ID3v1 tag has to be %d bytes, got %d", Size, err.Size)
}

func (err *IOError) Error() string {
	return fmt.Sprintf("%s: %s", err.Op, err.Err)
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// IsNotFound reports whether err means that there is no tag, either
// because the stream is too short or because its last bytes aren't a
// tag.
func IsNotFound(err error) bool {
	var nat NotATagError
	return errors.Is(err, ErrTooShort) || errors.As(err, &nat)
}

// Tag is an ID3v1 tag. Text fields are stored untruncated; fields
// longer than their width get truncated when the tag is encoded.
type Tag struct {
	title   Text
	artist  Text
	album   Text
	year    Text
	comment Text
	genre   Genre
}

// NewTag returns an empty tag.
func NewTag() *Tag {
	return &Tag{genre: GenreNone}
}

func (t *Tag) Title() string {
	return t.title.String()
}

func (t *Tag) SetTitle(title string) error {
	return setText(&t.title, title)
}

func (t *Tag) Artist() string {
	return t.artist.String()
}

func (t *Tag) SetArtist(artist string) error {
	return setText(&t.artist, artist)
}

func (t *Tag) Album() string {
	return t.album.String()
}

func (t *Tag) SetAlbum(album string) error {
	return setText(&t.album, album)
}

// Year returns the year as stored. It is not required to be numeric.
func (t *Tag) Year() string {
	return t.year.String()
}

func (t *Tag) SetYear(year string) error {
	return setText(&t.year, year)
}

func (t *Tag) Comment() string {
	return t.comment.String()
}

func (t *Tag) SetComment(comment string) error {
	return setText(&t.comment, comment)
}

func (t *Tag) Genre() Genre {
	return t.genre
}

func (t *Tag) SetGenre(genre Genre) {
	t.genre = genre
}

func setText(dst *Text, s string) error {
	text, err := NewText(s)
	if err != nil {
		return err
	}
	*dst = text
	return nil
}

// Clear resets all fields.
func (t *Tag) Clear() {
	*t = *NewTag()
}

func (t *Tag) String() string {
	return fmt.Sprintf("Song title: %s\nArtist: %s\nAlbum: %s\nYear: %s\nComment: %s\nGenre: %s",
		t.Title(), t.Artist(), t.Album(), t.Year(), t.Comment(), t.genre)
}
