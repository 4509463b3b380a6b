package id3v1

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Strip returns the contents of the stream without its trailing tag.
// If the stream has no tag, all of its contents are returned.
func Strip(rs io.ReadSeeker) ([]byte, error) {
	ok, err := Check(rs)
	if err != nil {
		return nil, err
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, &IOError{"seek", err}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return nil, &IOError{"read", err}
	}

	b := buf.Bytes()
	if ok {
		Logging.Println("Stripping existing tag")
		b = b[:len(b)-Size]
	}

	return b, nil
}

// Replace replaces the tag at the end of the stream with t, or appends
// t if the stream has no tag. The whole stream is read into memory and
// written back starting at offset 0.
//
// Replace is not atomic: if writing fails halfway, the stream will
// contain a mix of old and new data. Use (*File).Save for files.
func Replace(rws io.ReadWriteSeeker, t *Tag) error {
	b, err := Strip(rws)
	if err != nil {
		return err
	}
	b = append(b, Encode(t)...)

	if _, err := rws.Seek(0, io.SeekStart); err != nil {
		return &IOError{"seek", err}
	}

	Logging.Println("Writing", len(b), "bytes")
	if _, err := rws.Write(b); err != nil {
		return &IOError{"write", err}
	}

	return nil
}

// File is a file on disk together with its tag.
type File struct {
	name string
	f    *os.File

	hasTag bool
	Tag    *Tag
}

// Open opens the file with the given name read-only and parses its
// tag. If there is no tag, (*File).HasTag() will return false and Tag
// is an empty tag.
//
// Call Close() to close the underlying *os.File when done.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	file := &File{name: name, f: f, Tag: NewTag()}
	tag, err := NewDecoder(f).Parse()
	switch {
	case err == nil:
		file.Tag = tag
		file.hasTag = true
	case IsNotFound(err):
		Logging.Println("No tag in", name)
	default:
		f.Close()
		return nil, err
	}

	return file, nil
}

// HasTag returns true when the file had a tag when it was opened or
// last saved.
func (f *File) HasTag() bool {
	return f.hasTag
}

func (f *File) Name() string {
	return f.name
}

// Size returns the size of the file on disk.
func (f *File) Size() (int64, error) {
	stat, err := f.f.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}

// Save writes Tag to the file, replacing the existing tag.
//
// The new contents are written to a temporary file in the same
// directory, which then gets renamed over the original. Either the old
// or the new contents will be visible, never a mix of both. If the
// file was opened through a symlink, the file it points to is
// replaced and the link stays intact.
func (f *File) Save() error {
	return f.save(true)
}

// Remove removes the tag from the file. Tag is left untouched, so a
// later call to Save will add it back.
func (f *File) Remove() error {
	return f.save(false)
}

func (f *File) save(withTag bool) error {
	audio, err := Strip(f.f)
	if err != nil {
		return err
	}

	// Renaming over a symlink would replace the link, not the file
	// it points to.
	target, err := filepath.EvalSymlinks(f.name)
	if err != nil {
		return err
	}

	pf, err := renameio.NewPendingFile(target, renameio.WithExistingPermissions())
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if _, err := pf.Write(audio); err != nil {
		return &IOError{"write", err}
	}
	if withTag {
		if err := f.Tag.Encode(pf); err != nil {
			return &IOError{"write", err}
		}
	}

	Logging.Println("Replacing", target)
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return err
	}

	// The old descriptor still points at the replaced file.
	nf, err := os.Open(target)
	if err != nil {
		return err
	}
	f.f.Close()
	f.f = nf
	f.hasTag = withTag

	return nil
}

func (f *File) Close() error {
	return f.f.Close()
}
