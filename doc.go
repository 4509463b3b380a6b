/*
Package id3v1 reads and writes ID3v1 tags.

# The tag format

An ID3v1 tag is a block of exactly 128 bytes at the very end of a
file. It starts with the three bytes "TAG", followed by fixed width
fields for the title (30 bytes), artist (30), album (30), year (4),
comment (30) and a single byte holding the genre. Unused space in a
field is filled with null bytes.

Text fields are ISO-8859-1 encoded, which is why this package stores
them as Text and not as plain strings. Setters reject input that
cannot be represented. Text that is longer than its field will be
truncated when encoding, never spill into the next field.

# Genres

Only the genres 0 to 27 have names. Codes 28 to 191 are reported as
unsupported, all other codes as "Unknown".

# Reading and writing

Decode and Encode convert between tags and their 128 byte
representation. A Decoder finds the tag at the end of an
io.ReadSeeker; when there is none, it returns either ErrTooShort or a
NotATagError, which IsNotFound recognizes. Failures of the underlying
stream are reported as *IOError.

Replace rewrites a stream in place. Since it overwrites the stream
starting at offset 0, a failed write leaves a corrupt stream behind.
For files on disk, use Open and (*File).Save instead, which write a
temporary file and rename it over the original.
*/
package id3v1
