package id3v1

import (
	"fmt"
	"strings"
)

// Genre is the single byte genre code stored at the end of a tag.
type Genre byte

// GenreNone is conventionally written by taggers when no genre was
// chosen.
const GenreNone Genre = 255

// Genres maps the codes 0-27 to their names. Code 24 has no defined
// name.
var Genres = [...]string{
	0:  "Blues",
	1:  "Classic rock",
	2:  "Country",
	3:  "Dance",
	4:  "Disco",
	5:  "Funk",
	6:  "Grunge",
	7:  "Hip-hop",
	8:  "Jazz",
	9:  "Metal",
	10: "New age",
	11: "Oldies",
	12: "Other",
	13: "Pop",
	14: "Rhythm and blues",
	15: "Rap",
	16: "Reggae",
	17: "Rock",
	18: "Techno",
	19: "Industrial",
	20: "Alternative",
	21: "Ska",
	22: "Death Metal",
	23: "Soundtrack",
	24: "",
	25: "Euro-techno",
	26: "Ambient",
	27: "Trip-hop",
}

const (
	unknownGenre = "Unknown"

	firstUnsupportedGenre Genre = 28
	lastUnsupportedGenre  Genre = 191
)

type UnsupportedGenreError struct {
	Genre Genre
}

func (err UnsupportedGenreError) Error() string {
	return fmt.Sprintf("Unsupported genre: %d", byte(err.Genre))
}

// Name returns the display name of the genre. Codes without a name
// map to "Unknown". Codes 28 through 191 also return "Unknown", along
// with an UnsupportedGenreError.
func (g Genre) Name() (string, error) {
	if int(g) < len(Genres) {
		if Genres[g] == "" {
			return unknownGenre, nil
		}
		return Genres[g], nil
	}

	if g >= firstUnsupportedGenre && g <= lastUnsupportedGenre {
		return unknownGenre, UnsupportedGenreError{g}
	}

	return unknownGenre, nil
}

func (g Genre) String() string {
	name, err := g.Name()
	if err != nil {
		return fmt.Sprintf("Unsupported (%d)", byte(g))
	}

	return name
}

// GenreByName looks up a genre code by its name, ignoring case.
func GenreByName(name string) (Genre, bool) {
	for i, v := range Genres {
		if v != "" && strings.EqualFold(v, name) {
			return Genre(i), true
		}
	}

	return 0, false
}
