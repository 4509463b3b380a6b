package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/peterbourgon/ff"

	"honnef.co/go/id3v1"
)

const (
	programName = "id3v1tag"
	programVar  = "ID3V1"
)

func parseGenre(s string) (id3v1.Genre, error) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return id3v1.Genre(n), nil
	}
	if g, ok := id3v1.GenreByName(s); ok {
		return g, nil
	}
	return 0, fmt.Errorf("unknown genre %q", s)
}

// applyFlags clears the tag if -clear was given and sets the fields
// whose flags were given on the command line, in the environment or the
// config file. It reports whether the tag was changed at all.
func applyFlags(set *flag.FlagSet, tag *id3v1.Tag) (bool, error) {
	changed := boolFlag(set, "clear")
	if changed {
		tag.Clear()
	}

	var err error
	set.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		value := f.Value.String()
		switch f.Name {
		case "title":
			err = tag.SetTitle(value)
		case "artist":
			err = tag.SetArtist(value)
		case "album":
			err = tag.SetAlbum(value)
		case "year":
			err = tag.SetYear(value)
		case "comment":
			err = tag.SetComment(value)
		case "genre":
			var g id3v1.Genre
			if g, err = parseGenre(value); err == nil {
				tag.SetGenre(g)
			}
		default:
			return
		}
		changed = true
	})

	return changed, err
}

func newFlagSet(errorHandling flag.ErrorHandling) *flag.FlagSet {
	set := flag.NewFlagSet(programName, errorHandling)
	set.String("title", "", "song title (optional)")
	set.String("artist", "", "artist (optional)")
	set.String("album", "", "album (optional)")
	set.String("year", "", "year (optional)")
	set.String("comment", "", "comment (optional)")
	set.String("genre", "", "genre, by number or name (optional)")
	set.Bool("clear", false, "remove all existing fields before setting new ones (optional)")
	set.Bool("remove", false, "remove the tag from the file (optional)")
	set.Bool("log", false, "log what is being done (optional)")
	set.String("config-path", "", "path to config (optional)")
	return set
}

func boolFlag(set *flag.FlagSet, name string) bool {
	return set.Lookup(name).Value.(flag.Getter).Get().(bool)
}

func main() {
	set := newFlagSet(flag.ExitOnError)

	if err := ff.Parse(set, os.Args[1:],
		ff.WithConfigFileFlag("config-path"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix(programVar),
	); err != nil {
		log.Fatalf("error parsing args: %v\n", err)
	}
	if set.NArg() != 1 {
		log.Fatalf("usage: %s [flags] <file>", programName)
	}
	id3v1.Logging = id3v1.LogFlag(boolFlag(set, "log"))

	file, err := id3v1.Open(set.Arg(0))
	if err != nil {
		log.Fatalf("error opening file: %v\n", err)
	}
	defer file.Close()

	if boolFlag(set, "remove") {
		if err := file.Remove(); err != nil {
			log.Fatalf("error removing tag: %v\n", err)
		}
		return
	}

	changed, err := applyFlags(set, file.Tag)
	if err != nil {
		log.Fatalf("error setting tag: %v\n", err)
	}

	if !changed {
		log.Println("no fields given, leaving file untouched")
		fmt.Println(file.Tag)
		return
	}

	if err := file.Save(); err != nil {
		log.Fatalf("error saving tag: %v\n", err)
	}
	fmt.Println(file.Tag)
}
