package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"honnef.co/go/id3v1"
)

func printFile(name string) {
	f, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s (%s)\n", name, humanize.Bytes(uint64(stat.Size())))

	tag, err := id3v1.NewDecoder(f).Parse()
	if err != nil {
		if id3v1.IsNotFound(err) {
			log.Println("no ID3v1 tag")
			return
		}
		fmt.Println(err)
		return
	}

	fmt.Println(tag)
}

func main() {
	for _, name := range os.Args[1:] {
		printFile(name)
		fmt.Println()
	}
}
