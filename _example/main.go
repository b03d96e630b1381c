package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jkbrsn/convacolor"
	"github.com/rs/zerolog"
)

func main() {
	args := os.Args
	if len(args) < 2 {
		log.Fatalf("Usage: go run main.go #RRGGBB")
	}

	rgb, err := convacolor.ParseHex(args[1])
	if err != nil {
		log.Fatalf("Failed to parse color: %v", err)
	}

	// Convert with one of the convenience functions
	code, err := convacolor.NCS(int(rgb.R), int(rgb.G), int(rgb.B))
	if err != nil {
		log.Fatalf("Failed to find NCS code: %v", err)
	}
	fmt.Printf("Basic example\nNCS: %s\n\n", code)

	// Get every representation and the match details by using a Converter instance
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	cv := convacolor.New(convacolor.WithLogger(logger))

	conv, err := cv.Convert(rgb, convacolor.ModeFraction)
	if err != nil {
		log.Fatalf("Failed to convert color: %v", err)
	}
	fmt.Printf("More involved example\n%+v", conv)
}
