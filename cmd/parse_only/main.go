package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dcastelo/scheme-engine/reader"
	"github.com/dcastelo/scheme-engine/scm"
)

var inputFilename = flag.String("input", "", "Input file (required)")

func main() {
	flag.Parse()
	if *inputFilename == "" {
		log.Fatalf("-input is required")
	}
	bs, err := os.ReadFile(*inputFilename)
	if err != nil {
		log.Fatalf("input: %v", err)
	}
	values, err := reader.ReadAll(string(bs))
	if err != nil {
		log.Fatalf("read: %v", err)
	}
	for _, v := range values {
		fmt.Println(scm.Write(v))
	}
}
