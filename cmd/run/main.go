package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dcastelo/scheme-engine/interp"
	"github.com/dcastelo/scheme-engine/scm"
)

var expression = flag.String("e", "", "Expression to evaluate after loading files")

func main() {
	flag.Parse()
	if flag.NArg() == 0 && *expression == "" {
		log.Fatal("No input files or -e expression provided")
	}
	in := interp.New(os.Stdout)
	for _, filename := range flag.Args() {
		bs, err := os.ReadFile(filename)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := in.Run(string(bs)); err != nil {
			log.Fatalf("%s: %v", filename, err)
		}
	}
	if *expression != "" {
		v, err := in.Run(*expression)
		if err != nil {
			log.Fatal(err)
		}
		if v != scm.Unspecified {
			fmt.Println(scm.Write(v))
		}
	}
}
