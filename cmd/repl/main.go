package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dcastelo/scheme-engine/interp"
	"github.com/dcastelo/scheme-engine/reader"
	"github.com/dcastelo/scheme-engine/scm"

	"github.com/chzyer/readline"
)

var (
	loadFiles   = flag.String("load-files", "", "Comma-separated files to load, in order")
	expression  = flag.String("e", "", "Initial expression to evaluate")
	interactive = flag.Bool("interactive", true, "Whether the REPL is interactive")
)

type ctx struct {
	interrupt chan os.Signal
	interp    *interp.Interp
	readline  *readline.Instance
}

func main() {
	flag.Parse()
	if !*interactive && len(*expression) == 0 && len(*loadFiles) == 0 {
		log.Fatal("No expression or files provided for non-interactive REPL")
	}

	ctx := ctx{}
	ctx.interrupt = make(chan os.Signal, 1)
	signal.Notify(ctx.interrupt, syscall.SIGINT)

	ctx.interp = interp.New(os.Stdout)
	files := strings.Split(*loadFiles, ",")
	for _, file := range files {
		if len(file) == 0 {
			continue
		}
		loadFile(ctx.interp, file)
	}
	if len(*expression) > 0 {
		ctx.evalSource(*expression)
	}
	if !*interactive {
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "> ",
		HistoryFile:            "/tmp/readline-history",
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	ctx.readline = rl

	ctx.mainLoop()
}

func loadFile(in *interp.Interp, filename string) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		log.Print(err)
		return
	}
	if _, err := in.Run(string(bs)); err != nil {
		log.Print(err)
		return
	}
}

func (ctx ctx) mainLoop() {
	for {
		src, isClose := ctx.readSource()
		if isClose {
			return
		}
		ctx.evalSource(src)
	}
}

// readSource accumulates lines until they form complete datums, switching to
// a continuation prompt while a list or string is left open.
func (ctx ctx) readSource() (string, bool) {
	ctx.readline.SetPrompt("> ")
	var lines []string
	for {
		line, err := ctx.readline.Readline()
		if err != nil {
			return "", true
		}
		lines = append(lines, line)
		src := strings.Join(lines, "\n")
		if len(strings.TrimSpace(src)) == 0 {
			lines = nil
			continue
		}
		if _, err := reader.ReadAll(src); errors.Is(err, reader.ErrUnexpectedEOF) {
			ctx.readline.SetPrompt("| ")
			continue
		}
		ctx.readline.SaveHistory(src)
		return src, false
	}
}

// evalSource evaluates each datum of src, printing results. SIGINT during
// evaluation interrupts the interpreter instead of killing the process.
func (ctx ctx) evalSource(src string) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.interrupt:
			ctx.interp.Interrupt()
		case <-done:
		}
	}()
	values, err := reader.ReadAll(src)
	if err != nil {
		log.Print(err)
		return
	}
	for _, v := range values {
		result, err := ctx.interp.Eval(v)
		if err != nil {
			log.Print(err)
			return
		}
		if result != scm.Unspecified {
			fmt.Println(scm.Write(result))
		}
	}
}
