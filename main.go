package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/omakoto/bashcomp"
	"github.com/omakoto/md2h/engine"
)

var verbose = flag.Bool("v", false, "Trace the conversion to stderr")

func main() {
	flag.Parse()
	bashcomp.HandleBashCompletion()

	if *verbose {
		tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
		tracing.Select("md2h.engine").SetTraceLevel(tracing.LevelDebug)
	}

	os.Exit(engine.Run(filepath.Base(os.Args[0]), flag.Args(), engine.OptionsFromFlags(), os.Stderr))
}
