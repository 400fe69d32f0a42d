package engine

import "flag"

var (
	Title      = flag.String("title", "md2h", "HTML title, used with -standalone")
	Standalone = flag.Bool("standalone", false, "Wrap the output in a complete HTML document")
	AutoFlush  = flag.Bool("auto-flush", false, "Flush the output after every input line")
	Strict     = flag.Bool("strict", false, "Close an open list before starting a paragraph")
)

// Options controls a single conversion.
type Options struct {
	Title      string
	Standalone bool
	AutoFlush  bool

	// StrictBlocks closes an open <ul> when paragraph text follows a list
	// item. Without it the list stays open until the next blank line,
	// heading or the end of input.
	StrictBlocks bool
}

// OptionsFromFlags returns the options set on the command line.
func OptionsFromFlags() Options {
	return Options{
		Title:        *Title,
		Standalone:   *Standalone,
		AutoFlush:    *AutoFlush,
		StrictBlocks: *Strict,
	}
}
