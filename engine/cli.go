package engine

import (
	"fmt"
	"io"
	"os"

	goerrors "github.com/goliatone/go-errors"
)

// ConvertFile converts the Markdown file inPath into the HTML file outPath.
// The output is created (or truncated) only after the input was opened.
func ConvertFile(inPath, outPath string, opts Options) (err error) {
	in, err := openInput(inPath)
	if err != nil {
		return ioError(err, "cannot open input")
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return ioError(err, "cannot open output")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = ioError(cerr, "cannot close output")
		}
	}()

	tracer().Infof("converting %s to %s", inPath, outPath)
	if cerr := NewConverter(out, opts).Convert(in); cerr != nil {
		return ioError(cerr, "conversion failed")
	}
	return nil
}

func run(args []string, opts Options) error {
	if len(args) < 2 {
		return usageError()
	}
	inPath, outPath := args[0], args[1]
	if _, err := os.Stat(inPath); err != nil {
		return missingError(inPath, err)
	}
	return ConvertFile(inPath, outPath, opts)
}

// Run executes the command line tool with the positional arguments args and
// returns the process exit code. Failures are reported on stderr.
func Run(program string, args []string, opts Options, stderr io.Writer) int {
	err := run(args, opts)
	if err == nil {
		return 0
	}
	tracer().Errorf("%v", err)
	fmt.Fprintln(stderr, errorMessage(program, err))
	return 1
}

func errorMessage(program string, err error) string {
	var e *goerrors.Error
	if !goerrors.As(err, &e) {
		return "Error: " + err.Error()
	}
	switch e.Category {
	case goerrors.CategoryBadInput:
		return fmt.Sprintf("Usage: %s README.md README.html", program)
	case goerrors.CategoryNotFound:
		return fmt.Sprintf("Missing %v", e.Metadata["path"])
	}
	if e.Source != nil {
		return "Error: " + e.Source.Error()
	}
	return "Error: " + e.Message
}
