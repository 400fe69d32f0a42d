package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// openInput opens name for reading. Directories are rejected up front so
// that nothing is written when the input cannot be read.
func openInput(name string) (*os.File, error) {
	file, err := os.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	fstat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if fstat.Mode().IsDir() {
		file.Close()
		return nil, &os.PathError{Op: "open", Path: name, Err: fmt.Errorf("is a directory")}
	}
	return file, nil
}

// readLines calls f for every line of r. Lines keep their trailing "\n";
// "\r\n" endings are reported as "\n". The last line may lack a newline.
func readLines(r io.Reader, f func(line string) error) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if strings.HasSuffix(line, "\r\n") {
				line = line[:len(line)-2] + "\n"
			}
			if ferr := f(line); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
