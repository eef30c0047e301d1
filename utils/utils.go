package utils

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
	"golang.org/x/term"
)

// headerSize is the number of leading bytes needed to sniff the file type.
const headerSize = 262

// IsPNG reports whether the file content starts with the PNG signature.
// An empty file is not a PNG.
func IsPNG(fname string) (bool, error) {
	file, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer file.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, fmt.Errorf("unable to read %s: %w", fname, err)
	}
	if n == 0 {
		return false, nil
	}
	return filetype.Is(head[:n], "png"), nil
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
