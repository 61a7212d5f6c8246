package app

import (
	"fmt"
	"io"
	"os"

	"github.com/cristianoliveira/gridsettings/internal/codec"
)

// StdinPath is the argument that selects standard input.
const StdinPath = "-"

// OpenInput opens the document named by path. An empty path or "-" reads
// stdin in the fallback format; files pick their format from the extension.
func OpenInput(path string, stdin io.Reader, fallback codec.Format) (io.ReadCloser, codec.Format, error) {
	if path == "" || path == StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), fallback, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input: %w", err)
	}
	return f, codec.FormatFromPath(path, fallback), nil
}
