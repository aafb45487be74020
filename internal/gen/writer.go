package gen

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrIO classifies failures to create directories or write output.
var ErrIO = errors.New("output error")

// IOError reports a failed filesystem operation on the output path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns ErrIO and the underlying filesystem error.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Writer writes generated files into a filesystem, usually an osfs rooted at
// the base directory given on the command line.
type Writer struct {
	fs billy.Filesystem
}

// NewWriter creates a Writer on top of fs.
func NewWriter(fs billy.Filesystem) *Writer {
	return &Writer{fs: fs}
}

// Write creates the parent directories of file.Path and writes the content,
// replacing any existing file.
func (w *Writer) Write(file *GeneratedFile) error {
	if file.Path == "" {
		return &IOError{Op: "write", Path: file.Path, Err: errors.New("empty output path")}
	}

	if dir := filepath.Dir(file.Path); dir != "." && dir != string(filepath.Separator) {
		if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
			return &IOError{Op: "creating directory", Path: dir, Err: err}
		}
	}

	if err := util.WriteFile(w.fs, file.Path, file.Content, filePerm); err != nil {
		return &IOError{Op: "writing", Path: file.Path, Err: err}
	}

	return nil
}
