package catalog

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNotFound indicates the image directory does not exist.
var ErrNotFound = fs.ErrNotExist

// ErrEmptyCatalog indicates the directory holds no .jpg, .jpeg or .png files.
var ErrEmptyCatalog = errors.New("no images found in catalog directory")

// AccessError reports a directory that could not be listed.
type AccessError struct {
	Dir string
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to read image directory %q: %v", e.Dir, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
