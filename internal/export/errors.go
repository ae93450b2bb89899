package export

import (
	"errors"
	"fmt"
)

// ErrInvalidTable indicates an edited table whose shape does not match the template.
var ErrInvalidTable = errors.New("invalid table")

// IOError reports a failed write of an export file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to write export %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
