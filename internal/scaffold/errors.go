package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrTemplateNotFound reports a template root that is missing or is not
	// a directory.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrNotDirectory reports a destination path that exists but is not a
	// directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrUnsafePath reports a path segment that became empty, ".", ".." or
	// gained a separator after substitution.
	ErrUnsafePath = errors.New("unsafe path segment")

	// ErrDestinationInTemplate reports a destination inside the template
	// directory it would be copied from.
	ErrDestinationInTemplate = errors.New("destination is inside the template directory")

	// ErrUnknownScaffold reports a registry lookup for an unregistered name.
	ErrUnknownScaffold = errors.New("unknown scaffold")

	// ErrDuplicateScaffold reports a second registration under the same name.
	ErrDuplicateScaffold = errors.New("scaffold already registered")
)

// CopyError is the fatal error kind returned by Copy. It carries the
// operation and the offending path.
type CopyError struct {
	Op   string // resolve, stat, mkdir, read, write, substitute
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}
