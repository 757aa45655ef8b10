// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestNotFound indicates the KVS_HEADER_LIST file is missing
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrConfigNotFound indicates the kvs.conf file is missing
	ErrConfigNotFound = errors.New("configuration not found")

	// ErrUnknownAction indicates a build action outside the fixed table
	ErrUnknownAction = errors.New("unknown build action")

	// ErrStepFailed indicates an external build step exited with an error
	ErrStepFailed = errors.New("build step failed")
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // File or directory if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
