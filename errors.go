// errors.go
package kvstools

import "github.com/kvs-toolkit/kvstools/pkg/core"

var (
	// ErrManifestNotFound indicates the KVS_HEADER_LIST file is missing
	ErrManifestNotFound = core.ErrManifestNotFound

	// ErrConfigNotFound indicates the kvs.conf file is missing
	ErrConfigNotFound = core.ErrConfigNotFound

	// ErrUnknownAction indicates a build action outside the fixed table
	ErrUnknownAction = core.ErrUnknownAction

	// ErrStepFailed indicates an external build step exited with an error
	ErrStepFailed = core.ErrStepFailed
)

// Error wraps an error with the operation and path that failed
type Error = core.Error
