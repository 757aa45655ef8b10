package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := &Error{Op: "read manifest", Path: "../Source/Core/KVS_HEADER_LIST", Err: ErrManifestNotFound}
	assert.Equal(t, "read manifest ../Source/Core/KVS_HEADER_LIST: manifest not found", err.Error())
	assert.True(t, errors.Is(err, ErrManifestNotFound))

	err = &Error{Op: "resolve action", Err: ErrUnknownAction}
	assert.Equal(t, "resolve action: unknown build action", err.Error())
}
