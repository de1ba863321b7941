package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatsWithAndWithoutCause(t *testing.T) {
	cause := errors.New("boom")
	withCause := Error{Code: ErrCodeConfigError, Msg: "bad config", Cause: cause}
	assert.Contains(t, withCause.Error(), ErrCodeConfigError)
	assert.Contains(t, withCause.Error(), "boom")

	noCause := Error{Code: ErrCodeFileNotFound, Msg: "missing"}
	assert.NotContains(t, noCause.Error(), "<nil>")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := NewDisassemblerFailedError("pipe closed", cause)
	assert.True(t, errors.Is(wrapped, cause))
}

func TestNewIrreducibleErrorNamesFunction(t *testing.T) {
	err := NewIrreducibleError("sub_1000")
	assert.Contains(t, err.Error(), "sub_1000")
	assert.Contains(t, err.Error(), ErrCodeIrreducible)
}

func TestNewUnsupportedFormatError(t *testing.T) {
	err := NewUnsupportedFormatError("xml")
	assert.Contains(t, err.Error(), "xml")
}
