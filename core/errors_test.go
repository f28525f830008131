package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(EMISSING, "no font %q", "Clarendon")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, `no font "Clarendon"`, UserMessage(err))
	assert.Equal(t, `[122] no font "Clarendon": not found`, err.Error())
	// codes survive further wrapping
	outer := fmt.Errorf("loading: %w", err)
	assert.Equal(t, EMISSING, Code(outer))
}

func TestWrapError(t *testing.T) {
	cause := errors.New("bad unit")
	err := WrapError(cause, EINVALID, "")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "[123] bad unit", err.Error())
	assert.Equal(t, "invalid", UserMessage(err))
	assert.NotNil(t, WrapError(nil, EUNRESOLVED, "x"))
	assert.Equal(t, "undefined error", errorText(999))
}
