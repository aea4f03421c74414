package triton_test

import (
	"errors"
	"testing"

	// Packages
	triton "github.com/mutablelogic/go-triton"
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("bad parameter", triton.ErrBadParameter.Error())
	assert.ErrorIs(triton.ErrParse.With("missing outputs"), triton.ErrParse)
	assert.Equal("unexpected response body: missing outputs", triton.ErrParse.With("missing outputs").Error())
	assert.Equal("request could not be completed: dial tcp", triton.ErrHTTP.Withf("%s", "dial tcp").Error())
}

func Test_error_002(t *testing.T) {
	assert := assert.New(t)

	// A status error unwraps to ErrServer and carries the code
	var err error = &triton.StatusError{StatusCode: 503, Message: "Status: 503"}
	assert.ErrorIs(err, triton.ErrServer)

	var status *triton.StatusError
	assert.True(errors.As(err, &status))
	assert.Equal(503, status.StatusCode)
	assert.Equal("Status: 503", err.Error())
}
