package errorsUtils_test

import (
	"errors"
	"strings"
	"testing"

	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrapPathErr(t *testing.T) {
	base := errors.New("boom")

	wrapped := errorsUtils.WrapPathErr(base)

	assert.ErrorIs(t, wrapped, base)
	assert.True(t, strings.Contains(wrapped.Error(), "TestWrapPathErr"))
	assert.Nil(t, errorsUtils.WrapPathErr(nil))
}
