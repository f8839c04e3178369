package tagdoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/tagdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := tagdoc.Errorf(tagdoc.ENOTFOUND, "manifest %q not found", "search_list.txt")

	assert.Equal(t, tagdoc.ENOTFOUND, tagdoc.ErrorCode(err))
	assert.Equal(t, "manifest \"search_list.txt\" not found", tagdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tagdoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tagdoc.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading sources: %w", tagdoc.Errorf(tagdoc.EINVALID, "bad line"))

	assert.Equal(t, tagdoc.EINVALID, tagdoc.ErrorCode(err))
	assert.Equal(t, "bad line", tagdoc.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, tagdoc.EINTERNAL, tagdoc.ErrorCode(err))
	assert.Equal(t, "Internal error.", tagdoc.ErrorMessage(err))
}
