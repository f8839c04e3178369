package tagdoc_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/tagdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	t.Parallel()

	t.Run("found result carries target and MIME bundle", func(t *testing.T) {
		t.Parallel()

		result := tagdoc.NewResult("https://docs.example/classWidget.html")

		assert.True(t, result.Found)
		assert.Equal(t, tagdoc.StatusOK, result.Status)
		assert.Equal(t, "https://docs.example/classWidget.html", result.Target)
		assert.Equal(t, "https://docs.example/classWidget.html", result.Data["text/plain"])
		assert.Contains(t, result.Data["text/html"], `src="https://docs.example/classWidget.html"`)
		assert.Nil(t, result.ErrorInfo)
	})

	t.Run("empty target is not found with fixed marker", func(t *testing.T) {
		t.Parallel()

		result := tagdoc.NewResult("")

		assert.False(t, result.Found)
		assert.Equal(t, tagdoc.StatusError, result.Status)
		assert.Empty(t, result.Target)
		assert.Nil(t, result.Data)
		require.NotNil(t, result.ErrorInfo)
		assert.Equal(t, tagdoc.ErrNoDocumentation.EName, result.EName)
		assert.Equal(t, tagdoc.ErrNoDocumentation.EValue, result.EValue)
		assert.Empty(t, result.Traceback)
	})

	t.Run("not-found record serializes error fields flat", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(tagdoc.NewResult(""))
		require.NoError(t, err)

		assert.JSONEq(t, `{"found":false,"status":"error","ename":"ename","evalue":"evalue","traceback":[]}`, string(b))
	})

	t.Run("found record omits error fields", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(tagdoc.NewResult("https://docs.example/a.html"))
		require.NoError(t, err)

		assert.NotContains(t, string(b), "ename")
		assert.Contains(t, string(b), `"found":true`)
	})
}

func TestFormatPager(t *testing.T) {
	t.Parallel()

	html := tagdoc.FormatPager("https://docs.example/classWidget.html")

	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, `<iframe class="tagdoc-iframe-pager" src="https://docs.example/classWidget.html"></iframe>`)
}
