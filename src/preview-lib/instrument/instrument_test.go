package instrument

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectsBeforeClosingBody(t *testing.T) {
	doc := "<!DOCTYPE html><html><head><title>t</title></head><body><h1>Hi</h1></body></html>"
	out := Instrument(doc)

	idx := strings.Index(doc, "</body>")
	assert.Equal(t, doc[:idx], out[:idx], "bytes before the injection point must be unchanged")
	assert.True(t, strings.HasSuffix(out, "</body></html>"))
	assert.Equal(t, 1, strings.Count(out, "ELEMENT_SELECTED"), "exactly one behavior block")
}

func TestInjectsBeforeClosingHTMLWhenNoBody(t *testing.T) {
	doc := "<html><div>content</div></html>"
	out := Instrument(doc)

	require.True(t, strings.HasSuffix(out, "</html>"))
	assert.Contains(t, out, "<script>")
	assert.True(t, strings.Index(out, "<script>") < strings.Index(out, "</html>"))
}

func TestAppendsWhenNoClosingTags(t *testing.T) {
	doc := "<div>fragment</div>"
	out := Instrument(doc)

	assert.True(t, strings.HasPrefix(out, doc), "input must be preserved verbatim")
	assert.True(t, strings.HasSuffix(out, "</script>"))
}

func TestBehaviorBlockContract(t *testing.T) {
	out := Instrument("<html><body></body></html>")

	// The injected behavior speaks the preview protocol and nothing else.
	for _, want := range []string{"ELEMENT_SELECTED", "HTML_UPDATED", "UPDATE_ELEMENT", MarkerClass} {
		assert.Contains(t, out, want)
	}
}
