package bridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/siteweaver/weaver/src/preview-lib/envelope"
	"github.com/siteweaver/weaver/src/preview-lib/sandbox"
)

const _testDoc = `<html><head></head><body><h1>Hello</h1><p>World</p></body></html>`

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newBound(t *testing.T, hooks Hooks) (*sandbox.Sandbox, *Bridge) {
	t.Helper()
	s, err := sandbox.New(_testDoc)
	require.NoError(t, err)
	b := Bind(s, hooks, zap.NewNop().Sugar())
	t.Cleanup(b.Close)
	return s, b
}

func waitFor(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for bridge delivery")
		}
	}
}

func TestSelectionLastWriteWins(t *testing.T) {
	delivered := make(chan struct{}, 4)
	var current envelope.ElementSelected
	s, _ := newBound(t, Hooks{
		OnElementSelected: func(sel envelope.ElementSelected) {
			current = sel
			delivered <- struct{}{}
		},
	})

	require.NoError(t, s.Press("h1"))
	require.NoError(t, s.Press("p"))
	waitFor(t, delivered, 2)

	assert.Equal(t, "p", current.TagName, "the later selection supersedes the earlier one")
}

func TestSendUpdateProducesDocumentEvent(t *testing.T) {
	selected := make(chan envelope.ElementSelected, 1)
	updated := make(chan string, 1)
	s, b := newBound(t, Hooks{
		OnElementSelected: func(sel envelope.ElementSelected) { selected <- sel },
		OnDocumentUpdated: func(doc string) { updated <- doc },
	})

	require.NoError(t, s.Press("h1"))

	var sel envelope.ElementSelected
	select {
	case sel = <-selected:
	case <-time.After(2 * time.Second):
		t.Fatal("no selection event")
	}

	text := "X"
	b.SendUpdate(sel.ID, &text, nil)

	select {
	case doc := <-updated:
		assert.Contains(t, doc, ">X</h1>")
	case <-time.After(2 * time.Second):
		t.Fatal("no document event")
	}
}

func TestSendUpdateToStaleIdentityIsSilent(t *testing.T) {
	updated := make(chan string, 1)
	_, b := newBound(t, Hooks{
		OnDocumentUpdated: func(doc string) { updated <- doc },
	})

	text := "dropped"
	b.SendUpdate("sw-zzzzzzzzz", &text, nil)

	select {
	case <-updated:
		t.Fatal("stale identity must not produce a document event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCloseDetachesCleanly(t *testing.T) {
	_, b := newBound(t, Hooks{})
	b.Close()
	b.Close() // safe to repeat
}
