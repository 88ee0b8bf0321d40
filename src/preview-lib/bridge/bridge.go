// Package bridge pumps preview envelopes between the host and an isolated
// document. It is the only path by which the two sides exchange state:
// inbound selection and document-changed events are handed to host hooks in
// strict arrival order, and outbound update commands are fire-and-forget.
package bridge

import (
	"sync"

	"go.uber.org/zap"

	"github.com/siteweaver/weaver/src/preview-lib/envelope"
)

// PreviewConn is the sandbox side of the boundary. The in-process sandbox
// satisfies it; any future remote rendering context can as well.
type PreviewConn interface {
	Events() <-chan envelope.Envelope
	Deliver(e envelope.Envelope) error
	Close()
}

// Hooks receive inbound events. They are invoked from the pump goroutine,
// one at a time, in arrival order.
type Hooks struct {
	// OnElementSelected replaces the current selection wholesale; a rapid
	// second press simply supersedes the first.
	OnElementSelected func(sel envelope.ElementSelected)
	// OnDocumentUpdated receives the full replacement document.
	OnDocumentUpdated func(document string)
}

// Bridge is a bound preview connection. One bridge lives per editing
// session; Close detaches it with no leaked listeners.
type Bridge struct {
	conn   PreviewConn
	logger *zap.SugaredLogger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Bind subscribes to the connection for the lifetime of the session and
// starts the pump.
func Bind(conn PreviewConn, hooks Hooks, logger *zap.SugaredLogger) *Bridge {
	b := &Bridge{
		conn:   conn,
		logger: logger,
	}
	b.wg.Add(1)
	go b.pump(hooks)
	return b
}

// SendUpdate sends an UPDATE_ELEMENT command addressed to identity. There is
// no acknowledgement and no retry; the confirmation, if any, arrives later
// as a document-changed event. Text and classes fields that are nil are left
// untouched by the sandbox.
func (b *Bridge) SendUpdate(identity string, text, classes *string) {
	ev, err := envelope.NewUpdateElement(envelope.UpdateElement{
		ID:      identity,
		Text:    text,
		Classes: classes,
	})
	if err != nil {
		b.logger.Errorw("building update command", "identity", identity, "error", err)
		return
	}
	if err := b.conn.Deliver(ev); err != nil {
		b.logger.Warnw("delivering update command", "identity", identity, "error", err)
	}
}

// Close tears down the connection and waits for the pump to drain. Safe to
// call more than once.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		b.conn.Close()
	})
	b.wg.Wait()
}

func (b *Bridge) pump(hooks Hooks) {
	defer b.wg.Done()

	for ev := range b.conn.Events() {
		switch ev.Type {
		case envelope.TypeElementSelected:
			sel, err := envelope.DecodeElementSelected(ev)
			if err != nil {
				b.logger.Warnw("dropping malformed selection event", "error", err)
				continue
			}
			if hooks.OnElementSelected != nil {
				hooks.OnElementSelected(sel)
			}
		case envelope.TypeHTMLUpdated:
			doc, err := envelope.DecodeHTMLUpdated(ev)
			if err != nil {
				b.logger.Warnw("dropping malformed document event", "error", err)
				continue
			}
			if hooks.OnDocumentUpdated != nil {
				hooks.OnDocumentUpdated(doc)
			}
		default:
			b.logger.Warnw("dropping unknown preview event", "type", ev.Type)
		}
	}
}
