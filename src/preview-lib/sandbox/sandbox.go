// Package sandbox implements the isolated execution context for a previewed
// document. It carries the same observable behavior as the script injected
// by the instrument package, so the editing protocol can run headless: a
// press marks and reports a node, an update command mutates a known node and
// reports the full document, and nothing inside ever reaches host memory
// directly. All exchange happens through preview envelopes.
package sandbox

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/siteweaver/weaver/src/preview-lib/envelope"
	"github.com/siteweaver/weaver/src/preview-lib/instrument"
)

const _eventBuffer = 16

const _identityAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Sandbox is a single rendered document. It is safe for concurrent use; the
// document is mutated only while holding the internal lock, and every
// outbound event fully describes the state it reports.
type Sandbox struct {
	mu       sync.Mutex
	doc      *html.Node
	events   chan envelope.Envelope
	closed   bool
	identity func() string
}

// Option customises sandbox construction.
type Option func(*Sandbox)

// WithIdentityGenerator overrides identity minting. Tests use this to make
// minted identities deterministic.
func WithIdentityGenerator(gen func() string) Option {
	return func(s *Sandbox) { s.identity = gen }
}

// New parses a document and boots a sandbox around it. The input is accepted
// as-is; malformed markup is repaired by the parser the same way a browser
// would repair it.
func New(document string, opts ...Option) (*Sandbox, error) {
	doc, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("parsing preview document: %w", err)
	}

	s := &Sandbox{
		doc:      doc,
		events:   make(chan envelope.Envelope, _eventBuffer),
		identity: mintIdentity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Events is the outbound side of the preview boundary. The channel is closed
// by Close.
func (s *Sandbox) Events() <-chan envelope.Envelope {
	return s.events
}

// Press simulates a primary-button press on the first node matching target
// ("tag", "#id" or ".class"). It clears any previous selection marker, marks
// the node, assigns an identity if and only if the node lacks one, and emits
// exactly one ELEMENT_SELECTED event. Default navigation never happens.
func (s *Sandbox) Press(target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("sandbox is closed")
	}

	node := findElement(s.doc, target)
	if node == nil {
		return fmt.Errorf("no element matches %q", target)
	}

	for _, marked := range markedNodes(s.doc) {
		removeMarker(marked)
	}
	addMarker(node)

	id := getAttr(node, "id")
	if id == "" {
		id = s.identity()
		setAttr(node, "id", id)
	}

	ev, err := envelope.NewElementSelected(envelope.ElementSelected{
		ID:      id,
		TagName: strings.ToLower(node.Data),
		Text:    truncate(innerText(node), instrument.TextLimit),
		Classes: stripMarkerToken(getAttr(node, "class")),
	})
	if err != nil {
		return err
	}
	s.events <- ev
	return nil
}

// Deliver hands an inbound envelope to the document. Only UPDATE_ELEMENT is
// understood. An update addressed to an unknown identity performs no
// mutation and emits nothing; the host owns the problem of stale identities.
func (s *Sandbox) Deliver(e envelope.Envelope) error {
	if e.Type != envelope.TypeUpdateElement {
		return fmt.Errorf("sandbox cannot handle envelope type %q", e.Type)
	}

	update, err := envelope.DecodeUpdateElement(e)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("sandbox is closed")
	}

	node := findByIdentity(s.doc, update.ID)
	if node == nil {
		return nil
	}

	if update.Text != nil {
		setText(node, *update.Text)
	}
	if update.Classes != nil {
		// The edited node stays visibly selected.
		cleaned := stripMarkerToken(*update.Classes)
		setAttr(node, "class", strings.TrimSpace(cleaned+" "+instrument.MarkerClass))
	}

	ev, err := envelope.NewHTMLUpdated(s.serializeLocked())
	if err != nil {
		return err
	}
	s.events <- ev
	return nil
}

// Document returns the current marker-stripped serialization of the
// document root.
func (s *Sandbox) Document() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serializeLocked()
}

// Close tears the sandbox down and closes the event channel. Further calls
// to Press or Deliver fail.
func (s *Sandbox) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}

// serializeLocked renders the document element with the selection marker
// removed, then restores the marker. Callers must hold the lock.
func (s *Sandbox) serializeLocked() string {
	root := documentElement(s.doc)
	if root == nil {
		return ""
	}

	marked := markedNodes(s.doc)
	for _, n := range marked {
		removeMarker(n)
	}
	var sb strings.Builder
	// Render on an in-memory tree never fails in practice; a failure here
	// yields an empty document rather than a partial one.
	if err := html.Render(&sb, root); err != nil {
		sb.Reset()
	}
	for _, n := range marked {
		addMarker(n)
	}
	return sb.String()
}

// mintIdentity produces a fresh stable node handle: "sw-" followed by nine
// base-36 characters.
func mintIdentity() string {
	buf := make([]byte, instrument.IdentityLength)
	if _, err := rand.Read(buf); err != nil {
		panic("sandbox: crypto/rand failed: " + err.Error())
	}
	id := make([]byte, instrument.IdentityLength)
	for i := range id {
		id[i] = _identityAlphabet[int(buf[i])%len(_identityAlphabet)]
	}
	return instrument.IdentityPrefix + string(id)
}
