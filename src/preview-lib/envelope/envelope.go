// Package envelope defines the typed messages exchanged between the host and
// the sandboxed preview document. Every message is a {type, payload} pair;
// each payload fully replaces the state it describes, so no sequence numbers
// are carried on the wire.
package envelope

import (
	"encoding/json"
	"fmt"
)

// Message types exchanged across the preview boundary.
const (
	// TypeElementSelected is sent by the sandbox when a node is pressed.
	TypeElementSelected = "ELEMENT_SELECTED"
	// TypeHTMLUpdated is sent by the sandbox after it applies an update. The
	// payload is the full, marker-stripped serialization of the document.
	TypeHTMLUpdated = "HTML_UPDATED"
	// TypeUpdateElement is sent by the host to mutate a node by identity.
	TypeUpdateElement = "UPDATE_ELEMENT"
)

// Envelope is the wire shape of a single preview message.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ElementSelected describes the node targeted by a press inside the sandbox.
type ElementSelected struct {
	ID      string `json:"id"`
	TagName string `json:"tagName"`
	Text    string `json:"text,omitempty"`
	Classes string `json:"classes,omitempty"`
}

// UpdateElement is a partial mutation addressed to a node identity. Nil
// fields are left untouched by the sandbox.
type UpdateElement struct {
	ID      string  `json:"id"`
	Text    *string `json:"text,omitempty"`
	Classes *string `json:"classes,omitempty"`
}

// NewElementSelected wraps a selection payload in an envelope.
func NewElementSelected(p ElementSelected) (Envelope, error) {
	return wrap(TypeElementSelected, p)
}

// NewHTMLUpdated wraps a full document serialization in an envelope.
func NewHTMLUpdated(document string) (Envelope, error) {
	return wrap(TypeHTMLUpdated, document)
}

// NewUpdateElement wraps an update command in an envelope.
func NewUpdateElement(p UpdateElement) (Envelope, error) {
	return wrap(TypeUpdateElement, p)
}

func wrap(msgType string, payload interface{}) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshalling %q payload: %w", msgType, err)
	}
	return Envelope{Type: msgType, Payload: raw}, nil
}

// DecodeElementSelected extracts an ElementSelected payload.
func DecodeElementSelected(e Envelope) (ElementSelected, error) {
	var p ElementSelected
	if err := decode(e, TypeElementSelected, &p); err != nil {
		return ElementSelected{}, err
	}
	return p, nil
}

// DecodeHTMLUpdated extracts the document string carried in a HTML_UPDATED
// envelope.
func DecodeHTMLUpdated(e Envelope) (string, error) {
	var doc string
	if err := decode(e, TypeHTMLUpdated, &doc); err != nil {
		return "", err
	}
	return doc, nil
}

// DecodeUpdateElement extracts an UpdateElement payload.
func DecodeUpdateElement(e Envelope) (UpdateElement, error) {
	var p UpdateElement
	if err := decode(e, TypeUpdateElement, &p); err != nil {
		return UpdateElement{}, err
	}
	return p, nil
}

func decode(e Envelope, wantType string, out interface{}) error {
	if e.Type != wantType {
		return fmt.Errorf("expected envelope type %q, got %q", wantType, e.Type)
	}
	if err := json.Unmarshal(e.Payload, out); err != nil {
		return fmt.Errorf("unmarshalling %q payload: %w", e.Type, err)
	}
	return nil
}
