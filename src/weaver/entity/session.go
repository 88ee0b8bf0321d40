package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

type keyType string

// SessionContextKey indicates the key used to carry the session UUID in a
// request context.
const SessionContextKey keyType = "SessionUUID"

// Session represents a single studio connection. It is live state only; the
// durable aggregate is the Project.
type Session struct {
	UUID        uuid.UUID      `json:"uuid" zap:"uuid"`
	Conn        *jsonrpc2.Conn `json:"-" zap:"-"`
	ProjectUUID uuid.UUID      `json:"projectUUID" zap:"projectUUID"`
	Account     string         `json:"account" zap:"account"`
}

// Selection is the element currently targeted inside the preview. Identity
// is the stable node handle; Text and Classes mirror what the sandbox last
// reported (or what the host last optimistically applied).
type Selection struct {
	ID      string `json:"id"`
	TagName string `json:"tagName"`
	Text    string `json:"text,omitempty"`
	Classes string `json:"classes,omitempty"`
}

// Apply patches the selection with the partial update the host just sent,
// so the properties surface reflects an edit before the sandbox confirms it.
func (s Selection) Apply(text, classes *string) Selection {
	if text != nil {
		s.Text = *text
	}
	if classes != nil {
		s.Classes = *classes
	}
	return s
}
