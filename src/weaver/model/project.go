// Package model holds the repository layer representations of the engine's
// entities.
package model

import (
	"time"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// ChatTurn is the repository layer form of a conversation entry.
type ChatTurn struct {
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Project is the repository layer form of a stored project.
type Project struct {
	UUID      uuid.UUID
	Name      string
	Thumbnail string
	CreatedAt time.Time
	Document  string
	History   []ChatTurn
	Synced    bool
	Template  bool
}

// Session is the repository layer form of a live studio connection.
type Session struct {
	UUID        uuid.UUID
	Conn        *jsonrpc2.Conn
	ProjectUUID uuid.UUID
	Account     string
}
