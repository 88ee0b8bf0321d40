// Package entity contains the domain types for the weaver engine.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

// PlaceholderDocument is the document a fresh project carries until its
// first generation completes. Its presence, together with a single pending
// chat turn, is the signal that the initial generation has not yet run.
const PlaceholderDocument = `<div style="display:flex;height:100vh;justify-content:center;align-items:center;font-family:sans-serif;color:#64748b;flex-direction:column;gap:1rem;"><div style="font-size:1.5rem;font-weight:bold;">Generating your design...</div><div style="font-size:0.9rem;">Hang tight while we weave it together</div></div>`

const _placeholderMark = "Generating your design"

// Speaker identifies who produced a chat turn.
type Speaker string

const (
	// SpeakerUser marks turns typed by the user.
	SpeakerUser Speaker = "user"
	// SpeakerAssistant marks turns produced by the generation collaborator.
	SpeakerAssistant Speaker = "assistant"
)

// ChatTurn is a single entry in a project's conversation. The sequence is
// append-only and replayed verbatim into the generation collaborator.
type ChatTurn struct {
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Project aggregates one document, its conversation, and its sync state.
// The Document is opaque to the host: a complete markup string replaced
// wholesale on every mutation, never diffed or patched at this layer.
type Project struct {
	UUID      uuid.UUID  `json:"uuid"`
	Name      string     `json:"name"`
	Thumbnail string     `json:"thumbnail,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	Document  string     `json:"document"`
	History   []ChatTurn `json:"history"`
	// Synced reports whether the persisted copy matches this one. It drops
	// to false on any mutation and rises only after a successful save.
	Synced bool `json:"synced"`
	// Template projects ship with the engine and are read-only.
	Template bool `json:"template"`
}

// Clone returns an independent copy, history included. Repositories hand out
// clones so callers never share mutable state with the store.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	copied := *p
	copied.History = make([]ChatTurn, len(p.History))
	copy(copied.History, p.History)
	return &copied
}

// HasRealDocument reports whether the document came from a generation or an
// import, rather than being the initial placeholder.
func (p *Project) HasRealDocument() bool {
	return p.Document != "" && !strings.Contains(p.Document, _placeholderMark)
}

// NeedsInitialGeneration detects the freshly created state: placeholder
// content plus exactly the originating user prompt.
func (p *Project) NeedsInitialGeneration() bool {
	return !p.HasRealDocument() &&
		len(p.History) == 1 &&
		p.History[0].Speaker == SpeakerUser
}

var _slugUnsafe = regexp.MustCompile(`\s+`)

// ExportFilename derives the download name for the document.
func (p *Project) ExportFilename() string {
	slug := strings.ToLower(strings.TrimSpace(p.Name))
	slug = _slugUnsafe.ReplaceAllString(slug, "-")
	if slug == "" {
		slug = "site"
	}
	return slug + ".html"
}
