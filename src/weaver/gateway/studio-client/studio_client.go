// Package notifier sends outbound notifications to the connected studio UI.
// All calls should include a context with a session UUID, which routes the
// notification to the correct studio connection.
package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/siteweaver/weaver/src/weaver/entity"
	"github.com/siteweaver/weaver/src/weaver/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

const _errSendToStudio = "sending notification to studio: %w"

// Outbound notification methods.
const (
	MethodElementSelected = "studio/elementSelected"
	MethodDocumentChanged = "studio/documentChanged"
	MethodChatTurnAdded   = "studio/chatTurnAdded"
	MethodSyncState       = "studio/syncState"
	MethodGenerationState = "studio/generationState"
)

// ElementSelectedParams carries the selection shown in the properties panel.
type ElementSelectedParams struct {
	Selection *entity.Selection `json:"selection"`
}

// DocumentChangedParams carries the new document plus delta stats against
// the previous one.
type DocumentChangedParams struct {
	Document   string `json:"document"`
	Insertions int    `json:"insertions"`
	Deletions  int    `json:"deletions"`
}

// ChatTurnAddedParams carries a newly appended conversation entry.
type ChatTurnAddedParams struct {
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SyncStateParams reports whether the open project matches the store.
type SyncStateParams struct {
	Synced bool `json:"synced"`
}

// GenerationStateParams reports whether a generation is outstanding.
type GenerationStateParams struct {
	InFlight bool `json:"inFlight"`
}

// Gateway is used to send outbound notifications to the studio UI.
type Gateway interface {
	// RegisterStudio registers a new studio connection with the gateway. Should be called each time a connection is initialized.
	RegisterStudio(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterStudio removes a studio connection from the gateway. Should be called each time a connection is closed.
	DeregisterStudio(ctx context.Context, id uuid.UUID) error

	// ElementSelected reports the current selection; nil means deselected.
	ElementSelected(ctx context.Context, selection *entity.Selection) error
	// DocumentChanged ships the new document with insert/delete counts relative to previous.
	DocumentChanged(ctx context.Context, previous string, current string) error
	// ChatTurnAdded appends an entry to the studio's conversation view.
	ChatTurnAdded(ctx context.Context, turn entity.ChatTurn) error
	// SyncState reports whether the open project is persisted.
	SyncState(ctx context.Context, synced bool) error
	// GenerationState reports whether a generation is in flight.
	GenerationState(ctx context.Context, inFlight bool) error
}

type gateway struct {
	connections map[uuid.UUID]jsonrpc2.Conn
	connMu      sync.Mutex
	differ      *diffmatchpatch.DiffMatchPatch
	logger      *zap.SugaredLogger
}

// New returns a Gateway for sending studio notifications.
func New(logger *zap.SugaredLogger) Gateway {
	return &gateway{
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		differ:      diffmatchpatch.New(),
		logger:      logger,
	}
}

func (g *gateway) RegisterStudio(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	g.connMu.Lock()
	defer g.connMu.Unlock()

	g.connections[id] = *conn
	return nil
}

func (g *gateway) DeregisterStudio(ctx context.Context, id uuid.UUID) error {
	g.connMu.Lock()
	defer g.connMu.Unlock()

	delete(g.connections, id)
	return nil
}

func (g *gateway) ElementSelected(ctx context.Context, selection *entity.Selection) error {
	return g.notify(ctx, MethodElementSelected, ElementSelectedParams{Selection: selection})
}

func (g *gateway) DocumentChanged(ctx context.Context, previous string, current string) error {
	ins, del := g.deltaStats(previous, current)
	return g.notify(ctx, MethodDocumentChanged, DocumentChangedParams{
		Document:   current,
		Insertions: ins,
		Deletions:  del,
	})
}

func (g *gateway) ChatTurnAdded(ctx context.Context, turn entity.ChatTurn) error {
	return g.notify(ctx, MethodChatTurnAdded, ChatTurnAddedParams{
		Speaker:   string(turn.Speaker),
		Text:      turn.Text,
		Timestamp: turn.Timestamp,
	})
}

func (g *gateway) SyncState(ctx context.Context, synced bool) error {
	return g.notify(ctx, MethodSyncState, SyncStateParams{Synced: synced})
}

func (g *gateway) GenerationState(ctx context.Context, inFlight bool) error {
	return g.notify(ctx, MethodGenerationState, GenerationStateParams{InFlight: inFlight})
}

func (g *gateway) notify(ctx context.Context, method string, params interface{}) error {
	conn, err := g.getConn(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToStudio, err)
	}
	if err := conn.Notify(ctx, method, params); err != nil {
		return fmt.Errorf(_errSendToStudio, err)
	}
	return nil
}

// deltaStats counts inserted and deleted characters between two documents.
func (g *gateway) deltaStats(previous string, current string) (insertions int, deletions int) {
	diffs := g.differ.DiffMain(previous, current, false)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			insertions += len(d.Text)
		case diffmatchpatch.DiffDelete:
			deletions += len(d.Text)
		}
	}
	return insertions, deletions
}

func (g *gateway) getConn(ctx context.Context) (jsonrpc2.Conn, error) {
	g.connMu.Lock()
	defer g.connMu.Unlock()

	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}

	conn, ok := g.connections[id]
	if !ok {
		return nil, fmt.Errorf("studio with id %q not found", id)
	}
	return conn, nil
}
