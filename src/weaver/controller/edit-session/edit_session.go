// Package editsession owns the authoritative per-session editing state: the
// open project, the current selection, and the bound preview sandbox. Every
// document writer funnels through it.
package editsession

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/siteweaver/weaver/src/preview-lib/bridge"
	"github.com/siteweaver/weaver/src/preview-lib/envelope"
	"github.com/siteweaver/weaver/src/preview-lib/instrument"
	"github.com/siteweaver/weaver/src/preview-lib/sandbox"
	"github.com/siteweaver/weaver/src/weaver/entity"
	notifier "github.com/siteweaver/weaver/src/weaver/gateway/studio-client"
	weavererrors "github.com/siteweaver/weaver/src/weaver/internal/errors"
	projectrepo "github.com/siteweaver/weaver/src/weaver/repository/project"
	"github.com/siteweaver/weaver/src/weaver/repository/session"
	"github.com/uber-go/tally"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_nameKey        = "edit-session"
	_maxDocSizeKey  = "editor.maxDocumentSizeBytes"
	_scopeName      = "edit_session"
	_gaugeOpen      = "open_sessions"
	_counterReplace = "document_replacements"
)

// Origin identifies which writer replaced the document.
type Origin string

const (
	// OriginGeneration marks replacements produced by the orchestrator.
	OriginGeneration Origin = "generation"
	// OriginImport marks replacements loaded from a raw file.
	OriginImport Origin = "import"
)

// Controller is the edit session state controller.
type Controller interface {
	// Open loads the project into the session and boots its preview sandbox.
	Open(ctx context.Context, projectUUID uuid.UUID) (*entity.Project, error)
	// Project returns a copy of the session's project.
	Project(ctx context.Context) (*entity.Project, error)
	// Selection returns the current selection, nil when nothing is selected.
	Selection(ctx context.Context) (*entity.Selection, error)

	// Press simulates a primary-button press inside the preview.
	Press(ctx context.Context, target string) error
	// UpdateElement applies an optimistic patch to the selection and ships it
	// to the sandbox. Rejected when nothing is selected.
	UpdateElement(ctx context.Context, text *string, classes *string) error
	// Deselect clears the selection.
	Deselect(ctx context.Context) error

	// ReplaceDocument replaces the document wholesale and rebuilds the
	// sandbox. The project becomes unsynced and the selection is cleared.
	ReplaceDocument(ctx context.Context, document string, origin Origin) error
	// Import accepts raw HTML content as-is.
	Import(ctx context.Context, content string) error
	// ExportDocument returns the download filename and the verbatim document.
	ExportDocument(ctx context.Context) (string, string, error)
	// PreviewDocument returns the current document instrumented for an
	// embedded browser preview.
	PreviewDocument(ctx context.Context) (string, error)

	// AppendTurn records a conversation entry on the project.
	AppendTurn(ctx context.Context, turn entity.ChatTurn) error
	// Save persists the project. A failed write leaves the project unsynced
	// and is surfaced through the sync state, not as an error.
	Save(ctx context.Context) (bool, error)
	// Close tears down the session state and its sandbox.
	Close(ctx context.Context) error
}

// Params are inbound parameters to construct the controller.
type Params struct {
	fx.In

	Sessions session.Repository
	Projects projectrepo.Repository
	Studio   notifier.Gateway
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
	Config   config.Provider
}

type sessionState struct {
	mu        sync.Mutex
	project   *entity.Project
	selection *entity.Selection
	sandbox   *sandbox.Sandbox
	bridge    *bridge.Bridge

	// gen identifies the current sandbox; events drained from a closing
	// sandbox carry a stale gen and are dropped.
	gen int
}

type controller struct {
	sessions session.Repository
	projects projectrepo.Repository
	studio   notifier.Gateway
	logger   *zap.SugaredLogger
	stats    tally.Scope

	states   map[uuid.UUID]*sessionState
	statesMu sync.RWMutex

	maxDocumentSizeBytes int
}

// New creates a new edit session controller.
func New(p Params) Controller {
	var maxDocumentSizeBytes int
	if err := p.Config.Get(_maxDocSizeKey).Populate(&maxDocumentSizeBytes); err != nil || maxDocumentSizeBytes == 0 {
		panic(fmt.Errorf("unable to get maximum document size from config: %w", err))
	}

	return &controller{
		sessions:             p.Sessions,
		projects:             p.Projects,
		studio:               p.Studio,
		logger:               p.Logger.With("controller", _nameKey),
		stats:                p.Stats.SubScope(_scopeName),
		states:               make(map[uuid.UUID]*sessionState),
		maxDocumentSizeBytes: maxDocumentSizeBytes,
	}
}

func (c *controller) Open(ctx context.Context, projectUUID uuid.UUID) (*entity.Project, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := c.projects.Get(ctx, projectUUID)
	if err != nil {
		return nil, err
	}

	// Re-opening replaces any previously open project for this session.
	if prev := c.takeState(s.UUID); prev != nil {
		prev.bridge.Close()
	}

	state := &sessionState{project: project}
	if err := c.bootSandbox(s.UUID, state, project.Document); err != nil {
		return nil, err
	}

	c.statesMu.Lock()
	c.states[s.UUID] = state
	c.stats.Gauge(_gaugeOpen).Update(float64(len(c.states)))
	c.statesMu.Unlock()

	s.ProjectUUID = project.UUID
	if err := c.sessions.Set(ctx, s); err != nil {
		return nil, err
	}

	c.logger.Infow("project opened", zap.Stringer("session", s.UUID), zap.Stringer("project", project.UUID))
	return project.Clone(), nil
}

func (c *controller) Project(ctx context.Context) (*entity.Project, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return state.project.Clone(), nil
}

func (c *controller) Selection(ctx context.Context) (*entity.Selection, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.selection == nil {
		return nil, nil
	}
	sel := *state.selection
	return &sel, nil
}

func (c *controller) Press(ctx context.Context, target string) error {
	state, err := c.getState(ctx)
	if err != nil {
		return err
	}

	state.mu.Lock()
	sb := state.sandbox
	state.mu.Unlock()
	return sb.Press(target)
}

func (c *controller) UpdateElement(ctx context.Context, text *string, classes *string) error {
	state, err := c.getState(ctx)
	if err != nil {
		return err
	}

	state.mu.Lock()
	if state.selection == nil {
		state.mu.Unlock()
		return weavererrors.ErrNoSelection
	}
	patched := state.selection.Apply(text, classes)
	state.selection = &patched
	br := state.bridge
	state.mu.Unlock()

	// Optimistic: the sandbox confirms later with a document-changed event.
	br.SendUpdate(patched.ID, text, classes)
	return nil
}

func (c *controller) Deselect(ctx context.Context) error {
	state, err := c.getState(ctx)
	if err != nil {
		return err
	}

	state.mu.Lock()
	state.selection = nil
	state.mu.Unlock()

	if err := c.studio.ElementSelected(ctx, nil); err != nil {
		c.logger.Debugw("notifying deselect", zap.Error(err))
	}
	return nil
}

func (c *controller) ReplaceDocument(ctx context.Context, document string, origin Origin) error {
	if len(document) > c.maxDocumentSizeBytes {
		return &weavererrors.DocumentSizeLimitError{Size: len(document)}
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}
	state, err := c.getState(ctx)
	if err != nil {
		return err
	}

	state.mu.Lock()
	previous := state.project.Document
	state.project.Document = document
	state.project.Synced = false
	state.selection = nil
	// The old sandbox is invalidated before its queue drains: events still
	// in flight carry the previous gen and are dropped.
	state.gen++
	oldBridge := state.bridge
	state.mu.Unlock()

	// Stale identities die with the old document, so the sandbox is rebuilt.
	oldBridge.Close()
	if err := c.bootSandbox(s.UUID, state, document); err != nil {
		return err
	}

	c.stats.Counter(_counterReplace).Inc(1)
	c.logger.Infow("document replaced", zap.Stringer("session", s.UUID), zap.String("origin", string(origin)))
	c.notifyDocumentChanged(ctx, previous, document)
	if err := c.studio.ElementSelected(ctx, nil); err != nil {
		c.logger.Debugw("notifying selection cleared", zap.Error(err))
	}
	return nil
}

func (c *controller) Import(ctx context.Context, content string) error {
	return c.ReplaceDocument(ctx, content, OriginImport)
}

func (c *controller) ExportDocument(ctx context.Context) (string, string, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return "", "", err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return state.project.ExportFilename(), state.project.Document, nil
}

func (c *controller) PreviewDocument(ctx context.Context) (string, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return "", err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return instrument.Instrument(state.project.Document), nil
}

func (c *controller) AppendTurn(ctx context.Context, turn entity.ChatTurn) error {
	state, err := c.getState(ctx)
	if err != nil {
		return err
	}

	state.mu.Lock()
	state.project.History = append(state.project.History, turn)
	state.mu.Unlock()

	if err := c.studio.ChatTurnAdded(ctx, turn); err != nil {
		c.logger.Debugw("notifying chat turn", zap.Error(err))
	}
	return nil
}

func (c *controller) Save(ctx context.Context) (bool, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return false, err
	}

	state.mu.Lock()
	snapshot := state.project.Clone()
	state.mu.Unlock()

	if err := c.projects.Save(ctx, snapshot); err != nil {
		c.logger.Errorw("saving project", zap.Stringer("project", snapshot.UUID), zap.Error(err))
		if err := c.studio.SyncState(ctx, false); err != nil {
			c.logger.Debugw("notifying sync state", zap.Error(err))
		}
		return false, nil
	}

	state.mu.Lock()
	state.project.Synced = true
	state.mu.Unlock()

	if err := c.studio.SyncState(ctx, true); err != nil {
		c.logger.Debugw("notifying sync state", zap.Error(err))
	}
	return true, nil
}

func (c *controller) Close(ctx context.Context) error {
	id, err := c.sessionUUID(ctx)
	if err != nil {
		return err
	}

	state := c.takeState(id)
	if state == nil {
		return nil
	}

	var errs error
	state.bridge.Close()
	errs = multierr.Append(errs, c.sessions.Delete(ctx, id))
	c.logger.Infow("session state closed", zap.Stringer("session", id))
	return errs
}

// bootSandbox parses the document into a fresh sandbox and binds the bridge
// whose hooks feed this controller. Must be called without the state lock
// held.
func (c *controller) bootSandbox(id uuid.UUID, state *sessionState, document string) error {
	sb, err := sandbox.New(document)
	if err != nil {
		return fmt.Errorf("booting preview sandbox: %w", err)
	}

	hookCtx := context.WithValue(context.Background(), entity.SessionContextKey, id)

	state.mu.Lock()
	gen := state.gen
	state.sandbox = sb
	state.bridge = bridge.Bind(sb, bridge.Hooks{
		OnElementSelected: func(sel envelope.ElementSelected) {
			c.onElementSelected(hookCtx, state, gen, sel)
		},
		OnDocumentUpdated: func(doc string) {
			c.onDocumentUpdated(hookCtx, state, gen, doc)
		},
	}, c.logger)
	state.mu.Unlock()
	return nil
}

// onElementSelected replaces the selection wholesale; a rapid second press
// simply supersedes the first.
func (c *controller) onElementSelected(ctx context.Context, state *sessionState, gen int, sel envelope.ElementSelected) {
	selection := &entity.Selection{
		ID:      sel.ID,
		TagName: sel.TagName,
		Text:    sel.Text,
		Classes: sel.Classes,
	}

	state.mu.Lock()
	if state.gen != gen {
		state.mu.Unlock()
		return
	}
	state.selection = selection
	state.mu.Unlock()

	if err := c.studio.ElementSelected(ctx, selection); err != nil {
		c.logger.Debugw("notifying selection", zap.Error(err))
	}
}

// onDocumentUpdated absorbs a confirmed preview edit: the document is
// replaced without rebuilding the sandbox, keeping identities and the
// selection alive.
func (c *controller) onDocumentUpdated(ctx context.Context, state *sessionState, gen int, document string) {
	state.mu.Lock()
	if state.gen != gen || state.project.Document == document {
		state.mu.Unlock()
		return
	}
	previous := state.project.Document
	state.project.Document = document
	state.project.Synced = false
	state.mu.Unlock()

	c.notifyDocumentChanged(ctx, previous, document)
}

func (c *controller) notifyDocumentChanged(ctx context.Context, previous string, current string) {
	if err := c.studio.DocumentChanged(ctx, previous, current); err != nil {
		c.logger.Debugw("notifying document change", zap.Error(err))
	}
	if err := c.studio.SyncState(ctx, false); err != nil {
		c.logger.Debugw("notifying sync state", zap.Error(err))
	}
}

func (c *controller) sessionUUID(ctx context.Context) (uuid.UUID, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return s.UUID, nil
}

func (c *controller) getState(ctx context.Context) (*sessionState, error) {
	id, err := c.sessionUUID(ctx)
	if err != nil {
		return nil, err
	}

	c.statesMu.RLock()
	defer c.statesMu.RUnlock()

	state, ok := c.states[id]
	if !ok {
		return nil, &weavererrors.UUIDNotFoundError{UUID: id}
	}
	return state, nil
}

func (c *controller) takeState(id uuid.UUID) *sessionState {
	c.statesMu.Lock()
	defer c.statesMu.Unlock()

	state, ok := c.states[id]
	if !ok {
		return nil
	}
	delete(c.states, id)
	c.stats.Gauge(_gaugeOpen).Update(float64(len(c.states)))
	return state
}
