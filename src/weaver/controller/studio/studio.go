// Package studio implements the weaver-daemon top-level business logic:
// connection lifecycle, project management, accounts, and document watching.
package studio

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	editsession "github.com/siteweaver/weaver/src/weaver/controller/edit-session"
	"github.com/siteweaver/weaver/src/weaver/entity"
	notifier "github.com/siteweaver/weaver/src/weaver/gateway/studio-client"
	"github.com/siteweaver/weaver/src/weaver/internal/clock"
	"github.com/siteweaver/weaver/src/weaver/internal/docwatch"
	weavererrors "github.com/siteweaver/weaver/src/weaver/internal/errors"
	"github.com/siteweaver/weaver/src/weaver/internal/fs"
	"github.com/siteweaver/weaver/src/weaver/mapper"
	projectrepo "github.com/siteweaver/weaver/src/weaver/repository/project"
	"github.com/siteweaver/weaver/src/weaver/repository/session"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_nameKey = "studio"

	// Configuration keys
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"

	_engineName = "SiteWeaver Engine"

	// Project names are derived from the originating prompt, clipped for
	// dashboard display.
	_maxProjectNameLen = 25
)

// InitializeParams describe the connecting studio.
type InitializeParams struct {
	ClientName    string `json:"clientName,omitempty"`
	ClientVersion string `json:"clientVersion,omitempty"`
}

// ServerInfo identifies the engine to the studio.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// InitializeResult is returned to a newly initialized studio.
type InitializeResult struct {
	ServerInfo ServerInfo `json:"serverInfo"`
}

// Controller orchestrates the business logic for each request.
type Controller interface {
	// Lifecycle methods.
	Initialize(ctx context.Context, params *InitializeParams) (*InitializeResult, error)
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	// Account methods.
	SignIn(ctx context.Context, name string) error
	SignOut(ctx context.Context) error
	CurrentAccount(ctx context.Context) (string, error)

	// Project methods.
	CreateProject(ctx context.Context, prompt string) (*entity.Project, error)
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	// Document watch methods.
	WatchDocument(ctx context.Context, path string) error
	UnwatchDocument(ctx context.Context, path string) error

	// Custom methods for use within this service.
	RequestFullShutdown(ctx context.Context) error
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, uuid uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner  fx.Shutdowner
	Sessions    session.Repository
	Projects    projectrepo.Repository
	Studio      notifier.Gateway
	EditSession editsession.Controller
	Watcher     docwatch.DocWatch
	FS          fs.WeaverFS
	Clock       clock.Clock
	Logger      *zap.SugaredLogger
	Config      config.Provider
}

type controller struct {
	sessions    session.Repository
	projects    projectrepo.Repository
	studio      notifier.Gateway
	editSession editsession.Controller
	watcher     docwatch.DocWatch
	fs          fs.WeaverFS
	clock       clock.Clock
	logger      *zap.SugaredLogger

	shutdowner         fx.Shutdowner
	fullShutdown       bool
	idleTimer          *time.Timer
	idleTimerMu        sync.Mutex
	idleTimeoutMinutes time.Duration

	// watched paths per session, so disconnects release their watches.
	watches   map[uuid.UUID]map[string]struct{}
	watchesMu sync.Mutex
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil || timeoutMinutesRaw == 0 {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}

	return &controller{
		sessions:           p.Sessions,
		projects:           p.Projects,
		studio:             p.Studio,
		editSession:        p.EditSession,
		watcher:            p.Watcher,
		fs:                 p.FS,
		clock:              p.Clock,
		logger:             p.Logger.With("controller", _nameKey),
		shutdowner:         p.Shutdowner,
		idleTimeoutMinutes: time.Duration(timeoutMinutesRaw) * time.Minute,
		watches:            make(map[uuid.UUID]map[string]struct{}),
	}, nil
}

// Initialize stores information about a new connection and identifies the
// engine to the studio.
func (c *controller) Initialize(ctx context.Context, params *InitializeParams) (*InitializeResult, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting session from context: %w", err)
	}

	if params != nil && params.ClientName != "" {
		c.logger.Infow("studio connected", zap.Stringer("session", s.UUID), zap.String("client", params.ClientName))
	}

	if err := c.sessions.Set(ctx, s); err != nil {
		return nil, fmt.Errorf("setting updated session state: %w", err)
	}

	return &InitializeResult{
		ServerInfo: ServerInfo{Name: _engineName},
	}, nil
}

// Shutdown is sent just before Exit to indicate that the session will exit.
func (c *controller) Shutdown(ctx context.Context) error {
	return nil
}

// Exit cleans up an individual connection, or shuts down the whole engine
// after a full shutdown request.
func (c *controller) Exit(ctx context.Context) error {
	if c.fullShutdown {
		// Zero out the timer to trigger immediate shutdown.
		c.idleTimerMu.Lock()
		c.idleTimer.Reset(0)
		c.idleTimerMu.Unlock()
		return nil
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("error during session exit: %w", err)
	}
	return c.EndSession(ctx, s.UUID)
}

// RequestFullShutdown sets the controller to treat subsequent Shutdown and
// Exit requests as requests to exit the entire process.
func (c *controller) RequestFullShutdown(ctx context.Context) error {
	c.fullShutdown = true
	return nil
}

// InitSession creates a new empty session and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	session := mapper.UUIDToSession(id, conn)
	if err := c.studio.RegisterStudio(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}

	if err := c.sessions.Set(ctx, session); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// EndSession includes any cleanup at the end of the session, during or after
// the last JSON-RPC request.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	c.releaseWatches(id)

	sessionCtx := context.WithValue(ctx, entity.SessionContextKey, id)
	var errs error
	if err := c.editSession.Close(sessionCtx); err != nil {
		errs = multierr.Append(errs, err)
	}

	if err := c.studio.DeregisterStudio(ctx, id); err != nil {
		c.logger.Error(err)
	}
	return multierr.Append(errs, c.sessions.Delete(ctx, id))
}

// SignIn records the account both durably and on the current session.
func (c *controller) SignIn(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return weavererrors.New("account name is empty")
	}

	if err := c.projects.SignIn(ctx, name); err != nil {
		return err
	}

	if s, err := c.sessions.GetFromContext(ctx); err == nil {
		s.Account = name
		if err := c.sessions.Set(ctx, s); err != nil {
			return err
		}
	}
	c.logger.Infow("account signed in", zap.String("account", name))
	return nil
}

// SignOut clears the stored account.
func (c *controller) SignOut(ctx context.Context) error {
	if err := c.projects.SignOut(ctx); err != nil {
		return err
	}

	if s, err := c.sessions.GetFromContext(ctx); err == nil {
		s.Account = ""
		if err := c.sessions.Set(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// CurrentAccount returns the signed-in account name, empty when signed out.
func (c *controller) CurrentAccount(ctx context.Context) (string, error) {
	return c.projects.CurrentAccount(ctx)
}

// CreateProject persists a fresh project named after its originating prompt,
// carrying the placeholder document and the prompt as its only chat turn.
// The first open triggers the initial generation.
func (c *controller) CreateProject(ctx context.Context, prompt string) (*entity.Project, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, weavererrors.ErrEmptyInstruction
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	project := &entity.Project{
		UUID:      id,
		Name:      projectName(prompt),
		CreatedAt: now,
		Document:  entity.PlaceholderDocument,
		History: []entity.ChatTurn{
			{Speaker: entity.SpeakerUser, Text: prompt, Timestamp: now},
		},
	}

	if err := c.projects.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("persisting new project: %w", err)
	}
	project.Synced = true

	c.logger.Infow("project created", zap.Stringer("project", id))
	return project, nil
}

// ListProjects returns templates followed by stored projects.
func (c *controller) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	return c.projects.List(ctx)
}

// DeleteProject removes a stored project and closes any session state still
// holding it open.
func (c *controller) DeleteProject(ctx context.Context, id uuid.UUID) error {
	open, err := c.sessions.GetAllForProject(ctx, id)
	if err != nil {
		return err
	}

	var errs error
	for _, s := range open {
		sessionCtx := context.WithValue(ctx, entity.SessionContextKey, s.UUID)
		errs = multierr.Append(errs, c.editSession.Close(sessionCtx))
	}

	return multierr.Append(errs, c.projects.Delete(ctx, id))
}

// WatchDocument imports the file on every write until the path is unwatched
// or the session ends.
func (c *controller) WatchDocument(ctx context.Context, path string) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	sessionCtx := context.WithValue(context.Background(), entity.SessionContextKey, s.UUID)
	if err := c.watcher.Watch(path, func(changed string) {
		c.importWatched(sessionCtx, changed)
	}); err != nil {
		return err
	}

	c.watchesMu.Lock()
	if c.watches[s.UUID] == nil {
		c.watches[s.UUID] = make(map[string]struct{})
	}
	c.watches[s.UUID][path] = struct{}{}
	c.watchesMu.Unlock()

	c.logger.Infow("watching document", zap.Stringer("session", s.UUID), zap.String("path", path))
	return nil
}

// UnwatchDocument stops importing writes to the path.
func (c *controller) UnwatchDocument(ctx context.Context, path string) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	c.watchesMu.Lock()
	if paths := c.watches[s.UUID]; paths != nil {
		delete(paths, path)
	}
	c.watchesMu.Unlock()

	return c.watcher.Unwatch(path)
}

func (c *controller) importWatched(ctx context.Context, path string) {
	content, err := c.fs.ReadFile(path)
	if err != nil {
		c.logger.Warnw("reading watched document", zap.String("path", path), zap.Error(err))
		return
	}

	if err := c.editSession.Import(ctx, string(content)); err != nil {
		c.logger.Warnw("importing watched document", zap.String("path", path), zap.Error(err))
	}
}

func (c *controller) releaseWatches(id uuid.UUID) {
	c.watchesMu.Lock()
	paths := c.watches[id]
	delete(c.watches, id)
	c.watchesMu.Unlock()

	for path := range paths {
		if err := c.watcher.Unwatch(path); err != nil {
			c.logger.Warnw("releasing watch", zap.String("path", path), zap.Error(err))
		}
	}
}

// refreshIdleTimer ensures that the engine shuts down after a defined
// inactivity period with no connections.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call initializes new timer and leaves it running prior to first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.NewTimer(c.idleTimeoutMinutes)
		go func() {
			<-c.idleTimer.C
			c.logger.Info("Shutdown signal received.")
			if err := c.shutdowner.Shutdown(); err != nil {
				os.Exit(1)
			}
		}()
		return nil
	}

	// Subsequent calls stop the timer and reset it only if no connections are active.
	currentSessions, err := c.sessions.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	c.idleTimer.Stop()
	if currentSessions == 0 {
		c.idleTimer.Reset(c.idleTimeoutMinutes)
	}
	return nil
}

func projectName(prompt string) string {
	if len(prompt) > _maxProjectNameLen {
		return prompt[:_maxProjectNameLen] + "..."
	}
	return prompt
}
