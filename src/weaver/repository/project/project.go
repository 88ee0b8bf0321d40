// Package project persists projects in a local SQLite database and serves
// the built-in read-only templates alongside them.
package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/siteweaver/weaver/src/weaver/entity"
	"github.com/siteweaver/weaver/src/weaver/internal/clock"
	"github.com/siteweaver/weaver/src/weaver/internal/errors"
	"github.com/siteweaver/weaver/src/weaver/internal/fs"
	"github.com/siteweaver/weaver/src/weaver/internal/sqlite"
	"github.com/siteweaver/weaver/src/weaver/mapper"
	"github.com/siteweaver/weaver/src/weaver/model"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	_configKeyStorage = "storage"

	_defaultSyncDelayMs = 600
)

const _schema = `
CREATE TABLE IF NOT EXISTS projects (
	uuid TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	thumbnail TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	document TEXT NOT NULL,
	history TEXT NOT NULL,
	synced INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS account (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL
);
`

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Repository stores projects durably. Templates are part of the same
// namespace but never written.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	List(ctx context.Context) ([]*entity.Project, error)
	Save(ctx context.Context, p *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	SignIn(ctx context.Context, name string) error
	CurrentAccount(ctx context.Context) (string, error)
	SignOut(ctx context.Context) error
}

// Config holds the storage settings read from the storage config key.
type Config struct {
	DBPath        string `yaml:"dbPath"`
	TemplatesPath string `yaml:"templatesPath"`
	SyncDelayMs   int    `yaml:"syncDelayMs"`
}

// Params define values to be used by the project repository.
type Params struct {
	fx.In

	Config    config.Provider
	Clock     clock.Clock
	FS        fs.WeaverFS
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

type repository struct {
	db        *sql.DB
	clock     clock.Clock
	logger    *zap.SugaredLogger
	syncDelay time.Duration

	mu        sync.Mutex
	templates map[uuid.UUID]*model.Project
	order     []uuid.UUID
}

// New opens the project store and seeds the templates from disk.
func New(p Params) (Repository, error) {
	var cfg Config
	if err := p.Config.Get(_configKeyStorage).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyStorage, err)
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("missing field %q in config", _configKeyStorage+".dbPath")
	}
	if cfg.SyncDelayMs == 0 {
		cfg.SyncDelayMs = _defaultSyncDelayMs
	}

	db, err := sqlite.Open(cfg.DBPath, sqlite.WithMkdirAll(), sqlite.WithSchema(_schema))
	if err != nil {
		return nil, fmt.Errorf("opening project store: %w", err)
	}

	r := &repository{
		db:        db,
		clock:     p.Clock,
		logger:    p.Logger,
		syncDelay: time.Duration(cfg.SyncDelayMs) * time.Millisecond,
		templates: make(map[uuid.UUID]*model.Project),
	}

	if cfg.TemplatesPath != "" {
		if err := r.loadTemplates(p.FS, cfg.TemplatesPath); err != nil {
			db.Close()
			return nil, err
		}
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error { return db.Close() },
	})

	return r, nil
}

// Get returns the project or template with the given id.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	r.mu.Lock()
	tmpl, ok := r.templates[id]
	r.mu.Unlock()
	if ok {
		return mapper.ModelToProject(tmpl)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT uuid, name, thumbnail, created_at, document, history, synced FROM projects WHERE uuid = ?`,
		id.String())
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, &errors.ProjectNotFoundError{UUID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("reading project %s: %w", id, err)
	}
	return mapper.ModelToProject(p)
}

// List returns templates first, then stored projects newest first.
func (r *repository) List(ctx context.Context) ([]*entity.Project, error) {
	out := make([]*entity.Project, 0)

	r.mu.Lock()
	for _, id := range r.order {
		tmpl, err := mapper.ModelToProject(r.templates[id])
		if err == nil {
			out = append(out, tmpl)
		}
	}
	r.mu.Unlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT uuid, name, thumbnail, created_at, document, history, synced FROM projects ORDER BY created_at DESC, uuid`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("listing projects: %w", err)
		}
		proj, err := mapper.ModelToProject(p)
		if err != nil {
			return nil, err
		}
		out = append(out, proj)
	}
	return out, rows.Err()
}

// Save upserts the project. The simulated remote sync latency applies here,
// matching the behavior of a hosted backend.
func (r *repository) Save(ctx context.Context, p *entity.Project) error {
	if p == nil {
		return errors.New("can't save nil project")
	}
	if r.isTemplate(p.UUID) || p.Template {
		return errors.ErrTemplateReadOnly
	}

	r.clock.Sleep(r.syncDelay)

	m := mapper.ProjectToModel(p)
	history, err := json.Marshal(m.History)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO projects (uuid, name, thumbnail, created_at, document, history, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(uuid) DO UPDATE SET
			name = excluded.name,
			thumbnail = excluded.thumbnail,
			document = excluded.document,
			history = excluded.history,
			synced = excluded.synced`,
		m.UUID.String(), m.Name, m.Thumbnail, m.CreatedAt.UTC(), m.Document, string(history), m.Synced)
	if err != nil {
		return fmt.Errorf("saving project %s: %w", m.UUID, err)
	}
	return nil
}

// Delete removes a stored project. Deleting a template or an unknown id is a
// no-op.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.isTemplate(id) {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE uuid = ?`, id.String()); err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	return nil
}

// SignIn records the local display name. Signing in again replaces it.
func (r *repository) SignIn(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("can't sign in with an empty name")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO account (id, name) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name`, name)
	if err != nil {
		return fmt.Errorf("signing in: %w", err)
	}
	return nil
}

// CurrentAccount returns the signed-in display name, or "" when signed out.
func (r *repository) CurrentAccount(ctx context.Context) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM account WHERE id = 1`).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading account: %w", err)
	}
	return name, nil
}

// SignOut clears the signed-in account. Signing out while signed out is a
// no-op.
func (r *repository) SignOut(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM account WHERE id = 1`); err != nil {
		return fmt.Errorf("signing out: %w", err)
	}
	return nil
}

func (r *repository) isTemplate(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.templates[id]
	return ok
}

type templatesFile struct {
	Templates []struct {
		UUID      string `yaml:"uuid"`
		Name      string `yaml:"name"`
		Thumbnail string `yaml:"thumbnail"`
		Document  string `yaml:"document"`
	} `yaml:"templates"`
}

func (r *repository) loadTemplates(weaverFS fs.WeaverFS, path string) error {
	raw, err := weaverFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading templates from %s: %w", path, err)
	}

	var file templatesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing templates from %s: %w", path, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range file.Templates {
		id, err := uuid.FromString(t.UUID)
		if err != nil {
			return fmt.Errorf("template %q has invalid uuid %q: %w", t.Name, t.UUID, err)
		}
		r.templates[id] = &model.Project{
			UUID:      id,
			Name:      t.Name,
			Thumbnail: t.Thumbnail,
			Document:  t.Document,
			History:   []model.ChatTurn{},
			Synced:    true,
			Template:  true,
		}
		r.order = append(r.order, id)
	}
	r.logger.Infow("templates loaded", zap.Int("count", len(r.order)), zap.String("path", path))
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanProject(row scannable) (*model.Project, error) {
	var (
		p       model.Project
		id      string
		history string
	)
	if err := row.Scan(&id, &p.Name, &p.Thumbnail, &p.CreatedAt, &p.Document, &history, &p.Synced); err != nil {
		return nil, err
	}

	parsed, err := uuid.FromString(id)
	if err != nil {
		return nil, fmt.Errorf("stored uuid %q: %w", id, err)
	}
	p.UUID = parsed

	if err := json.Unmarshal([]byte(history), &p.History); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	return &p, nil
}
