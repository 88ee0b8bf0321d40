// Package mapper converts between entity and model representations, and
// extracts request-scoped values from contexts.
package mapper

import (
	"context"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"

	"github.com/siteweaver/weaver/src/weaver/entity"
	"github.com/siteweaver/weaver/src/weaver/internal/errors"
	"github.com/siteweaver/weaver/src/weaver/model"
)

// ProjectToModel maps a Project entity to its model equivalent.
func ProjectToModel(p *entity.Project) *model.Project {
	history := make([]model.ChatTurn, len(p.History))
	for i, turn := range p.History {
		history[i] = model.ChatTurn{
			Speaker:   string(turn.Speaker),
			Text:      turn.Text,
			Timestamp: turn.Timestamp,
		}
	}
	return &model.Project{
		UUID:      p.UUID,
		Name:      p.Name,
		Thumbnail: p.Thumbnail,
		CreatedAt: p.CreatedAt,
		Document:  p.Document,
		History:   history,
		Synced:    p.Synced,
		Template:  p.Template,
	}
}

// ModelToProject maps a model Project to its entity equivalent.
func ModelToProject(p *model.Project) (*entity.Project, error) {
	history := make([]entity.ChatTurn, len(p.History))
	for i, turn := range p.History {
		history[i] = entity.ChatTurn{
			Speaker:   entity.Speaker(turn.Speaker),
			Text:      turn.Text,
			Timestamp: turn.Timestamp,
		}
	}
	return &entity.Project{
		UUID:      p.UUID,
		Name:      p.Name,
		Thumbnail: p.Thumbnail,
		CreatedAt: p.CreatedAt,
		Document:  p.Document,
		History:   history,
		Synced:    p.Synced,
		Template:  p.Template,
	}, nil
}

// SessionToModel maps a Session entity to its model equivalent.
func SessionToModel(s *entity.Session) *model.Session {
	return &model.Session{
		UUID:        s.UUID,
		Conn:        s.Conn,
		ProjectUUID: s.ProjectUUID,
		Account:     s.Account,
	}
}

// ModelToSession maps a model Session to its entity equivalent.
func ModelToSession(s *model.Session) (*entity.Session, error) {
	return &entity.Session{
		UUID:        s.UUID,
		Conn:        s.Conn,
		ProjectUUID: s.ProjectUUID,
		Account:     s.Account,
	}, nil
}

// UUIDToSession initializes a new Session entity with the assigned uuid and
// connection.
func UUIDToSession(u uuid.UUID, c *jsonrpc2.Conn) *entity.Session {
	return &entity.Session{
		UUID: u,
		Conn: c,
	}
}

// ContextToSessionUUID extracts the session UUID from a context.
func ContextToSessionUUID(c context.Context) (uuid.UUID, error) {
	s, ok := c.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoSessionFoundError{}
	}
	return s, nil
}
