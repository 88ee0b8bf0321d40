package mapper

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/siteweaver/weaver/src/weaver/entity"
	"github.com/siteweaver/weaver/src/weaver/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
)

func TestProjectToModel(t *testing.T) {
	p := factory.Project("Portfolio")
	m := ProjectToModel(p)
	assert.Equal(t, p.UUID, m.UUID)
	assert.Equal(t, p.Name, m.Name)
	assert.Equal(t, p.Document, m.Document)
	assert.Equal(t, p.Synced, m.Synced)
	require.Len(t, m.History, len(p.History))
	for i, turn := range p.History {
		assert.Equal(t, string(turn.Speaker), m.History[i].Speaker)
		assert.Equal(t, turn.Text, m.History[i].Text)
		assert.Equal(t, turn.Timestamp, m.History[i].Timestamp)
	}
}

func TestModelToProject(t *testing.T) {
	m := ProjectToModel(factory.Project("Portfolio"))
	p, err := ModelToProject(m)
	require.NoError(t, err)
	assert.Equal(t, m.UUID, p.UUID)
	assert.Equal(t, m.Name, p.Name)
	assert.Equal(t, m.Document, p.Document)
	require.Len(t, p.History, len(m.History))
	assert.Equal(t, entity.SpeakerUser, p.History[0].Speaker)
}

func TestSessionRoundTrip(t *testing.T) {
	conn := jsonrpc2.NewConn(nil)
	f := &entity.Session{
		UUID:        factory.UUID(),
		Conn:        &conn,
		ProjectUUID: factory.UUID(),
		Account:     "ada",
	}
	m := SessionToModel(f)
	assert.Equal(t, f.UUID, m.UUID)
	assert.Equal(t, f.Conn, m.Conn)
	assert.Equal(t, f.ProjectUUID, m.ProjectUUID)
	assert.Equal(t, f.Account, m.Account)

	back, err := ModelToSession(m)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestUUIDToSession(t *testing.T) {
	conn := jsonrpc2.NewConn(nil)
	u := factory.UUID()
	s := UUIDToSession(u, &conn)
	assert.Equal(t, u, s.UUID)
	assert.Equal(t, &conn, s.Conn)
}

func TestContextToSessionUUID(t *testing.T) {
	u := factory.UUID()
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, u)
	got, err := ContextToSessionUUID(ctx)
	assert.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = ContextToSessionUUID(context.Background())
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
