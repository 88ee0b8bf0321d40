package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/siteweaver/weaver/src/weaver/entity"
	"github.com/siteweaver/weaver/src/weaver/internal/jsonrpc2mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newRegistered(t *testing.T) (Gateway, *jsonrpc2mock.MockConn, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockConn := jsonrpc2mock.NewMockConn(ctrl)

	g := New(zap.NewNop().Sugar())
	id := uuid.Must(uuid.NewV4())
	var conn jsonrpc2.Conn = mockConn
	require.NoError(t, g.RegisterStudio(context.Background(), id, &conn))

	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)
	return g, mockConn, ctx
}

func TestNotifyWithoutSession(t *testing.T) {
	g := New(zap.NewNop().Sugar())
	err := g.SyncState(context.Background(), true)
	assert.Error(t, err)
}

func TestNotifyUnregisteredSession(t *testing.T) {
	g := New(zap.NewNop().Sugar())
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, uuid.Must(uuid.NewV4()))
	err := g.SyncState(ctx, true)
	assert.Error(t, err)
}

func TestElementSelected(t *testing.T) {
	g, mockConn, ctx := newRegistered(t)

	sel := &entity.Selection{ID: "sw-abc123def", TagName: "h1", Text: "Welcome"}
	mockConn.EXPECT().
		Notify(gomock.Any(), MethodElementSelected, ElementSelectedParams{Selection: sel}).
		Return(nil)
	assert.NoError(t, g.ElementSelected(ctx, sel))

	// nil selection reports a deselect
	mockConn.EXPECT().
		Notify(gomock.Any(), MethodElementSelected, ElementSelectedParams{}).
		Return(nil)
	assert.NoError(t, g.ElementSelected(ctx, nil))
}

func TestDocumentChangedDeltaStats(t *testing.T) {
	g, mockConn, ctx := newRegistered(t)

	previous := "<html><body><h1>old</h1></body></html>"
	current := "<html><body><h1>newer</h1></body></html>"

	var got DocumentChangedParams
	mockConn.EXPECT().
		Notify(gomock.Any(), MethodDocumentChanged, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params interface{}) error {
			got = params.(DocumentChangedParams)
			return nil
		})

	require.NoError(t, g.DocumentChanged(ctx, previous, current))
	assert.Equal(t, current, got.Document)
	assert.Equal(t, 5, got.Insertions)
	assert.Equal(t, 3, got.Deletions)
}

func TestChatTurnAdded(t *testing.T) {
	g, mockConn, ctx := newRegistered(t)

	at := time.Now()
	mockConn.EXPECT().
		Notify(gomock.Any(), MethodChatTurnAdded, ChatTurnAddedParams{
			Speaker:   "assistant",
			Text:      "Design updated successfully.",
			Timestamp: at,
		}).
		Return(nil)

	err := g.ChatTurnAdded(ctx, entity.ChatTurn{
		Speaker:   entity.SpeakerAssistant,
		Text:      "Design updated successfully.",
		Timestamp: at,
	})
	assert.NoError(t, err)
}

func TestStateNotifications(t *testing.T) {
	g, mockConn, ctx := newRegistered(t)

	mockConn.EXPECT().Notify(gomock.Any(), MethodSyncState, SyncStateParams{Synced: true}).Return(nil)
	assert.NoError(t, g.SyncState(ctx, true))

	mockConn.EXPECT().Notify(gomock.Any(), MethodGenerationState, GenerationStateParams{InFlight: true}).Return(nil)
	assert.NoError(t, g.GenerationState(ctx, true))
}

func TestDeregisterStudio(t *testing.T) {
	g, _, ctx := newRegistered(t)

	id, err := mapperUUID(ctx)
	require.NoError(t, err)
	require.NoError(t, g.DeregisterStudio(ctx, id))

	assert.Error(t, g.SyncState(ctx, true))
}

func mapperUUID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, assert.AnError
	}
	return id, nil
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
