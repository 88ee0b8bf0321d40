// Package studio implements the weaver-daemon's inbound JSON-RPC surface.
package studio

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	editsession "github.com/siteweaver/weaver/src/weaver/controller/edit-session"
	"github.com/siteweaver/weaver/src/weaver/controller/generation"
	controller "github.com/siteweaver/weaver/src/weaver/controller/studio"
	"github.com/siteweaver/weaver/src/weaver/entity"
	"github.com/siteweaver/weaver/src/weaver/internal/jsonrpcfx"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler accepts studio connections and routes their requests.
type Handler = jsonrpcfx.ConnectionManager

// Params are inbound parameters to construct the handler.
type Params struct {
	fx.In

	Studio      controller.Controller
	EditSession editsession.Controller
	Generation  generation.Controller
	JSONRPC     jsonrpcfx.JSONRPCModule
	Stats       tally.Scope
	Logger      *zap.SugaredLogger
}

// New constructs a new studio Handler and registers it for inbound
// connections.
func New(p Params) (Handler, error) {
	c := jsonRPCConnectionManager{
		studio:      p.Studio,
		editSession: p.EditSession,
		generation:  p.Generation,
		stats:       p.Stats.SubScope("json_rpc"),
		logger:      p.Logger,
	}
	if err := p.JSONRPC.RegisterConnectionManager(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

type jsonRPCConnectionManager struct {
	studio      controller.Controller
	editSession editsession.Controller
	generation  generation.Controller
	stats       tally.Scope
	logger      *zap.SugaredLogger
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := c.studio.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := jsonRPCRouter{
		studio:      c.studio,
		editSession: c.editSession,
		generation:  c.generation,
		uuid:        id,
		stats:       c.stats,
		logger:      c.logger,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure session is removed even if no Exit call has been received.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.studio.EndSession(ctx, id)
}
