package studio

import (
	"context"
	"encoding/json"
	"fmt"

	controller "github.com/siteweaver/weaver/src/weaver/controller/studio"
	"go.lsp.dev/jsonrpc2"
)

// Initialize extracts InitializeParams from the request and calls initialization logic for a new studio connection.
func (r *jsonRPCRouter) Initialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params := controller.InitializeParams{}
	if len(req.Params()) > 0 {
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err))
		}
	}

	result, err := r.studio.Initialize(ctx, &params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}

// Shutdown asks the engine to shut down, but to not exit.
// RequestFullShutdown must be sent first if full shutdown is needed, otherwise it will be used only to clean up from that specific client.
func (r *jsonRPCRouter) Shutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.studio.Shutdown(ctx)
	return reply(ctx, nil, err)
}

// Exit asks the engine to exit its process.
// Because the engine is shared between multiple studio windows, the process will only exit when RequestFullShutdown is sent first.
func (r *jsonRPCRouter) Exit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	// Reply first to ensure that a reply is sent before the controller initiates the shutdown.
	reply(ctx, nil, nil)
	err := r.studio.Exit(ctx)
	return err
}

// RequestFullShutdown will indicate that the next Shutdown and Exit requests should perform a full shutdown and exit of the engine.
func (r *jsonRPCRouter) RequestFullShutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.studio.RequestFullShutdown(ctx)
	return reply(ctx, nil, err)
}
