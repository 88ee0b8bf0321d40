package studio

import (
	"context"

	"github.com/siteweaver/weaver/src/weaver/mapper"
	"go.lsp.dev/jsonrpc2"
)

// Press simulates a primary-button press inside the preview. Selection
// results arrive as a studio notification, not in the reply.
func (r *jsonRPCRouter) Press(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToPressParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.editSession.Press(ctx, params.Target)
	return reply(ctx, nil, err)
}

// UpdateElement applies a partial patch to the currently selected element.
func (r *jsonRPCRouter) UpdateElement(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToUpdateElementParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.editSession.UpdateElement(ctx, params.Text, params.Classes)
	return reply(ctx, nil, err)
}

// Deselect clears the current selection.
func (r *jsonRPCRouter) Deselect(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.editSession.Deselect(ctx)
	return reply(ctx, nil, err)
}
