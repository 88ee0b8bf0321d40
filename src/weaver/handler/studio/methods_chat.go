package studio

import (
	"context"

	"github.com/siteweaver/weaver/src/weaver/mapper"
	"go.lsp.dev/jsonrpc2"
)

// Submit runs one generation instruction. The reply carries only acceptance;
// progress and results arrive as studio notifications.
func (r *jsonRPCRouter) Submit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSubmitParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.generation.Submit(ctx, params.Instruction)
	return reply(ctx, nil, err)
}
