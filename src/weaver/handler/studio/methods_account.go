package studio

import (
	"context"

	"github.com/siteweaver/weaver/src/weaver/mapper"
	"go.lsp.dev/jsonrpc2"
)

// AccountResult carries the stored account name; empty when signed out.
type AccountResult struct {
	Account string `json:"account"`
}

// SignIn records the account name durably.
func (r *jsonRPCRouter) SignIn(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSignInParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.studio.SignIn(ctx, params.Name)
	return reply(ctx, nil, err)
}

// SignOut clears the stored account.
func (r *jsonRPCRouter) SignOut(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.studio.SignOut(ctx)
	return reply(ctx, nil, err)
}

// CurrentAccount returns the signed-in account name.
func (r *jsonRPCRouter) CurrentAccount(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	name, err := r.studio.CurrentAccount(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, AccountResult{Account: name}, nil)
}
