package studio

import (
	"context"

	"github.com/siteweaver/weaver/src/weaver/entity"
	"github.com/siteweaver/weaver/src/weaver/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// SaveResult reports whether the persisted copy now matches the session's.
type SaveResult struct {
	Synced bool `json:"synced"`
}

// CreateProject persists a fresh project derived from the given prompt.
func (r *jsonRPCRouter) CreateProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCreateProjectParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	project, err := r.studio.CreateProject(ctx, params.Prompt)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, project, nil)
}

// ListProjects returns templates followed by stored projects.
func (r *jsonRPCRouter) ListProjects(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	projects, err := r.studio.ListProjects(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, projects, nil)
}

// OpenProject loads the project into this session and boots its preview.
// A project still carrying its placeholder document gets its initial
// generation kicked off after the reply.
func (r *jsonRPCRouter) OpenProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToProjectRefParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	project, err := r.editSession.Open(ctx, params.UUID)
	if err != nil {
		return reply(ctx, nil, err)
	}

	if err := reply(ctx, project, nil); err != nil {
		return err
	}

	// The request context dies with the reply; the generation outlives it.
	genCtx := context.WithValue(context.Background(), entity.SessionContextKey, r.uuid)
	go func() {
		if err := r.generation.EnsureInitialGeneration(genCtx); err != nil {
			r.logger.Errorw("running initial generation", zap.Stringer("project", params.UUID), zap.Error(err))
		}
	}()
	return nil
}

// SaveProject persists the session's project.
func (r *jsonRPCRouter) SaveProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	synced, err := r.editSession.Save(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, SaveResult{Synced: synced}, nil)
}

// DeleteProject removes a stored project.
func (r *jsonRPCRouter) DeleteProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToProjectRefParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.studio.DeleteProject(ctx, params.UUID)
	return reply(ctx, nil, err)
}
