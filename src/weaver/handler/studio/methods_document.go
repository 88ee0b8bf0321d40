package studio

import (
	"context"

	editsession "github.com/siteweaver/weaver/src/weaver/controller/edit-session"
	"github.com/siteweaver/weaver/src/weaver/mapper"
	"go.lsp.dev/jsonrpc2"
)

// ExportResult carries the verbatim document and its download filename.
type ExportResult struct {
	Filename string `json:"filename"`
	Document string `json:"document"`
}

// PreviewResult carries the instrumented document for rendering.
type PreviewResult struct {
	Document string `json:"document"`
}

// ImportDocument replaces the session's document with raw markup, as-is.
func (r *jsonRPCRouter) ImportDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToImportDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.editSession.ReplaceDocument(ctx, params.Content, editsession.OriginImport)
	return reply(ctx, nil, err)
}

// ExportDocument returns the session's document without rewriting.
func (r *jsonRPCRouter) ExportDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	filename, document, err := r.editSession.ExportDocument(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, ExportResult{Filename: filename, Document: document}, nil)
}

// PreviewDocument returns the document instrumented for an embedded browser
// preview.
func (r *jsonRPCRouter) PreviewDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	document, err := r.editSession.PreviewDocument(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, PreviewResult{Document: document}, nil)
}

// WatchDocument imports the file on every write until unwatched.
func (r *jsonRPCRouter) WatchDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToWatchDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.studio.WatchDocument(ctx, params.Path)
	return reply(ctx, nil, err)
}

// UnwatchDocument stops importing writes to the path.
func (r *jsonRPCRouter) UnwatchDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToWatchDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.studio.UnwatchDocument(ctx, params.Path)
	return reply(ctx, nil, err)
}
