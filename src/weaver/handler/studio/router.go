package studio

import (
	"context"

	"github.com/gofrs/uuid"
	editsession "github.com/siteweaver/weaver/src/weaver/controller/edit-session"
	"github.com/siteweaver/weaver/src/weaver/controller/generation"
	controller "github.com/siteweaver/weaver/src/weaver/controller/studio"
	"github.com/siteweaver/weaver/src/weaver/entity"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Methods served by the engine.
const (
	MethodInitialize = "initialize"
	MethodShutdown   = "shutdown"
	MethodExit       = "exit"

	// MethodRequestFullShutdown directs the engine to shut down on the next JSON-RPC 'exit' method call.
	MethodRequestFullShutdown = "weaver/requestFullShutdown"

	MethodAccountSignIn  = "account/signIn"
	MethodAccountSignOut = "account/signOut"
	MethodAccountCurrent = "account/current"

	MethodProjectCreate = "project/create"
	MethodProjectList   = "project/list"
	MethodProjectOpen   = "project/open"
	MethodProjectSave   = "project/save"
	MethodProjectDelete = "project/delete"

	MethodChatSubmit = "chat/submit"

	MethodPreviewPress    = "preview/press"
	MethodElementUpdate   = "element/update"
	MethodElementDeselect = "element/deselect"

	MethodDocumentImport  = "document/import"
	MethodDocumentExport  = "document/export"
	MethodDocumentPreview = "document/preview"
	MethodDocumentWatch   = "document/watch"
	MethodDocumentUnwatch = "document/unwatch"
)

type jsonRPCRouter struct {
	studio      controller.Controller
	editSession editsession.Controller
	generation  generation.Controller
	uuid        uuid.UUID
	stats       tally.Scope
	logger      *zap.SugaredLogger
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Lifecycle related methods.
	case MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case MethodExit:
		return r.Exit(ctx, reply, req)

	case MethodRequestFullShutdown:
		return r.RequestFullShutdown(ctx, reply, req)

	// Account related methods.
	case MethodAccountSignIn:
		return r.SignIn(ctx, reply, req)

	case MethodAccountSignOut:
		return r.SignOut(ctx, reply, req)

	case MethodAccountCurrent:
		return r.CurrentAccount(ctx, reply, req)

	// Project related methods.
	case MethodProjectCreate:
		return r.CreateProject(ctx, reply, req)

	case MethodProjectList:
		return r.ListProjects(ctx, reply, req)

	case MethodProjectOpen:
		return r.OpenProject(ctx, reply, req)

	case MethodProjectSave:
		return r.SaveProject(ctx, reply, req)

	case MethodProjectDelete:
		return r.DeleteProject(ctx, reply, req)

	// Conversation related methods.
	case MethodChatSubmit:
		return r.Submit(ctx, reply, req)

	// Preview related methods.
	case MethodPreviewPress:
		return r.Press(ctx, reply, req)

	case MethodElementUpdate:
		return r.UpdateElement(ctx, reply, req)

	case MethodElementDeselect:
		return r.Deselect(ctx, reply, req)

	// Document related methods.
	case MethodDocumentImport:
		return r.ImportDocument(ctx, reply, req)

	case MethodDocumentExport:
		return r.ExportDocument(ctx, reply, req)

	case MethodDocumentPreview:
		return r.PreviewDocument(ctx, reply, req)

	case MethodDocumentWatch:
		return r.WatchDocument(ctx, reply, req)

	case MethodDocumentUnwatch:
		return r.UnwatchDocument(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
