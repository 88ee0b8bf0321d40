package studio

import (
	"context"
	"testing"

	editsession "github.com/siteweaver/weaver/src/weaver/controller/edit-session"
	"github.com/siteweaver/weaver/src/weaver/controller/edit-session/editsessionmock"
	"github.com/siteweaver/weaver/src/weaver/controller/studio/studiomock"
	"github.com/siteweaver/weaver/src/weaver/mapper"
	"github.com/stretchr/testify/assert"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/mock/gomock"
)

func TestImportDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	editSession := editsessionmock.NewMockController(ctrl)
	editSession.EXPECT().ReplaceDocument(gomock.Any(), "<html>raw</html>", editsession.OriginImport).Return(nil)

	r := jsonRPCRouter{editSession: editSession, stats: testScope()}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), MethodDocumentImport, mapper.ImportDocumentParams{Content: "<html>raw</html>"})
	assert.NoError(t, r.HandleReq(ctx, newMockReplier(), req))
}

func TestExportDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	editSession := editsessionmock.NewMockController(ctrl)
	editSession.EXPECT().ExportDocument(gomock.Any()).Return("bakery.html", "<html>site</html>", nil)

	r := jsonRPCRouter{editSession: editSession, stats: testScope()}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), MethodDocumentExport, nil)
	want := ExportResult{Filename: "bakery.html", Document: "<html>site</html>"}
	assert.NoError(t, r.HandleReq(ctx, replierExpectingResult(t, want), req))
}

func TestPreviewDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	editSession := editsessionmock.NewMockController(ctrl)
	editSession.EXPECT().PreviewDocument(gomock.Any()).Return("<html><script>preview</script></html>", nil)

	r := jsonRPCRouter{editSession: editSession, stats: testScope()}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), MethodDocumentPreview, nil)
	want := PreviewResult{Document: "<html><script>preview</script></html>"}
	assert.NoError(t, r.HandleReq(ctx, replierExpectingResult(t, want), req))
}

func TestWatchDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	c := studiomock.NewMockController(ctrl)
	c.EXPECT().WatchDocument(gomock.Any(), "/tmp/page.html").Return(nil)

	r := jsonRPCRouter{studio: c, stats: testScope()}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), MethodDocumentWatch, mapper.WatchDocumentParams{Path: "/tmp/page.html"})
	assert.NoError(t, r.HandleReq(ctx, newMockReplier(), req))
}

func TestUnwatchDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	c := studiomock.NewMockController(ctrl)
	c.EXPECT().UnwatchDocument(gomock.Any(), "/tmp/page.html").Return(nil)

	r := jsonRPCRouter{studio: c, stats: testScope()}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), MethodDocumentUnwatch, mapper.WatchDocumentParams{Path: "/tmp/page.html"})
	assert.NoError(t, r.HandleReq(ctx, newMockReplier(), req))
}
