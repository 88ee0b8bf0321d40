package mapper

import (
	"testing"

	"github.com/siteweaver/weaver/src/weaver/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestToSignInParams(t *testing.T) {
	got, err := RequestToSignInParams(factory.JSONRPCRequest("account/signIn", SignInParams{Name: "ada"}))
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Name)

	_, err = RequestToSignInParams(factory.JSONRPCRequest("account/signIn", "not an object"))
	assert.Error(t, err)
}

func TestRequestToCreateProjectParams(t *testing.T) {
	got, err := RequestToCreateProjectParams(factory.JSONRPCRequest("project/create", CreateProjectParams{Prompt: "A bakery site"}))
	require.NoError(t, err)
	assert.Equal(t, "A bakery site", got.Prompt)

	_, err = RequestToCreateProjectParams(factory.JSONRPCRequest("project/create", "not an object"))
	assert.Error(t, err)
}

func TestRequestToProjectRefParams(t *testing.T) {
	id := factory.UUID()
	got, err := RequestToProjectRefParams(factory.JSONRPCRequest("project/open", ProjectRefParams{UUID: id}))
	require.NoError(t, err)
	assert.Equal(t, id, got.UUID)

	_, err = RequestToProjectRefParams(factory.JSONRPCRequest("project/open", "not an object"))
	assert.Error(t, err)
}

func TestRequestToSubmitParams(t *testing.T) {
	got, err := RequestToSubmitParams(factory.JSONRPCRequest("chat/submit", SubmitParams{Instruction: "Make it blue"}))
	require.NoError(t, err)
	assert.Equal(t, "Make it blue", got.Instruction)

	_, err = RequestToSubmitParams(factory.JSONRPCRequest("chat/submit", "not an object"))
	assert.Error(t, err)
}

func TestRequestToPressParams(t *testing.T) {
	got, err := RequestToPressParams(factory.JSONRPCRequest("preview/press", PressParams{Target: "#cta"}))
	require.NoError(t, err)
	assert.Equal(t, "#cta", got.Target)

	_, err = RequestToPressParams(factory.JSONRPCRequest("preview/press", "not an object"))
	assert.Error(t, err)
}

func TestRequestToUpdateElementParams(t *testing.T) {
	text := "Hi there"
	got, err := RequestToUpdateElementParams(factory.JSONRPCRequest("element/update", UpdateElementParams{Text: &text}))
	require.NoError(t, err)
	require.NotNil(t, got.Text)
	assert.Equal(t, text, *got.Text)
	assert.Nil(t, got.Classes)

	_, err = RequestToUpdateElementParams(factory.JSONRPCRequest("element/update", "not an object"))
	assert.Error(t, err)
}

func TestRequestToImportDocumentParams(t *testing.T) {
	got, err := RequestToImportDocumentParams(factory.JSONRPCRequest("document/import", ImportDocumentParams{Content: "<html></html>"}))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", got.Content)

	_, err = RequestToImportDocumentParams(factory.JSONRPCRequest("document/import", "not an object"))
	assert.Error(t, err)
}

func TestRequestToWatchDocumentParams(t *testing.T) {
	got, err := RequestToWatchDocumentParams(factory.JSONRPCRequest("document/watch", WatchDocumentParams{Path: "/tmp/site.html"}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/site.html", got.Path)

	_, err = RequestToWatchDocumentParams(factory.JSONRPCRequest("document/watch", "not an object"))
	assert.Error(t, err)
}
