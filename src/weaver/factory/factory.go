// Package factory provides helpers to generate sample values for testing.
package factory

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/siteweaver/weaver/src/weaver/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification is a user-defined factory for a JSON-RPC notification containing the specified method and parameters.
func JSONRPCNotification(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewNotification(method, params)
	return req
}

// Project returns a stored project with a real document and one exchange of
// conversation.
func Project(name string) *entity.Project {
	created := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	return &entity.Project{
		UUID:      UUID(),
		Name:      name,
		CreatedAt: created,
		Document:  "<html><body><h1>" + name + "</h1></body></html>",
		History: []entity.ChatTurn{
			{Speaker: entity.SpeakerUser, Text: "Create " + name, Timestamp: created},
			{Speaker: entity.SpeakerAssistant, Text: "Here is your initial design!", Timestamp: created.Add(time.Second)},
		},
		Synced: true,
	}
}

// FreshProject returns a project in the state produced by project creation:
// placeholder document and a single pending user turn.
func FreshProject(prompt string) *entity.Project {
	created := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	return &entity.Project{
		UUID:      UUID(),
		Name:      prompt,
		CreatedAt: created,
		Document:  entity.PlaceholderDocument,
		History: []entity.ChatTurn{
			{Speaker: entity.SpeakerUser, Text: prompt, Timestamp: created},
		},
	}
}
