package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// SignInParams carry the account name for account/signIn.
type SignInParams struct {
	Name string `json:"name"`
}

// CreateProjectParams carry the originating prompt for project/create.
type CreateProjectParams struct {
	Prompt string `json:"prompt"`
}

// ProjectRefParams identify a project by UUID for project/open and project/delete.
type ProjectRefParams struct {
	UUID uuid.UUID `json:"uuid"`
}

// SubmitParams carry the instruction for chat/submit.
type SubmitParams struct {
	Instruction string `json:"instruction"`
}

// PressParams identify the press target inside the preview.
type PressParams struct {
	Target string `json:"target"`
}

// UpdateElementParams carry the partial element patch; nil fields are left
// untouched.
type UpdateElementParams struct {
	Text    *string `json:"text,omitempty"`
	Classes *string `json:"classes,omitempty"`
}

// ImportDocumentParams carry raw markup for document/import.
type ImportDocumentParams struct {
	Content string `json:"content"`
}

// WatchDocumentParams identify an on-disk file for document/watch and
// document/unwatch.
type WatchDocumentParams struct {
	Path string `json:"path"`
}

// RequestToSignInParams maps the parameters from a jsonrpc2.Request into SignInParams.
func RequestToSignInParams(req jsonrpc2.Request) (*SignInParams, error) {
	params := SignInParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToCreateProjectParams maps the parameters from a jsonrpc2.Request into CreateProjectParams.
func RequestToCreateProjectParams(req jsonrpc2.Request) (*CreateProjectParams, error) {
	params := CreateProjectParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToProjectRefParams maps the parameters from a jsonrpc2.Request into ProjectRefParams.
func RequestToProjectRefParams(req jsonrpc2.Request) (*ProjectRefParams, error) {
	params := ProjectRefParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToSubmitParams maps the parameters from a jsonrpc2.Request into SubmitParams.
func RequestToSubmitParams(req jsonrpc2.Request) (*SubmitParams, error) {
	params := SubmitParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToPressParams maps the parameters from a jsonrpc2.Request into PressParams.
func RequestToPressParams(req jsonrpc2.Request) (*PressParams, error) {
	params := PressParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToUpdateElementParams maps the parameters from a jsonrpc2.Request into UpdateElementParams.
func RequestToUpdateElementParams(req jsonrpc2.Request) (*UpdateElementParams, error) {
	params := UpdateElementParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToImportDocumentParams maps the parameters from a jsonrpc2.Request into ImportDocumentParams.
func RequestToImportDocumentParams(req jsonrpc2.Request) (*ImportDocumentParams, error) {
	params := ImportDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToWatchDocumentParams maps the parameters from a jsonrpc2.Request into WatchDocumentParams.
func RequestToWatchDocumentParams(req jsonrpc2.Request) (*WatchDocumentParams, error) {
	params := WatchDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
