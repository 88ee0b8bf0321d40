package studio

import (
	"context"
	"testing"

	"github.com/siteweaver/weaver/src/weaver/controller/generation/generationmock"
	weavererrors "github.com/siteweaver/weaver/src/weaver/internal/errors"
	"github.com/siteweaver/weaver/src/weaver/mapper"
	"github.com/stretchr/testify/assert"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/mock/gomock"
)

func TestSubmit(t *testing.T) {
	tests := []struct {
		name            string
		controllerError error
		wantErr         bool
	}{
		{
			name:            "generation already in flight",
			controllerError: weavererrors.ErrGenerationInFlight,
			wantErr:         true,
		},
		{
			name:    "accepted",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			gen := generationmock.NewMockController(ctrl)
			gen.EXPECT().Submit(gomock.Any(), "make it blue").Return(tt.controllerError)

			r := jsonRPCRouter{generation: gen, stats: testScope()}
			req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), MethodChatSubmit, mapper.SubmitParams{Instruction: "make it blue"})
			err := r.HandleReq(ctx, newMockReplier(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
