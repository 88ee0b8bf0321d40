package studio

import (
	"context"
	"errors"
	"testing"

	"github.com/siteweaver/weaver/src/weaver/controller/studio/studiomock"
	"github.com/siteweaver/weaver/src/weaver/mapper"
	"github.com/stretchr/testify/assert"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/mock/gomock"
)

func TestSignIn(t *testing.T) {
	tests := []struct {
		name            string
		controllerError error
		wantErr         bool
	}{
		{
			name:            "error from controller",
			controllerError: errors.New("controller error"),
			wantErr:         true,
		},
		{
			name:    "no error from controller",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			c := studiomock.NewMockController(ctrl)
			c.EXPECT().SignIn(gomock.Any(), "ada").Return(tt.controllerError)

			r := jsonRPCRouter{studio: c, stats: testScope()}
			req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), MethodAccountSignIn, mapper.SignInParams{Name: "ada"})
			err := r.HandleReq(ctx, newMockReplier(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	c := studiomock.NewMockController(ctrl)
	c.EXPECT().SignOut(gomock.Any()).Return(nil)

	r := jsonRPCRouter{studio: c, stats: testScope()}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), MethodAccountSignOut, nil)
	assert.NoError(t, r.HandleReq(ctx, newMockReplier(), req))
}

func TestCurrentAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	c := studiomock.NewMockController(ctrl)
	c.EXPECT().CurrentAccount(gomock.Any()).Return("ada", nil)

	r := jsonRPCRouter{studio: c, stats: testScope()}
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), MethodAccountCurrent, nil)
	assert.NoError(t, r.HandleReq(ctx, replierExpectingResult(t, AccountResult{Account: "ada"}), req))
}
