package controller

import (
	editsession "github.com/siteweaver/weaver/src/weaver/controller/edit-session"
	"github.com/siteweaver/weaver/src/weaver/controller/generation"
	"github.com/siteweaver/weaver/src/weaver/controller/studio"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(studio.New),
	fx.Provide(editsession.New),
	fx.Provide(generation.New),
)
