package handler

import (
	controller "github.com/siteweaver/weaver/src/weaver/controller"
	studioctrl "github.com/siteweaver/weaver/src/weaver/controller/studio"
	handler "github.com/siteweaver/weaver/src/weaver/handler/studio"
	"github.com/siteweaver/weaver/src/weaver/repository/session"
	"go.uber.org/fx"
)

// Module provides the weaver-daemon server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(handler.New),
	fx.Invoke(outputEngineInfo),
	fx.Invoke(func(m handler.Handler) {}),
	fx.Invoke(func(m studioctrl.Controller) {}),
)
