package app

import (
	"context"
	"time"

	"github.com/siteweaver/weaver/src/weaver/gateway"
	notifier "github.com/siteweaver/weaver/src/weaver/gateway/studio-client"
	"github.com/siteweaver/weaver/src/weaver/handler"
	"github.com/siteweaver/weaver/src/weaver/internal/clock"
	"github.com/siteweaver/weaver/src/weaver/internal/core"
	"github.com/siteweaver/weaver/src/weaver/internal/docwatch"
	"github.com/siteweaver/weaver/src/weaver/internal/engineinfofile"
	"github.com/siteweaver/weaver/src/weaver/internal/fs"
	"github.com/siteweaver/weaver/src/weaver/internal/jsonrpcfx"
	"github.com/siteweaver/weaver/src/weaver/repository/project"
	tally "github.com/uber-go/tally"
	"go.uber.org/fx"
)

// Module defines the weaver-daemon application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	docwatch.Module,
	engineinfofile.Module,
	project.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(notifier.New),
	fx.Provide(clock.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "weaver-daemon",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
