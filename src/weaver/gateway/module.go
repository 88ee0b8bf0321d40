package gateway

import (
	"github.com/siteweaver/weaver/src/weaver/gateway/generator"
	"go.uber.org/fx"
)

// Module provides the outbound gateways of the engine.
var Module = fx.Options(
	generator.Module,
)
