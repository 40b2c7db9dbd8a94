package bootstrap

import (
	"gearshare/internal/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Invoke(func() {
		metrics.Register()
	}),
)
