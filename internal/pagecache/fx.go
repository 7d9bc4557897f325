package pagecache

import "go.uber.org/fx"

var Module = fx.Module("pagecache",
	fx.Provide(New),
)
