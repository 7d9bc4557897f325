package observability

import (
	"github.com/acmehq/invoicedesk/internal/observability/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(func() (*metrics.HTTPMetrics, error) {
		return metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)
	}),
)
