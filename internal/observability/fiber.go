package observability

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
)

var (
	promOnce sync.Once
	promMw   *fiberprometheus.FiberPrometheus
)

// InitFiberMetrics returns the HTTP metrics middleware for serviceName. The
// underlying collectors register against the default Prometheus registry, so
// creation happens at most once per process no matter how many servers tests
// spin up.
func InitFiberMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMw = fiberprometheus.New(serviceName)
	})
	return promMw
}
