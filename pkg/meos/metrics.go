package meos

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

var nativeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "meos",
	Name:      "native_errors_total",
	Help:      "Errors raised by the native library, by native function.",
}, []string{"op"})

// Collectors returns the Prometheus collectors describing native handle
// ownership and native errors.
func Collectors() []prometheus.Collector {
	stat := func(f func(handle.Stats) float64) func() float64 {
		return func() float64 { return f(handle.Snapshot()) }
	}
	return []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "meos", Name: "handles_adopted_total",
			Help: "Native allocations taken over by Go owners.",
		}, stat(func(s handle.Stats) float64 { return float64(s.Adopted) })),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "meos", Name: "handles_released_total",
			Help: "Native allocations released by Go owners.",
		}, stat(func(s handle.Stats) float64 { return float64(s.Released) })),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "meos", Name: "handles_transferred_total",
			Help: "Native allocations handed back to the native library.",
		}, stat(func(s handle.Stats) float64 { return float64(s.Transferred) })),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "meos", Name: "handles_live",
			Help: "Native allocations currently owned by Go values.",
		}, stat(func(s handle.Stats) float64 { return float64(s.Live) })),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "meos", Name: "lifecycle_state",
			Help: "0 uninitialized, 1 initialized, 2 finalized.",
		}, func() float64 { return float64(CurrentState()) }),
		nativeErrors,
	}
}

// RegisterMetrics registers Collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
