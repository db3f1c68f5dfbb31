package metrics

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strangelove-ventures/subgraph-networks/types"
)

const (
	ResultOK          = "ok"
	ResultUnsupported = "unsupported"
)

type PromMetrics struct {
	registry *prometheus.Registry

	ConfigInfo      *prometheus.GaugeVec
	ResolveTotal    *prometheus.CounterVec
	WhitelistTokens prometheus.Gauge
	PoolsToSkip     prometheus.Gauge
	PoolMappings    prometheus.Gauge
}

func NewPromMetrics() *PromMetrics {
	reg := prometheus.NewRegistry()

	// labels
	var (
		infoLabels    = []string{"network", "chain_id", "factory"}
		resolveLabels = []string{"result"}
	)

	m := &PromMetrics{
		registry: reg,
		ConfigInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "subgraph_config_info",
			Help: "Set to 1 for the network the process resolved",
		}, infoLabels),
		ResolveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "subgraph_config_resolve_total",
			Help: "Network resolutions by result",
		}, resolveLabels),
		WhitelistTokens: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "subgraph_config_whitelist_tokens",
			Help: "Number of whitelist tokens in the resolved config",
		}),
		PoolsToSkip: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "subgraph_config_pools_to_skip",
			Help: "Number of pools excluded from indexing in the resolved config",
		}),
		PoolMappings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "subgraph_config_pool_mappings",
			Help: "Number of seed pool mappings in the resolved config",
		}),
	}

	reg.MustRegister(m.ConfigInfo, m.ResolveTotal, m.WhitelistTokens, m.PoolsToSkip, m.PoolMappings)

	return m
}

// ObserveResolved records a successful resolution of cfg.
func (m *PromMetrics) ObserveResolved(cfg types.SubgraphConfig) {
	m.ResolveTotal.WithLabelValues(ResultOK).Inc()
	m.ConfigInfo.WithLabelValues(
		cfg.Network.Name(),
		strconv.FormatUint(cfg.Network.ChainID(), 10),
		cfg.FactoryAddress.String(),
	).Set(1)
	m.WhitelistTokens.Set(float64(len(cfg.WhitelistTokens)))
	m.PoolsToSkip.Set(float64(len(cfg.PoolsToSkip)))
	m.PoolMappings.Set(float64(len(cfg.PoolMappings)))
}

func (m *PromMetrics) ObserveUnsupported() {
	m.ResolveTotal.WithLabelValues(ResultUnsupported).Inc()
}

func (m *PromMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Server returns an http server exposing /metrics on port.
func (m *PromMetrics) Server(port int16) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
}
