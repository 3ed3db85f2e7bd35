// Package metrics exposes the reactive engine's activity counters as
// Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/glint-dev/glint"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "glint").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry Register uses.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "glint",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector reads the engine counters on every scrape. It has no state of
// its own, so one collector per registry is enough for the whole process.
type Collector struct {
	signalsCreated *prometheus.Desc
	memosCreated   *prometheus.Desc
	effectsCreated *prometheus.Desc
	writes         *prometheus.Desc
	effectRuns     *prometheus.Desc
	memoRecomputes *prometheus.Desc
	flushes        *prometheus.Desc
	panicsCaught   *prometheus.Desc
	ownersDisposed *prometheus.Desc
}

// NewCollector builds a collector without registering it.
func NewCollector(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(cfg.Namespace, cfg.Subsystem, name),
			help, nil, cfg.ConstLabels,
		)
	}

	return &Collector{
		signalsCreated: desc("signals_created_total", "Signals created."),
		memosCreated:   desc("memos_created_total", "Memos created."),
		effectsCreated: desc("effects_created_total", "Effects created."),
		writes:         desc("signal_writes_total", "Signal writes that passed the equality cut-off."),
		effectRuns:     desc("effect_runs_total", "Effect executions, initial runs included."),
		memoRecomputes: desc("memo_recomputes_total", "Memo body executions."),
		flushes:        desc("flushes_total", "Scheduler flush passes."),
		panicsCaught:   desc("panics_caught_total", "Panics delivered to an OnError boundary."),
		ownersDisposed: desc("owners_disposed_total", "Owners disposed."),
	}
}

// Register builds a collector and registers it on the configured registry.
func Register(opts ...Option) (*Collector, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := NewCollector(opts...)
	if err := cfg.Registry.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.signalsCreated
	ch <- c.memosCreated
	ch <- c.effectsCreated
	ch <- c.writes
	ch <- c.effectRuns
	ch <- c.memoRecomputes
	ch <- c.flushes
	ch <- c.panicsCaught
	ch <- c.ownersDisposed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := glint.ReadStats()

	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}

	counter(c.signalsCreated, s.SignalsCreated)
	counter(c.memosCreated, s.MemosCreated)
	counter(c.effectsCreated, s.EffectsCreated)
	counter(c.writes, s.Writes)
	counter(c.effectRuns, s.EffectRuns)
	counter(c.memoRecomputes, s.MemoRecomputes)
	counter(c.flushes, s.Flushes)
	counter(c.panicsCaught, s.PanicsCaught)
	counter(c.ownersDisposed, s.OwnersDisposed)
}
