package again

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSucceeded = "succeeded"
	outcomeExhausted = "exhausted"

	defaultNamespace = "again"
	defaultSubsystem = ""
)

// PrometheusConfig is a config of the Prometheus metrics provided by the executor.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid. The
// collectors are created and registered once per instance, so the same config can be shared by
// many executors.
type PrometheusConfig struct {
	// Namespace of the metrics. It applies to every collector whose options keep the default
	// namespace.
	Namespace string
	// Subsystem of the metrics. It applies to every collector whose options keep the default
	// subsystem.
	Subsystem string
	// Options for the in-flight sessions gauge.
	Sessions prometheus.GaugeOpts
	// Options for the finished sessions counter.
	SessionsFinished prometheus.CounterOpts
	// Options for the attempts counter.
	Attempts prometheus.CounterOpts
	// Options for the scheduled retries counter.
	Retries prometheus.CounterOpts
	// Options for the retry delay histogram.
	RetryDelay prometheus.HistogramOpts

	registerer prometheus.Registerer
	once       sync.Once
	m          *metrics
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = defaultNamespace
		subsystem = defaultSubsystem
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Sessions: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions",
			Help:      "Number of retry sessions in flight",
		},
		SessionsFinished: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_finished",
			Help:      "Number of finished retry sessions by outcome",
		},
		Attempts: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "attempts",
			Help:      "Number of task invocations",
		},
		Retries: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "retries",
			Help:      "Number of scheduled retries",
		},
		RetryDelay: prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "retry_delay_seconds",
			Help:      "Delay before scheduled retries",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	c.once.Do(func() {
		c.inherit(&c.Sessions.Namespace, &c.Sessions.Subsystem)
		c.inherit(&c.SessionsFinished.Namespace, &c.SessionsFinished.Subsystem)
		c.inherit(&c.Attempts.Namespace, &c.Attempts.Subsystem)
		c.inherit(&c.Retries.Namespace, &c.Retries.Subsystem)
		c.inherit(&c.RetryDelay.Namespace, &c.RetryDelay.Subsystem)

		m := metrics{
			sessions:         prometheus.NewGauge(c.Sessions),
			sessionsFinished: prometheus.NewCounterVec(c.SessionsFinished, []string{"outcome"}),
			attempts:         prometheus.NewCounter(c.Attempts),
			retries:          prometheus.NewCounter(c.Retries),
			retryDelay:       prometheus.NewHistogram(c.RetryDelay),
		}

		if c.registerer != nil {
			c.registerer.MustRegister(
				m.sessions,
				m.sessionsFinished,
				m.attempts,
				m.retries,
				m.retryDelay,
			)
		}

		c.m = &m
	})
	return c.m
}

// inherit replaces the default namespace and subsystem of a collector with the ones of the config.
func (c *PrometheusConfig) inherit(namespace, subsystem *string) {
	if *namespace == defaultNamespace {
		*namespace = c.Namespace
	}
	if *subsystem == defaultSubsystem {
		*subsystem = c.Subsystem
	}
}

type metrics struct {
	sessions         prometheus.Gauge
	sessionsFinished *prometheus.CounterVec
	attempts         prometheus.Counter
	retries          prometheus.Counter
	retryDelay       prometheus.Histogram
}
