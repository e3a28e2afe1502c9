package again

import (
	"log/slog"
)

// Config is a config of an [Executor].
//
// It's filled by the configuration functions passed to [New] or [Run]. The zero value is invalid.
type Config struct {
	logger     *slog.Logger
	scheduler  Scheduler
	prometheus *PrometheusConfig
}

// Logger sets the logger of the executor. By default, nothing is logged.
func (c *Config) Logger(logger *slog.Logger) *Config {
	if logger == nil {
		panic("logger can't be nil")
	}
	c.logger = logger
	return c
}

// Scheduler sets the scheduler used to delay retries. By default, [TimeScheduler] is used.
func (c *Config) Scheduler(scheduler Scheduler) *Config {
	if scheduler == nil {
		panic("scheduler can't be nil")
	}
	c.scheduler = scheduler
	return c
}

// Prometheus sets the Prometheus metrics config. By default, metrics are collected but not
// registered.
func (c *Config) Prometheus(prometheus *PrometheusConfig) *Config {
	if prometheus == nil {
		panic("prometheus config can't be nil")
	}
	c.prometheus = prometheus
	return c
}

func newConfig(configFuncs ...func(c *Config)) *Config {
	c := Config{
		logger:     slog.New(slog.DiscardHandler),
		scheduler:  TimeScheduler(),
		prometheus: Prometheus(nil),
	}
	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}
	return &c
}
