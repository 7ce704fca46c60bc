// Package metrics collects and exposes prometheus metrics for the sweepers,
// the cache and the event dispatcher.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	sweepTicks       *prometheus.CounterVec
	sweepFailures    *prometheus.CounterVec
	expiredBans      prometheus.Counter
	expiredProposals prometheus.Counter
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	eventsPublished  *prometheus.CounterVec
	eventFailures    *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		sweepTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuelwatch_sweep_ticks_total",
			Help: "Completed sweep ticks per sweeper",
		}, []string{"sweeper"}),
		sweepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuelwatch_sweep_failures_total",
			Help: "Sweep ticks that returned an error or panicked",
		}, []string{"sweeper"}),
		expiredBans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fuelwatch_expired_bans_total",
			Help: "Ban records deactivated by the expiration sweep",
		}),
		expiredProposals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fuelwatch_expired_proposals_total",
			Help: "Price proposals auto-rejected by the expiration sweep",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fuelwatch_cache_hits_total",
			Help: "Cache reads answered without invoking the factory",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fuelwatch_cache_misses_total",
			Help: "Cache reads that invoked the factory",
		}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuelwatch_events_published_total",
			Help: "Domain events published per event name",
		}, []string{"event"}),
		eventFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuelwatch_event_subscriber_failures_total",
			Help: "Event subscriber invocations that returned an error or panicked",
		}, []string{"event"}),
	}

	c.registry.MustRegister(
		c.sweepTicks,
		c.sweepFailures,
		c.expiredBans,
		c.expiredProposals,
		c.cacheHits,
		c.cacheMisses,
		c.eventsPublished,
		c.eventFailures,
	)
	return c
}

func (c *Collector) RecordSweepTick(sweeper string)    { c.sweepTicks.WithLabelValues(sweeper).Inc() }
func (c *Collector) RecordSweepFailure(sweeper string) { c.sweepFailures.WithLabelValues(sweeper).Inc() }
func (c *Collector) RecordExpiredBans(n int)           { c.expiredBans.Add(float64(n)) }
func (c *Collector) RecordExpiredProposals(n int)      { c.expiredProposals.Add(float64(n)) }
func (c *Collector) RecordCacheHit()                   { c.cacheHits.Inc() }
func (c *Collector) RecordCacheMiss()                  { c.cacheMisses.Inc() }
func (c *Collector) RecordEventPublished(name string)  { c.eventsPublished.WithLabelValues(name).Inc() }
func (c *Collector) RecordSubscriberFailure(name string) {
	c.eventFailures.WithLabelValues(name).Inc()
}

// Handler serves the registry for the /metrics route.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
