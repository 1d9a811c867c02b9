package coopbus

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// busMetrics counts bus-wide activity that is cheap to track with a
// handful of atomics -- unlike tinode/chat's promexp, which scrapes a
// remote server's stats endpoint, this collector lives in the same
// process as the bus and can simply tally counters as it goes.
type busMetrics struct {
	eventsPublished  atomic.Uint64
	requestsIssued   atomic.Uint64
	responsesSent    atomic.Uint64
	servicesNotFound atomic.Uint64
	subscriberPanics atomic.Uint64
}

var theMetrics busMetrics

// Metrics returns a prometheus.Collector exposing live counts of
// resources, services and subscriptions in the global trie, plus
// cumulative counters of published events, issued requests and
// subscriber panics. Register it with a prometheus.Registry the way
// promexp.Exporter is registered in tinode/chat.
func Metrics() prometheus.Collector { return newExporter() }

type exporter struct {
	resourcesLive     *prometheus.Desc
	servicesLive      *prometheus.Desc
	subscriptionsLive *prometheus.Desc
	eventsPublished   *prometheus.Desc
	requestsIssued    *prometheus.Desc
	responsesSent     *prometheus.Desc
	servicesNotFound  *prometheus.Desc
	subscriberPanics  *prometheus.Desc
}

func newExporter() *exporter {
	const ns = "coopbus"
	return &exporter{
		resourcesLive: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "", "resources_live"),
			"Number of resource trie nodes beneath the bus root, inclusive.",
			nil, nil,
		),
		servicesLive: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "", "services_live"),
			"Number of services currently installed beneath the bus root.",
			nil, nil,
		),
		subscriptionsLive: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "", "subscriptions_live"),
			"Number of subscriptions currently installed beneath the bus root.",
			nil, nil,
		),
		eventsPublished: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "", "events_published_total"),
			"Total number of events published since process start.",
			nil, nil,
		),
		requestsIssued: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "", "requests_issued_total"),
			"Total number of requests issued since process start.",
			nil, nil,
		),
		responsesSent: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "", "responses_sent_total"),
			"Total number of responses delivered to a client since process start.",
			nil, nil,
		),
		servicesNotFound: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "", "service_not_found_total"),
			"Total number of issued requests that found no accepting service.",
			nil, nil,
		),
		subscriberPanics: prometheus.NewDesc(
			prometheus.BuildFQName(ns, "", "subscriber_panics_total"),
			"Total number of subscriber panics recovered and republished as subscriber_exception events.",
			nil, nil,
		),
	}
}

func (e *exporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- e.resourcesLive
	ch <- e.servicesLive
	ch <- e.subscriptionsLive
	ch <- e.eventsPublished
	ch <- e.requestsIssued
	ch <- e.responsesSent
	ch <- e.servicesNotFound
	ch <- e.subscriberPanics
}

func (e *exporter) Collect(ch chan<- prometheus.Metric) {
	var resources, services, subs int
	RootTopic().VisitResources(func(rc Topic) {
		resources++
		if rc.CurrentService() != nil {
			services++
		}
		for range rc.node.Data.subs.All() {
			subs++
		}
	}, DefaultRecursionDepth)

	ch <- prometheus.MustNewConstMetric(e.resourcesLive, prometheus.GaugeValue, float64(resources))
	ch <- prometheus.MustNewConstMetric(e.servicesLive, prometheus.GaugeValue, float64(services))
	ch <- prometheus.MustNewConstMetric(e.subscriptionsLive, prometheus.GaugeValue, float64(subs))
	ch <- prometheus.MustNewConstMetric(e.eventsPublished, prometheus.CounterValue, float64(theMetrics.eventsPublished.Load()))
	ch <- prometheus.MustNewConstMetric(e.requestsIssued, prometheus.CounterValue, float64(theMetrics.requestsIssued.Load()))
	ch <- prometheus.MustNewConstMetric(e.responsesSent, prometheus.CounterValue, float64(theMetrics.responsesSent.Load()))
	ch <- prometheus.MustNewConstMetric(e.servicesNotFound, prometheus.CounterValue, float64(theMetrics.servicesNotFound.Load()))
	ch <- prometheus.MustNewConstMetric(e.subscriberPanics, prometheus.CounterValue, float64(theMetrics.subscriberPanics.Load()))
}
