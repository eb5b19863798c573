// Package metrics exposes Prometheus counters for the registration flow.
package metrics

import (
	"net/http"

	"tresor/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements service.MetricsRecorder on top of Prometheus counters.
type Collector struct {
	captchaOutcomes *prometheus.CounterVec
	registrations   *prometheus.CounterVec
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewCollector registers the service counters on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		captchaOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tresor_captcha_verifications_total",
			Help: "CAPTCHA verification attempts by outcome.",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tresor_registrations_total",
			Help: "Registration attempts by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(c.captchaOutcomes, c.registrations)

	return c
}

// NewRecorder is the fx provider for service.MetricsRecorder.
func NewRecorder(reg *prometheus.Registry) service.MetricsRecorder {
	return NewCollector(reg)
}

func (c *Collector) RecordCaptchaOutcome(outcome service.CaptchaOutcome) {
	c.captchaOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (c *Collector) RecordRegistration(result string) {
	c.registrations.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
