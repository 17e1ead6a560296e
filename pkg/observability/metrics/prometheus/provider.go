/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct{}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
// Metrics are exposed by Handler on the main HTTP server.
func NewPrometheusProvider() metrics.Provider {
	return &promProvider{}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	GetMetrics()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics of the agent.
type PromMetrics struct {
	signTime           prometheus.Histogram
	vendorOffersTime   prometheus.Histogram
	offersIngested     *prometheus.CounterVec
	credentialsIssued  prometheus.Counter
	offersRejected     prometheus.Counter
	notificationFailed *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		signTime: newHistogram(
			metrics.Crypto, metrics.CryptoSignTimeMetric,
			"The time (in seconds) it takes to run crypto sign.",
			nil,
		),
		vendorOffersTime: newHistogram(
			metrics.Vendor, metrics.VendorOffersTimeMetric,
			"The time (in seconds) it takes the vendor to answer an offers request.",
			nil,
		),
		offersIngested: newCounterVec(
			metrics.Service, metrics.OffersIngestedMetric,
			"The number of vendor offers ingested, by outcome.",
			[]string{"outcome"},
		),
		credentialsIssued: newCounter(
			metrics.Service, metrics.CredentialsIssuedMetric,
			"The number of signed credentials.",
			nil,
		),
		offersRejected: newCounter(
			metrics.Service, metrics.OffersRejectedMetric,
			"The number of offers rejected by holders.",
			nil,
		),
		notificationFailed: newCounterVec(
			metrics.Service, metrics.NotificationFailureMetric,
			"The number of notifications that could not be delivered, by event type.",
			[]string{"type"},
		),
	}

	prometheus.MustRegister(
		pm.signTime, pm.vendorOffersTime, pm.offersIngested,
		pm.credentialsIssued, pm.offersRejected, pm.notificationFailed,
	)

	return pm
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("crypto sign time", log.WithDuration(value))
}

// VendorOffersTime records the time the vendor took to answer an offers request.
func (pm *PromMetrics) VendorOffersTime(value time.Duration) {
	pm.vendorOffersTime.Observe(value.Seconds())

	logger.Debug("vendor offers time", log.WithDuration(value))
}

func (pm *PromMetrics) OfferIngested(outcome string) {
	pm.offersIngested.WithLabelValues(outcome).Inc()
}

func (pm *PromMetrics) CredentialIssued() {
	pm.credentialsIssued.Inc()
}

func (pm *PromMetrics) OfferRejected() {
	pm.offersRejected.Inc()
}

func (pm *PromMetrics) NotificationFailed(eventType string) {
	pm.notificationFailed.WithLabelValues(eventType).Inc()
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCounterVec(subsystem, name, help string, labelNames []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}
