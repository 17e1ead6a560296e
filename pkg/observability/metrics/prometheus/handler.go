/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is the scrape endpoint.
const MetricsPath = "/metrics"

// NewHandler serves the default registry in the text and OpenMetrics formats.
// Scrapes are counted in promhttp_metric_handler_requests_total.
func NewHandler() echo.HandlerFunc {
	return handlerFor(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func handlerFor(reg prometheus.Registerer, gatherer prometheus.Gatherer) echo.HandlerFunc {
	h := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
		Registry:          reg,
	})

	return echo.WrapHandler(promhttp.InstrumentMetricHandler(reg, h))
}
