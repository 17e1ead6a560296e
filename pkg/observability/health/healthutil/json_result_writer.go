/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
)

type report struct {
	Status     health.AvailabilityStatus  `json:"status"`
	Components map[string]componentReport `json:"components,omitempty"`
}

type componentReport struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

// JSONResultWriter renders checker results together with the latencies collected by ResponseTimes.
type JSONResultWriter struct {
	times *ResponseTimes
}

func NewJSONResultWriter(times *ResponseTimes) *JSONResultWriter {
	return &JSONResultWriter{times: times}
}

func (w *JSONResultWriter) Write(
	result *health.CheckerResult,
	status int,
	rw http.ResponseWriter,
	_ *http.Request,
) error {
	body, err := json.Marshal(w.report(result))
	if err != nil {
		return fmt.Errorf("marshal health report: %w", err)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	_, err = rw.Write(body)

	return err
}

func (w *JSONResultWriter) report(result *health.CheckerResult) *report {
	r := &report{Status: result.Status}

	if len(result.Details) == 0 {
		return r
	}

	r.Components = make(map[string]componentReport, len(result.Details))

	for name, cr := range result.Details {
		c := componentReport{CheckResult: cr}

		if t, ok := w.times.Get(name); ok {
			c.LastResponseTime = t.LastResponseTime.String()
			c.AverageResponseTime = t.AverageResponseTime.String()
		}

		r.Components[name] = c
	}

	return r
}
