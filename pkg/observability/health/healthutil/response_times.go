/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

// ResponseTimeState is the latency of the latest run of a check and the mean over all runs.
type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
	Runs                int64
}

// ResponseTimes records check latencies. It is shared by the checker interceptor and the result writer.
type ResponseTimes struct {
	mu     sync.RWMutex
	states map[string]ResponseTimeState
	now    func() time.Time
}

func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{
		states: map[string]ResponseTimeState{},
		now:    time.Now,
	}
}

// Interceptor times every execution of every check.
func (r *ResponseTimes) Interceptor() health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := r.now()

			result := next(ctx, name, state)

			r.record(name, r.now().Sub(start))

			return result
		}
	}
}

// Get returns the recorded latencies of a check.
func (r *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.states[name]

	return s, ok
}

func (r *ResponseTimes) record(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.states[name]
	s.Runs++
	s.LastResponseTime = elapsed
	s.AverageResponseTime += (elapsed - s.AverageResponseTime) / time.Duration(s.Runs)

	r.states[name] = s
}
