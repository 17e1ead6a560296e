/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package probe

import (
	"context"
	"fmt"
	"time"
)

// Pinger is a dependency that answers a round trip. The mongodb and redis clients satisfy it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type options struct {
	maxLatency time.Duration
}

// Opt configures a probe.
type Opt func(o *options)

// WithMaxLatency fails the probe when a successful ping took longer than d.
func WithMaxLatency(d time.Duration) Opt {
	return func(o *options) {
		o.maxLatency = d
	}
}

// Ping returns a health check that pings the dependency over its existing connection pool.
func Ping(component string, p Pinger, opts ...Opt) func(ctx context.Context) error {
	o := &options{}

	for _, fn := range opts {
		fn(o)
	}

	return func(ctx context.Context) error {
		start := time.Now()

		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("ping %s: %w", component, err)
		}

		if elapsed := time.Since(start); o.maxLatency > 0 && elapsed > o.maxLatency {
			return fmt.Errorf("ping %s: took %s, limit %s", component, elapsed, o.maxLatency)
		}

		return nil
	}
}
