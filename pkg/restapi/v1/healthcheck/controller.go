/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"context"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credential-agent/pkg/observability/health/healthutil"
)

const (
	defaultTimeout       = 5 * time.Second
	defaultCacheDuration = time.Second
)

// Check is a named readiness probe of a dependency.
type Check struct {
	Name  string
	Check func(ctx context.Context) error
}

// Controller for health check API.
type Controller struct {
	handler http.Handler
}

// NewController creates a controller reporting the status of the given dependencies.
func NewController(checks ...Check) *Controller {
	times := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithTimeout(defaultTimeout),
		health.WithCacheDuration(defaultCacheDuration),
		health.WithInterceptors(times.Interceptor()),
	}

	for _, c := range checks {
		opts = append(opts, health.WithCheck(health.Check{
			Name:  c.Name,
			Check: c.Check,
		}))
	}

	return &Controller{
		handler: health.NewHandler(
			health.NewChecker(opts...),
			health.WithResultWriter(healthutil.NewJSONResultWriter(times)),
		),
	}
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	c.handler.ServeHTTP(ctx.Response(), ctx.Request())

	return nil
}
