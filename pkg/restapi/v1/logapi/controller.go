/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/util"
)

const maxSpecSize = 4096

var logger = log.New("logapi")

// Controller reads and changes the log levels of the running agent.
type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}

// RegisterHandlers adds the log level routes to the router.
func RegisterHandlers(router util.EchoRouter, c *Controller) {
	router.GET("/loglevels", c.GetLogLevels)
	router.POST("/loglevels", c.PostLogLevels)
}

// GetLogLevels returns the log spec in effect.
// GET /loglevels.
func (c *Controller) GetLogLevels(ctx echo.Context) error {
	return ctx.String(http.StatusOK, log.GetSpec())
}

// PostLogLevels updates log levels.
// POST /loglevels.
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	b, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxSpecSize))
	if err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "body", fmt.Errorf("read body: %w", err))
	}

	spec := strings.TrimSpace(string(b))

	if err = log.SetSpec(spec); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "spec", err)
	}

	logger.Info("log levels modified", log.WithUserLogLevel(spec))

	return ctx.NoContent(http.StatusOK)
}
