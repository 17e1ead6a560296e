/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credential-agent/pkg/restapi/v1/util"
)

// API versions served by the agent.
const (
	HolderAPIVersion   = "v0.6"
	OperatorAPIVersion = "v0.8"
)

type Config struct {
	Version string
}

// Controller reports the build and API versions.
type Controller struct {
	version string
}

type versionResponse struct {
	Version     string `json:"version"`
	HolderAPI   string `json:"holderApi"`
	OperatorAPI string `json:"operatorApi"`
}

func NewController(cfg Config) *Controller {
	return &Controller{version: cfg.Version}
}

// RegisterHandlers adds the version route to the router.
func RegisterHandlers(router util.EchoRouter, c *Controller) {
	router.GET("/version", c.GetVersion)
}

// GetVersion returns the versions.
// GET /version.
func (c *Controller) GetVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{
		Version:     c.version,
		HolderAPI:   HolderAPIVersion,
		OperatorAPI: OperatorAPIVersion,
	})
}
