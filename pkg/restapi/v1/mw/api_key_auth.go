/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth accepts requests whose X-API-Key header matches one of apiKeys. Several keys
// can be active at once so that a key is rotated without downtime. Empty keys never match.
func APIKeyAuth(apiKeys ...string) echo.MiddlewareFunc {
	keys := make([][]byte, 0, len(apiKeys))

	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			presented := c.Request().Header.Get(apiKeyHeader)
			if presented == "" {
				return resterr.NewUnauthorizedError(errors.New("missing api key"))
			}

			matched := 0
			for _, k := range keys {
				matched |= subtle.ConstantTimeCompare([]byte(presented), k)
			}

			if matched != 1 {
				return resterr.NewUnauthorizedError(errors.New("invalid api key"))
			}

			return next(c)
		}
	}
}
