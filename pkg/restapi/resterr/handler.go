/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
)

var logger = log.New("rest-err")

// HTTPErrorHandler renders errors returned by handlers.
func HTTPErrorHandler(err error, c echo.Context) {
	code, message := processError(err)

	logger.Error("request failed",
		log.WithURL(c.Request().RequestURI),
		log.WithHTTPStatus(code),
		log.WithError(err),
	)

	if c.Response().Committed {
		return
	}

	var writeErr error

	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, message)
	}

	if writeErr != nil {
		logger.Error("write http response", log.WithError(writeErr))
	}
}

func processError(err error) (int, interface{}) {
	var (
		httpErr   *echo.HTTPError
		customErr *CustomError
	)

	switch {
	case errors.As(err, &customErr):
		return customErr.HTTPCodeMsg()
	case errors.As(err, &httpErr):
		message := httpErr.Message
		if httpErr.Internal != nil {
			message = httpErr.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return httpErr.Code, message
	default:
		return http.StatusInternalServerError, map[string]interface{}{
			"code":    SystemError.Name(),
			"message": err.Error(),
		}
	}
}
