/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
)

const (
	requestBody = "requestBody"
)

// Validator is implemented by request bodies that check their own required fields.
type Validator interface {
	Validate() error
}

// ReadBody binds the JSON request body and validates it when it implements Validator.
func ReadBody(ctx echo.Context, body interface{}) error {
	if err := ctx.Bind(body); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Internal != nil {
			err = httpErr.Internal
		}

		return resterr.NewValidationError(resterr.InvalidValue, requestBody, err)
	}

	v, ok := body.(Validator)
	if !ok {
		return nil
	}

	if err := v.Validate(); err != nil {
		var restErr *resterr.CustomError
		if errors.As(err, &restErr) {
			return err
		}

		return resterr.NewValidationError(resterr.InvalidValue, requestBody, err)
	}

	return nil
}

func WriteOutput(ctx echo.Context) func(output interface{}, err error) error {
	return WriteOutputWithCode(http.StatusOK, ctx)
}

// WriteOutputWithCode returns a writer that renders output as JSON with the given status, or
// passes err through to the error handler.
func WriteOutputWithCode(code int, ctx echo.Context) func(output interface{}, err error) error {
	return func(output interface{}, err error) error {
		if err != nil {
			return err
		}

		b, err := json.Marshal(output)
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}

		return ctx.JSONBlob(code, b)
	}
}
