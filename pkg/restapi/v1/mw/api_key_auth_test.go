/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/mw"
)

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		header    string
		wantCalls bool
	}{
		{name: "matching key", keys: []string{"key-1"}, header: "key-1", wantCalls: true},
		{name: "second active key", keys: []string{"key-1", "key-2"}, header: "key-2", wantCalls: true},
		{name: "wrong key", keys: []string{"key-1"}, header: "key-3"},
		{name: "missing header", keys: []string{"key-1"}},
		{name: "empty configured key never matches", keys: []string{""}, header: ""},
		{name: "no keys configured", header: "key-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false

			handler := mw.APIKeyAuth(tt.keys...)(func(c echo.Context) error {
				called = true

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/operator-api/v0.8/tenants/did:ion:t1/exchanges", nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}

			err := handler(echo.New().NewContext(req, httptest.NewRecorder()))

			require.Equal(t, tt.wantCalls, called)

			if tt.wantCalls {
				require.NoError(t, err)
			} else {
				require.True(t, resterr.IsCode(err, resterr.Unauthorized), err)
			}
		})
	}
}
