/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination tenant_mocks_test.go -self_package mocks -package mw_test -source=tenant.go -mock_names tenantRegistry=MockTenantRegistry,tokenVerifier=MockTokenVerifier

package mw

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credential-agent/pkg/accesstoken"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

const (
	// TenantDIDParam is the path parameter naming the tenant.
	TenantDIDParam = "tenantDID"

	tenantKey      = "tenant"
	claimsKey      = "accessTokenClaims"
	bearerScheme   = "Bearer "
	authzHeaderKey = "Authorization"
)

type tenantRegistry interface {
	GetByDID(ctx context.Context, did string) (*tenant.Tenant, error)
}

type tokenVerifier interface {
	Verify(ctx context.Context, t *tenant.Tenant, tokenString string) (*accesstoken.Claims, error)
}

// ResolveTenant loads the tenant named by the tenantDID path parameter.
func ResolveTenant(tenants tenantRegistry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			did := c.Param(TenantDIDParam)

			t, err := tenants.GetByDID(c.Request().Context(), did)
			if err != nil {
				if errors.Is(err, resterr.ErrTenantNotFound) {
					return resterr.NewCustomError(resterr.TenantNotFound, fmt.Errorf("tenant %s: %w", did, err))
				}

				return resterr.NewSystemError(resterr.TenantRegistryComponent, "get-by-did", err)
			}

			c.Set(tenantKey, t)

			return next(c)
		}
	}
}

// AccessTokenAuth verifies the bearer access token against the EXCHANGES key of the tenant.
// It must run after ResolveTenant.
func AccessTokenAuth(verifier tokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			t := Tenant(c)
			if t == nil {
				return resterr.NewSystemError(resterr.TenantRegistryComponent, "get-by-did",
					errors.New("tenant not resolved"))
			}

			authz := c.Request().Header.Get(authzHeaderKey)
			if !strings.HasPrefix(authz, bearerScheme) {
				return resterr.NewUnauthorizedError(errors.New("missing bearer access token"))
			}

			claims, err := verifier.Verify(c.Request().Context(), t, strings.TrimPrefix(authz, bearerScheme))
			if err != nil {
				if errors.Is(err, tenant.ErrKeyNotFound) {
					return resterr.NewCustomError(resterr.KeyNotFound, err)
				}

				return resterr.NewUnauthorizedError(err)
			}

			c.Set(claimsKey, claims)

			return next(c)
		}
	}
}

// Tenant returns the tenant resolved for the request.
func Tenant(c echo.Context) *tenant.Tenant {
	t, _ := c.Get(tenantKey).(*tenant.Tenant)

	return t
}

// Claims returns the verified access token claims of the request.
func Claims(c echo.Context) *accesstoken.Claims {
	claims, _ := c.Get(claimsKey).(*accesstoken.Claims)

	return claims
}
