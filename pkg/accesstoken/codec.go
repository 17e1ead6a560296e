/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package accesstoken

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trustbloc/credential-agent/pkg/kms"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

var ErrInvalidToken = errors.New("invalid access token")

type keyProvider interface {
	GetKeyHandle(ctx context.Context, cfg *kms.KeyConfig) (kms.KeyHandle, error)
}

// Claims of an exchange access token. The token id is the exchange id.
type Claims struct {
	jwt.RegisteredClaims
}

// ExchangeID returns the exchange the token grants access to.
func (c *Claims) ExchangeID() string {
	return c.ID
}

// Codec mints and verifies access tokens signed with the tenant EXCHANGES key.
type Codec struct {
	keys keyProvider
	ttl  time.Duration
	now  func() time.Time
}

func NewCodec(keys keyProvider, ttl time.Duration) *Codec {
	return &Codec{
		keys: keys,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Mint returns a token for the exchange issued by and intended for the tenant.
func (c *Codec) Mint(ctx context.Context, t *tenant.Tenant, exchangeID, subject string) (string, error) {
	key, err := c.exchangesKey(ctx, t)
	if err != nil {
		return "", err
	}

	method := jwt.GetSigningMethod(key.Algorithm())
	if method == nil {
		return "", fmt.Errorf("%w: algorithm %s", kms.ErrUnsupportedKey, key.Algorithm())
	}

	now := c.now()

	token := jwt.NewWithClaims(method, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        exchangeID,
			Issuer:    t.DID,
			Audience:  jwt.ClaimStrings{t.DID},
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	token.Header["kid"] = key.KID()

	signingString, err := token.SigningString()
	if err != nil {
		return "", fmt.Errorf("access token signing string: %w", err)
	}

	sig, err := key.Sign(ctx, []byte(signingString))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signingString + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// Verify checks the token signature, audience, issuer and validity period.
func (c *Codec) Verify(ctx context.Context, t *tenant.Tenant, tokenString string) (*Claims, error) {
	key, err := c.exchangesKey(ctx, t)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}

	_, err = jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if kid, _ := token.Header["kid"].(string); kid != key.KID() {
				return nil, fmt.Errorf("unexpected kid %q", kid)
			}

			return key.Public(), nil
		},
		jwt.WithValidMethods([]string{key.Algorithm()}),
		jwt.WithAudience(t.DID),
		jwt.WithIssuer(t.DID),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing jti", ErrInvalidToken)
	}

	return claims, nil
}

func (c *Codec) exchangesKey(ctx context.Context, t *tenant.Tenant) (kms.KeyHandle, error) {
	cfg, err := t.KeyRing().Get(tenant.KeyPurposeExchanges)
	if err != nil {
		return nil, err
	}

	return c.keys.GetKeyHandle(ctx, cfg)
}
