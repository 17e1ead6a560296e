/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"

	"github.com/trustbloc/credential-agent/pkg/kms"
)

type metricsProvider interface {
	SignTime(value time.Duration)
}

// JWTSigner produces compact JWS tokens with kms key handles.
type JWTSigner struct {
	metrics metricsProvider
}

func NewJWTSigner(metrics metricsProvider) *JWTSigner {
	return &JWTSigner{metrics: metrics}
}

// SignJWT signs the claims with the key. The kid header is the key's verification method id.
func (s *JWTSigner) SignJWT(ctx context.Context, key kms.KeyHandle, claims interface{}) (string, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.SignTime(time.Since(startTime))
		}
	}()

	alg := jose.SignatureAlgorithm(key.Algorithm())

	sig, err := jose.NewSigner(
		jose.SigningKey{Algorithm: alg, Key: &opaqueSigner{ctx: ctx, key: key}},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("create jose signer: %w", err)
	}

	token, err := jwt.Signed(sig).Claims(claims).CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}

	return token, nil
}

// opaqueSigner lets go-jose delegate signing to a kms key handle.
type opaqueSigner struct {
	ctx context.Context //nolint:containedctx
	key kms.KeyHandle
}

func (s *opaqueSigner) Public() *jose.JSONWebKey {
	return &jose.JSONWebKey{
		Key:       s.key.Public(),
		KeyID:     s.key.KID(),
		Algorithm: s.key.Algorithm(),
		Use:       "sig",
	}
}

func (s *opaqueSigner) Algs() []jose.SignatureAlgorithm {
	return []jose.SignatureAlgorithm{jose.SignatureAlgorithm(s.key.Algorithm())}
}

func (s *opaqueSigner) SignPayload(payload []byte, alg jose.SignatureAlgorithm) ([]byte, error) {
	if string(alg) != s.key.Algorithm() {
		return nil, fmt.Errorf("%w: algorithm %s", kms.ErrUnsupportedKey, alg)
	}

	return s.key.Sign(s.ctx, payload)
}
