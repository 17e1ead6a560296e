/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package local

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"

	"github.com/go-jose/go-jose/v3"

	"github.com/trustbloc/credential-agent/pkg/kms"
)

// KeyManager creates handles over private keys given as JWK in the key config.
type KeyManager struct{}

func NewKeyManager() *KeyManager {
	return &KeyManager{}
}

// KeyHandle parses the private JWK of the key config.
func (m *KeyManager) KeyHandle(_ context.Context, cfg *kms.KeyConfig) (kms.KeyHandle, error) {
	if len(cfg.PrivateJWK) == 0 {
		return nil, fmt.Errorf("%w: local key %s has no private jwk", kms.ErrUnsupportedKey, cfg.KID)
	}

	var jwk jose.JSONWebKey

	if err := jwk.UnmarshalJSON(cfg.PrivateJWK); err != nil {
		return nil, fmt.Errorf("parse private jwk: %w", err)
	}

	priv, ok := jwk.Key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T", kms.ErrUnsupportedKey, jwk.Key)
	}

	return NewKeyHandle(cfg.KID, priv)
}

// KeyHandle signs with an in-memory ECDSA key.
type KeyHandle struct {
	kid  string
	alg  string
	hash crypto.Hash
	size int
	priv *ecdsa.PrivateKey
}

// NewKeyHandle creates a handle for a P-256 or P-384 private key.
func NewKeyHandle(kid string, priv *ecdsa.PrivateKey) (*KeyHandle, error) {
	h := &KeyHandle{kid: kid, priv: priv}

	switch priv.Curve {
	case elliptic.P256():
		h.alg, h.hash, h.size = kms.ES256, crypto.SHA256, 32
	case elliptic.P384():
		h.alg, h.hash, h.size = kms.ES384, crypto.SHA384, 48
	default:
		return nil, fmt.Errorf("%w: curve %s", kms.ErrUnsupportedKey, priv.Curve.Params().Name)
	}

	return h, nil
}

func (h *KeyHandle) KID() string {
	return h.kid
}

func (h *KeyHandle) Algorithm() string {
	return h.alg
}

func (h *KeyHandle) Public() crypto.PublicKey {
	return &h.priv.PublicKey
}

func (h *KeyHandle) Sign(_ context.Context, data []byte) ([]byte, error) {
	hasher := h.hash.New()
	hasher.Write(data)

	r, s, err := ecdsa.Sign(rand.Reader, h.priv, hasher.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("ecdsa sign: %w", err)
	}

	sig := make([]byte, 2*h.size)
	r.FillBytes(sig[:h.size])
	s.FillBytes(sig[h.size:])

	return sig, nil
}
