/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"context"
	"crypto"
	"encoding/json"
	"errors"
)

type Type string

const (
	AWS   Type = "aws"
	Local Type = "local"
)

// Signature algorithms of the supported keys, as named in JWS headers.
const (
	ES256 = "ES256"
	ES384 = "ES384"
)

var ErrUnsupportedKey = errors.New("unsupported key")

// Config configures the kms used for keys that do not name their own.
type Config struct {
	KMSType  Type   `json:"kmsType"`
	Endpoint string `json:"endpoint,omitempty"`
	Region   string `json:"region,omitempty"`
}

// KeyConfig locates one signing key.
type KeyConfig struct {
	KMSType Type `json:"kmsType,omitempty"`
	// KID is the verification method id put in signature headers, e.g. did:ion:abc#key-1.
	KID string `json:"kid"`
	// KeyID identifies the key inside an external kms.
	KeyID string `json:"keyId,omitempty"`
	// PrivateJWK holds the key material of a local key.
	PrivateJWK json.RawMessage `json:"privateJwk,omitempty"`
}

// KeyHandle is a signing capability over a single key.
type KeyHandle interface {
	KID() string
	Algorithm() string
	Public() crypto.PublicKey
	// Sign returns the JWS signature (R || S) of data.
	Sign(ctx context.Context, data []byte) ([]byte, error)
}
