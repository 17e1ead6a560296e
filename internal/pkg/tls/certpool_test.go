/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tls_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/credential-agent/internal/pkg/tls"
)

func selfSigned(t *testing.T) *x509.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "ca.example.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		IsCA:         true,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return cert
}

func TestCertPool(t *testing.T) {
	t.Run("empty pool", func(t *testing.T) {
		p, err := tls.NewCertPool(false)
		require.NoError(t, err)

		pool, err := p.Get()
		require.NoError(t, err)
		require.True(t, pool.Equal(x509.NewCertPool()))
	})

	t.Run("added certificate", func(t *testing.T) {
		p, err := tls.NewCertPool(false)
		require.NoError(t, err)

		cert := selfSigned(t)
		p.Add(cert)

		pool, err := p.Get()
		require.NoError(t, err)

		expected := x509.NewCertPool()
		expected.AddCert(cert)
		require.True(t, pool.Equal(expected))
	})
}
