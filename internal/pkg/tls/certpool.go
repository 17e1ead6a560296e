/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tls

import (
	"crypto/x509"
	"fmt"
	"sync"
)

// CertPool collects certificates on top of an optional system pool.
type CertPool struct {
	mu    sync.Mutex
	certs []*x509.Certificate
	base  *x509.CertPool
}

// NewCertPool starts from the system pool when useSystemCertPool is set, from an empty pool otherwise.
func NewCertPool(useSystemCertPool bool) (*CertPool, error) {
	if !useSystemCertPool {
		return &CertPool{}, nil
	}

	base, err := x509.SystemCertPool()
	if err != nil {
		return nil, fmt.Errorf("load system cert pool: %w", err)
	}

	return &CertPool{base: base}, nil
}

// Add appends certificates to the pool.
func (p *CertPool) Add(certs ...*x509.Certificate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.certs = append(p.certs, certs...)
}

// Get returns an x509 pool with the base certificates and every added one.
func (p *CertPool) Get() (*x509.CertPool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pool := x509.NewCertPool()
	if p.base != nil {
		pool = p.base.Clone()
	}

	for _, c := range p.certs {
		pool.AddCert(c)
	}

	return pool, nil
}
