/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tls

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

const pemTypeCertificate = "CERTIFICATE"

// LoadCertPool builds a root CA pool from PEM files. A file may hold a bundle of certificates.
func LoadCertPool(useSystemCertPool bool, caCertPaths []string) (*x509.CertPool, error) {
	p, err := NewCertPool(useSystemCertPool)
	if err != nil {
		return nil, err
	}

	for _, path := range caCertPaths {
		certs, err := readCertificates(path)
		if err != nil {
			return nil, err
		}

		p.Add(certs...)
	}

	return p.Get()
}

func readCertificates(path string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read ca cert %s: %w", path, err)
	}

	var certs []*x509.Certificate

	for {
		var block *pem.Block

		block, data = pem.Decode(data)
		if block == nil {
			break
		}

		if block.Type != pemTypeCertificate {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse ca cert %s: %w", path, err)
		}

		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		return nil, fmt.Errorf("no pem certificate in %s", path)
	}

	return certs, nil
}
