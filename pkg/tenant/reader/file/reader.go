/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

var logger = log.New("tenant-reader")

type tenantsFile struct {
	Tenants []*tenant.Tenant `json:"tenants"`
}

// Reader serves tenants loaded from a json file.
type Reader struct {
	tenants map[string]*tenant.Tenant
}

// NewReader loads the tenants file.
func NewReader(path string) (*Reader, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read tenants file: %w", err)
	}

	var f tenantsFile
	if err = json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse tenants file: %w", err)
	}

	r := &Reader{tenants: make(map[string]*tenant.Tenant, len(f.Tenants))}

	for _, t := range f.Tenants {
		if t.ID == "" || t.DID == "" {
			return nil, fmt.Errorf("tenant must have id and did")
		}

		if _, ok := r.tenants[t.DID]; ok {
			return nil, fmt.Errorf("duplicate tenant did %s", t.DID)
		}

		for _, k := range t.Keys {
			for _, p := range k.Purposes {
				if !p.Valid() {
					return nil, fmt.Errorf("tenant %s: key %s: unknown purpose %q", t.ID, k.KID, p)
				}
			}
		}

		r.tenants[t.DID] = t

		logger.Info("tenant loaded", log.WithTenantID(t.ID))
	}

	return r, nil
}

// GetByDID returns the tenant with the given did.
func (r *Reader) GetByDID(_ context.Context, did string) (*tenant.Tenant, error) {
	t, ok := r.tenants[did]
	if !ok {
		return nil, resterr.ErrTenantNotFound
	}

	return t, nil
}

// All returns every loaded tenant.
func (r *Reader) All() []*tenant.Tenant {
	res := make([]*tenant.Tenant, 0, len(r.tenants))

	for _, t := range r.tenants {
		res = append(res, t)
	}

	return res
}
