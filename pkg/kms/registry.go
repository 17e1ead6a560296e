/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"context"
	"fmt"
	"sync"
)

type handleFactory interface {
	KeyHandle(ctx context.Context, cfg *KeyConfig) (KeyHandle, error)
}

// Registry creates key handles from key configs and caches them by kid.
type Registry struct {
	defaultCfg *Config
	factories  map[Type]handleFactory

	mu      sync.RWMutex
	handles map[string]KeyHandle
}

func NewRegistry(defaultCfg *Config) *Registry {
	return &Registry{
		defaultCfg: defaultCfg,
		factories:  map[Type]handleFactory{},
		handles:    map[string]KeyHandle{},
	}
}

// Register sets the factory used for keys of the given kms type.
func (r *Registry) Register(kmsType Type, factory handleFactory) {
	r.factories[kmsType] = factory
}

// GetKeyHandle returns the handle for the key.
func (r *Registry) GetKeyHandle(ctx context.Context, cfg *KeyConfig) (KeyHandle, error) {
	r.mu.RLock()
	h, ok := r.handles[cfg.KID]
	r.mu.RUnlock()

	if ok {
		return h, nil
	}

	kmsType := cfg.KMSType
	if kmsType == "" && r.defaultCfg != nil {
		kmsType = r.defaultCfg.KMSType
	}

	factory, ok := r.factories[kmsType]
	if !ok {
		return nil, fmt.Errorf("unsupported kms type %q", kmsType)
	}

	h, err := factory.KeyHandle(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create key handle %s: %w", cfg.KID, err)
	}

	r.mu.Lock()
	r.handles[cfg.KID] = h
	r.mu.Unlock()

	return h, nil
}
