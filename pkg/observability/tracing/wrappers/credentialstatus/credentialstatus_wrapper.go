/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package credentialstatus . Service

package credentialstatus

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/credential-agent/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/credential-agent/pkg/service/credentialstatus"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

type Service credentialstatus.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Allocate(ctx context.Context, cfg *tenant.IssuingConfig) (*credentialstatus.StatusEntry, error) {
	ctx, span := w.tracer.Start(ctx, "credentialstatus.Allocate")
	defer span.End()

	span.SetAttributes(attribute.String("tenant_id", cfg.TenantID))

	entry, err := w.svc.Allocate(ctx, cfg)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("credential_id", entry.CredentialID))
	span.SetAttributes(attributeutil.JSON("revocation", entry.Revocation))
	span.SetAttributes(attributeutil.JSON("metadata", entry.Metadata))

	return entry, nil
}

func (w *Wrapper) Anchor(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	entry *credentialstatus.StatusEntry,
	credentialType string,
	contentHash string,
	publicKey string,
) error {
	ctx, span := w.tracer.Start(ctx, "credentialstatus.Anchor")
	defer span.End()

	span.SetAttributes(attribute.String("tenant_id", cfg.TenantID))
	span.SetAttributes(attribute.String("credential_id", entry.CredentialID))
	span.SetAttributes(attribute.String("credential_type", credentialType))

	err := w.svc.Anchor(ctx, cfg, entry, credentialType, contentHash, publicKey)
	if err != nil {
		return err
	}

	return nil
}
