/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package finalize . Service

package finalize

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/credential-agent/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/credential-agent/pkg/service/finalize"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

const maxTracedIDs = 20

type Service finalize.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) FinalizeOffers(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	req *finalize.Request,
) ([]string, error) {
	ctx, span := w.tracer.Start(ctx, "finalize.FinalizeOffers")
	defer span.End()

	span.SetAttributes(attribute.String("tenant_id", cfg.TenantID))
	span.SetAttributes(attribute.String("exchange_id", req.ExchangeID))
	span.SetAttributes(attributeutil.IDs("approved_offer_ids", req.ApprovedOfferIDs, maxTracedIDs))
	span.SetAttributes(attributeutil.IDs("rejected_offer_ids", req.RejectedOfferIDs, maxTracedIDs))
	span.SetAttributes(attribute.Int("protocol_version", req.ProtocolVersion))
	span.SetAttributes(attributeutil.JSON("proof", req.Proof, attributeutil.WithRedacted("jwt")))

	credentials, err := w.svc.FinalizeOffers(ctx, cfg, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("issued", len(credentials)))

	return credentials, nil
}
