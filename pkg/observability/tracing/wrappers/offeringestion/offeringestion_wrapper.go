/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package offeringestion . Service

package offeringestion

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/service/offeringestion"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

type Service offeringestion.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) RequestOffers(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	req *offeringestion.Request,
) (*offeringestion.Result, error) {
	ctx, span := w.tracer.Start(ctx, "offeringestion.RequestOffers")
	defer span.End()

	span.SetAttributes(attribute.String("tenant_id", cfg.TenantID))
	span.SetAttributes(attribute.String("exchange_id", req.ExchangeID))
	span.SetAttributes(attribute.StringSlice("types", req.Types))
	span.SetAttributes(attribute.Int("offer_hashes", len(req.OfferHashes)))
	span.SetAttributes(attribute.Int("protocol_version", req.ProtocolVersion))

	res, err := w.svc.RequestOffers(ctx, cfg, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("offers", len(res.Offers)))
	span.SetAttributes(attribute.Bool("waiting", res.Waiting))

	return res, nil
}

func (w *Wrapper) Ingest(
	ctx context.Context,
	cfg *tenant.IssuingConfig,
	ex *exchange.Exchange,
	vendorOffers []*offer.Offer,
	knownHashes []string,
) (*offeringestion.IngestResult, error) {
	ctx, span := w.tracer.Start(ctx, "offeringestion.Ingest")
	defer span.End()

	span.SetAttributes(attribute.String("tenant_id", cfg.TenantID))
	span.SetAttributes(attribute.String("exchange_id", ex.ID))
	span.SetAttributes(attribute.Int("vendor_offers", len(vendorOffers)))
	span.SetAttributes(attribute.Int("known_hashes", len(knownHashes)))

	res, err := w.svc.Ingest(ctx, cfg, ex, vendorOffers, knownHashes)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attributeutil.JSON("statuses", res.Statuses))

	return res, nil
}
