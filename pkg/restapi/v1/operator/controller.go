/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package operator_test -source=controller.go -mock_names exchangeService=MockExchangeService,vendorOffersService=MockVendorOffersService

package operator

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/mw"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/util"
	"github.com/trustbloc/credential-agent/pkg/service/exchangeledger"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

const exchangeIDParam = "exchangeId"

type exchangeService interface {
	Create(ctx context.Context, t *tenant.Tenant, req *exchangeledger.CreateRequest) (*exchange.Exchange, error)
	Identify(ctx context.Context, t *tenant.Tenant, exchangeID, vendorUserID string) (*exchangeledger.IdentifyResult, error)
}

type vendorOffersService interface {
	AddOffer(ctx context.Context, cfg *tenant.IssuingConfig, exchangeID string, o *offer.Offer) (*offer.Offer, error)
	AddPreparedOffer(ctx context.Context, cfg *tenant.IssuingConfig, o *offer.Offer) (*offer.Offer, error)
	CompleteOffers(ctx context.Context, cfg *tenant.IssuingConfig, exchangeID string) ([]string, error)
	CleanPII(ctx context.Context, cfg *tenant.IssuingConfig, filter *offer.CleanPIIFilter) (int64, error)
}

// Config holds configuration options and dependencies for Controller.
type Config struct {
	ExchangeService     exchangeService
	VendorOffersService vendorOffersService
}

// Controller for the operator API used by the tenant back office.
type Controller struct {
	exchanges    exchangeService
	vendorOffers vendorOffersService
}

// NewController creates a new controller for the operator API.
func NewController(config *Config) *Controller {
	return &Controller{
		exchanges:    config.ExchangeService,
		vendorOffers: config.VendorOffersService,
	}
}

// RegisterHandlers adds the operator routes to the router.
func RegisterHandlers(router util.EchoRouter, c *Controller) {
	router.POST("/exchanges", c.PostExchanges)
	router.POST("/exchanges/:exchangeId/identify", c.PostIdentify)
	router.POST("/exchanges/:exchangeId/offers", c.PostOffers)
	router.POST("/exchanges/:exchangeId/offers/complete", c.PostCompleteOffers)
	router.POST("/offers", c.PostPreparedOffers)
	router.POST("/offers/clean_pii", c.PostCleanPII)
}

// PostExchanges starts a new exchange.
// POST /operator-api/v0.8/tenants/{tenantDID}/exchanges.
func (c *Controller) PostExchanges(ctx echo.Context) error {
	var body CreateExchangeRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	ex, err := c.exchanges.Create(ctx.Request().Context(), mw.Tenant(ctx), &exchangeledger.CreateRequest{
		Type:         body.Type,
		DisclosureID: body.DisclosureID,
		PushDelegate: body.PushDelegate,
	})
	if err != nil {
		return err
	}

	return util.WriteOutputWithCode(http.StatusCreated, ctx)(&ExchangeResponse{
		ID:           ex.ID,
		Type:         ex.Type,
		DisclosureID: ex.DisclosureID,
		Events:       ex.Events,
		CreatedAt:    ex.CreatedAt,
	}, nil)
}

// PostIdentify binds the holder to the exchange and returns its access token.
// POST /operator-api/v0.8/tenants/{tenantDID}/exchanges/{exchangeId}/identify.
func (c *Controller) PostIdentify(ctx echo.Context) error {
	var body IdentifyRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	res, err := c.exchanges.Identify(ctx.Request().Context(), mw.Tenant(ctx), ctx.Param(exchangeIDParam),
		body.VendorUserID)
	if err != nil {
		return err
	}

	return util.WriteOutput(ctx)(&IdentifyResponse{Token: res.Token}, nil)
}

// PostOffers adds a vendor offer to the exchange.
// POST /operator-api/v0.8/tenants/{tenantDID}/exchanges/{exchangeId}/offers.
func (c *Controller) PostOffers(ctx echo.Context) error {
	o, cfg, err := c.readOffer(ctx)
	if err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.vendorOffers.AddOffer(ctx.Request().Context(), cfg, ctx.Param(exchangeIDParam), o))
}

// PostPreparedOffers stores an offer picked up by the next exchange of the holder.
// POST /operator-api/v0.8/tenants/{tenantDID}/offers.
func (c *Controller) PostPreparedOffers(ctx echo.Context) error {
	o, cfg, err := c.readOffer(ctx)
	if err != nil {
		return err
	}

	return util.WriteOutput(ctx)(c.vendorOffers.AddPreparedOffer(ctx.Request().Context(), cfg, o))
}

// PostCompleteOffers ends the vendor ingestion of the exchange.
// POST /operator-api/v0.8/tenants/{tenantDID}/exchanges/{exchangeId}/offers/complete.
func (c *Controller) PostCompleteOffers(ctx echo.Context) error {
	cfg, err := issuingConfig(ctx)
	if err != nil {
		return err
	}

	offerIDs, err := c.vendorOffers.CompleteOffers(ctx.Request().Context(), cfg, ctx.Param(exchangeIDParam))
	if err != nil {
		return err
	}

	return util.WriteOutput(ctx)(&CompleteOffersResponse{OfferIDs: offerIDs}, nil)
}

// PostCleanPII reduces the credential subjects of the selected offers to the holder stub.
// POST /operator-api/v0.8/tenants/{tenantDID}/offers/clean_pii.
func (c *Controller) PostCleanPII(ctx echo.Context) error {
	var body CleanPIIRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if body.Filter == nil {
		body.Filter = &offer.CleanPIIFilter{}
	}

	cfg, err := issuingConfig(ctx)
	if err != nil {
		return err
	}

	n, err := c.vendorOffers.CleanPII(ctx.Request().Context(), cfg, body.Filter)
	if err != nil {
		return err
	}

	return util.WriteOutput(ctx)(&CleanPIIResponse{NumCleaned: n}, nil)
}

func (c *Controller) readOffer(ctx echo.Context) (*offer.Offer, *tenant.IssuingConfig, error) {
	var o offer.Offer

	if err := util.ReadBody(ctx, &o); err != nil {
		return nil, nil, err
	}

	cfg, err := issuingConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	return &o, cfg, nil
}

func issuingConfig(ctx echo.Context) (*tenant.IssuingConfig, error) {
	cfg, err := mw.Tenant(ctx).ResolveIssuingConfig("")
	if err != nil {
		return nil, resterr.NewSystemError(resterr.TenantRegistryComponent, "resolve-issuing-config", err)
	}

	return &cfg, nil
}
