/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package holder_test -source=controller.go -mock_names exchangeService=MockExchangeService,offerService=MockOfferService,finalizeService=MockFinalizeService

package holder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/offer"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/mw"
	"github.com/trustbloc/credential-agent/pkg/restapi/v1/util"
	"github.com/trustbloc/credential-agent/pkg/service/finalize"
	"github.com/trustbloc/credential-agent/pkg/service/offeringestion"
	"github.com/trustbloc/credential-agent/pkg/tenant"
)

const (
	// ProtocolVersionHeader selects the holder protocol version. Version 2 adds proof of possession.
	ProtocolVersionHeader = "X-Protocol-Version"

	defaultProtocolVersion = 1
	exchangeIDQueryParam   = "exchange_id"
)

type exchangeService interface {
	Get(ctx context.Context, tenantID, id string) (*exchange.Exchange, error)
	Progress(ctx context.Context, tenantID, exchangeID string) (*exchange.Exchange, exchange.Progress, error)
}

type offerService interface {
	RequestOffers(
		ctx context.Context,
		cfg *tenant.IssuingConfig,
		req *offeringestion.Request,
	) (*offeringestion.Result, error)
}

type finalizeService interface {
	FinalizeOffers(ctx context.Context, cfg *tenant.IssuingConfig, req *finalize.Request) ([]string, error)
}

// Config holds configuration options and dependencies for Controller.
type Config struct {
	ExchangeService exchangeService
	OfferService    offerService
	FinalizeService finalizeService
}

// Controller for the holder issuing API. Requests reach it after the tenant was resolved and
// the access token verified.
type Controller struct {
	exchanges exchangeService
	offers    offerService
	finalizer finalizeService
}

// NewController creates a new controller for the holder issuing API.
func NewController(config *Config) *Controller {
	return &Controller{
		exchanges: config.ExchangeService,
		offers:    config.OfferService,
		finalizer: config.FinalizeService,
	}
}

// RegisterHandlers adds the holder routes to the router.
func RegisterHandlers(router util.EchoRouter, c *Controller) {
	router.POST("/issue/credential-offers", c.PostCredentialOffers)
	router.POST("/issue/finalize-offers", c.PostFinalizeOffers)
	router.GET("/get-exchange-progress", c.GetExchangeProgress)
}

// PostCredentialOffers returns the offers of the exchange.
// POST /api/holder/v0.6/org/{tenantDID}/issue/credential-offers.
func (c *Controller) PostCredentialOffers(ctx echo.Context) error {
	var body CredentialOffersRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	version, err := protocolVersion(ctx)
	if err != nil {
		return err
	}

	exchangeID, err := boundExchangeID(ctx, body.ExchangeID)
	if err != nil {
		return err
	}

	cfg, err := c.issuingConfig(ctx, exchangeID)
	if err != nil {
		return err
	}

	res, err := c.offers.RequestOffers(ctx.Request().Context(), cfg, &offeringestion.Request{
		ExchangeID:      exchangeID,
		Types:           body.Types,
		OfferHashes:     body.OfferHashes,
		ProtocolVersion: version,
	})
	if err != nil {
		return err
	}

	resp := &CredentialOffersResponse{
		Offers:    res.Offers,
		Challenge: res.Challenge,
	}

	if resp.Offers == nil {
		resp.Offers = []*offer.Offer{}
	}

	if res.Waiting {
		return util.WriteOutputWithCode(http.StatusAccepted, ctx)(resp, nil)
	}

	return util.WriteOutput(ctx)(resp, nil)
}

// PostFinalizeOffers issues the approved offers and records the rejected ones.
// POST /api/holder/v0.6/org/{tenantDID}/issue/finalize-offers.
func (c *Controller) PostFinalizeOffers(ctx echo.Context) error {
	var body FinalizeOffersRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	version, err := protocolVersion(ctx)
	if err != nil {
		return err
	}

	exchangeID, err := boundExchangeID(ctx, body.ExchangeID)
	if err != nil {
		return err
	}

	cfg, err := c.issuingConfig(ctx, exchangeID)
	if err != nil {
		return err
	}

	credentials, err := c.finalizer.FinalizeOffers(ctx.Request().Context(), cfg, &finalize.Request{
		ExchangeID:       exchangeID,
		ApprovedOfferIDs: body.ApprovedOfferIDs,
		RejectedOfferIDs: body.RejectedOfferIDs,
		Proof:            body.Proof,
		ProtocolVersion:  version,
	})
	if err != nil {
		return err
	}

	if credentials == nil {
		credentials = []string{}
	}

	return util.WriteOutput(ctx)(credentials, nil)
}

// GetExchangeProgress returns the progress of the exchange.
// GET /api/holder/v0.6/org/{tenantDID}/get-exchange-progress.
func (c *Controller) GetExchangeProgress(ctx echo.Context) error {
	exchangeID, err := boundExchangeID(ctx, ctx.QueryParam(exchangeIDQueryParam))
	if err != nil {
		return err
	}

	ex, progress, err := c.exchanges.Progress(ctx.Request().Context(), mw.Tenant(ctx).ID, exchangeID)
	if err != nil {
		return err
	}

	return util.WriteOutput(ctx)(&ExchangeProgressResponse{
		ID:                 ex.ID,
		Type:               string(ex.Type),
		DisclosureComplete: progress.DisclosureComplete,
		ExchangeComplete:   progress.ExchangeComplete,
		ExchangeError:      progress.ExchangeError,
	}, nil)
}

func (c *Controller) issuingConfig(ctx echo.Context, exchangeID string) (*tenant.IssuingConfig, error) {
	t := mw.Tenant(ctx)

	ex, err := c.exchanges.Get(ctx.Request().Context(), t.ID, exchangeID)
	if err != nil {
		return nil, err
	}

	cfg, err := t.ResolveIssuingConfig(ex.DisclosureID)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.TenantRegistryComponent, "resolve-issuing-config", err)
	}

	return &cfg, nil
}

// boundExchangeID returns the exchange the access token was minted for. A requested exchange
// must match it.
func boundExchangeID(ctx echo.Context, requested string) (string, error) {
	claims := mw.Claims(ctx)
	if claims == nil {
		return "", resterr.NewUnauthorizedError(errors.New("missing access token"))
	}

	if requested != "" && requested != claims.ExchangeID() {
		return "", resterr.NewUnauthorizedError(
			fmt.Errorf("access token is not valid for exchange %s", requested))
	}

	return claims.ExchangeID(), nil
}

func protocolVersion(ctx echo.Context) (int, error) {
	v := ctx.Request().Header.Get(ProtocolVersionHeader)
	if v == "" {
		return defaultProtocolVersion, nil
	}

	version, err := strconv.Atoi(v)
	if err != nil || version < defaultProtocolVersion {
		return 0, resterr.NewValidationError(resterr.InvalidValue, ProtocolVersionHeader,
			fmt.Errorf("unsupported protocol version %q", v))
	}

	return version, nil
}
