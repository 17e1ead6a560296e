/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "credential_agent"

	// Crypto plain crypto operations.
	Crypto               = "crypto"
	CryptoSignTimeMetric = "crypto_sign_seconds"

	// Vendor back office calls.
	Vendor                 = "vendor"
	VendorOffersTimeMetric = "vendor_generate_offers_seconds"

	// Service operations.
	Service                   = "service"
	OffersIngestedMetric      = "offers_ingested_total"
	CredentialsIssuedMetric   = "credentials_issued_total"
	OffersRejectedMetric      = "offers_rejected_total"
	NotificationFailureMetric = "notification_failures_total"
)

// Outcomes of an ingested offer.
const (
	OutcomeOK        = "ok"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	SignTime(value time.Duration)
	VendorOffersTime(value time.Duration)
	OfferIngested(outcome string)
	CredentialIssued()
	OfferRejected()
	NotificationFailed(eventType string)
}
