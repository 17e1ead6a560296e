/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/trustbloc/credential-agent/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the Metrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

// Provider is a metrics provider that records nothing.
type Provider struct{}

func NewProvider() metrics.Provider {
	return &Provider{}
}

func (p *Provider) Create() error            { return nil }
func (p *Provider) Destroy() error           { return nil }
func (p *Provider) Metrics() metrics.Metrics { return GetMetrics() }

func (n *NoMetrics) SignTime(_ time.Duration)         {}
func (n *NoMetrics) VendorOffersTime(_ time.Duration) {}
func (n *NoMetrics) OfferIngested(_ string)           {}
func (n *NoMetrics) CredentialIssued()                {}
func (n *NoMetrics) OfferRejected()                   {}
func (n *NoMetrics) NotificationFailed(_ string)      {}
