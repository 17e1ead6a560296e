/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	ExchangeSvcComponent       Component = "exchange-service"
	OfferIngestionSvcComponent Component = "offer-ingestion-service"
	FinalizeSvcComponent       Component = "finalize-service"
	VendorOffersSvcComponent   Component = "vendor-offers-service"
	CredentialStatusComponent  Component = "credential-status-service"
	TenantRegistryComponent    Component = "tenant-registry"
	KMSRegistryComponent       Component = "kms-registry"
	CredentialSignerComponent  Component = "credential-signer"
	ExchangeStoreComponent     Component = "exchange-store"
	OfferStoreComponent        Component = "offer-store"
	VendorClientComponent      Component = "vendor-client"
	LedgerClientComponent      Component = "ledger-client"
	SchemaValidatorComponent   Component = "schema-validator"
)
