/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination validator_mocks_test.go -self_package mocks -package offervalidator_test -source=validator.go -mock_names schemaResolver=MockSchemaResolver

package offervalidator

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/trustbloc/credential-agent/pkg/client/schema"
	"github.com/trustbloc/credential-agent/pkg/doc/validator/jsonschema"
	"github.com/trustbloc/credential-agent/pkg/offer"
)

const (
	// SchemaType is the credentialSchema type set on validated offers.
	SchemaType = "JsonSchemaValidator2018"

	baseCredentialType = "VerifiableCredential"
)

// InvalidOfferError reports an offer that breaks a structural or schema rule.
// Its message is recorded as the vendor offer status.
type InvalidOfferError struct {
	Err error
}

func (e *InvalidOfferError) Error() string {
	return e.Err.Error()
}

func (e *InvalidOfferError) Unwrap() error {
	return e.Err
}

// IsInvalidOffer reports whether err is an offer validation failure.
func IsInvalidOffer(err error) bool {
	var invalidErr *InvalidOfferError

	return errors.As(err, &invalidErr)
}

type schemaResolver interface {
	Resolve(ctx context.Context, credentialType string) (*schema.Schema, error)
}

// Validator checks offers against the shape rules and the JSON schema of their type.
type Validator struct {
	schemas   schemaResolver
	validator *jsonschema.CachingValidator
}

func New(schemas schemaResolver) *Validator {
	return &Validator{
		schemas:   schemas,
		validator: jsonschema.NewCachingValidator(),
	}
}

// Validate returns an *InvalidOfferError for offers that must be dropped and any other
// error when validation could not run. On success the offer references its schema.
func (v *Validator) Validate(ctx context.Context, o *offer.Offer) error {
	if err := offer.ValidateShape(o); err != nil {
		return &InvalidOfferError{Err: err}
	}

	credentialType, ok := lo.Find(lo.Reverse(append([]string(nil), o.Type...)), func(t string) bool {
		return t != baseCredentialType
	})
	if !ok {
		return &InvalidOfferError{Err: fmt.Errorf("offer type must not be only %s", baseCredentialType)}
	}

	s, err := v.schemas.Resolve(ctx, credentialType)
	if err != nil {
		if errors.Is(err, schema.ErrUnknownCredentialType) {
			return &InvalidOfferError{Err: err}
		}

		return fmt.Errorf("resolve schema of %s: %w", credentialType, err)
	}

	subject := lo.OmitByKeys(o.CredentialSubject, []string{"id", offer.VendorUserIDField})

	if err = v.validator.Validate(subject, s.ID, s.Document); err != nil {
		if errors.Is(err, jsonschema.ErrValidation) {
			return &InvalidOfferError{Err: fmt.Errorf("credentialSubject %w", err)}
		}

		return fmt.Errorf("validate schema of %s: %w", credentialType, err)
	}

	o.CredentialSchema = []offer.CredentialSchema{{ID: s.ID, Type: SchemaType}}

	return nil
}
