/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offer

import (
	"errors"
	"fmt"
)

// Validation failures reported per offer.
var (
	ErrTypeRequired           = errors.New("type is required")
	ErrCredentialSubject      = errors.New("credentialSubject is required")
	ErrValidityWindowConflict = errors.New("expirationDate cannot be combined with validFrom or validUntil")
	ErrValidityWindowOrder    = errors.New("validFrom must be before validUntil")
	ErrOfferIDRequired        = errors.New("offerId is required")
)

// ValidateShape checks the structural rules every offer must satisfy.
func ValidateShape(o *Offer) error {
	if len(o.Type) == 0 {
		return ErrTypeRequired
	}

	if len(o.CredentialSubject) == 0 {
		return ErrCredentialSubject
	}

	if o.ExpirationDate != nil && (o.ValidFrom != nil || o.ValidUntil != nil) {
		return ErrValidityWindowConflict
	}

	if o.ValidFrom != nil && o.ValidUntil != nil && !o.ValidFrom.Before(*o.ValidUntil) {
		return fmt.Errorf("%w: %s, %s", ErrValidityWindowOrder, o.ValidFrom, o.ValidUntil)
	}

	return nil
}
