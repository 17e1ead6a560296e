/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offer

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const (
	// LinkCodeCommitmentType tags commitments produced by CommitLinkCode.
	LinkCodeCommitmentType = "LinkCodeCommitment2022"

	linkCodeSize = 16
)

// NewLinkCode generates a random link code and its commitment.
func NewLinkCode() (string, *LinkCodeCommitment, error) {
	b := make([]byte, linkCodeSize)

	if _, err := rand.Read(b); err != nil {
		return "", nil, fmt.Errorf("generate link code: %w", err)
	}

	code := base64.RawURLEncoding.EncodeToString(b)

	return code, CommitLinkCode(code), nil
}

// CommitLinkCode returns the commitment to the given link code.
func CommitLinkCode(code string) *LinkCodeCommitment {
	digest := sha256.Sum256([]byte(code))

	return &LinkCodeCommitment{
		Type:  LinkCodeCommitmentType,
		Value: base64.StdEncoding.EncodeToString(digest[:]),
	}
}
