/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offer

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"
)

// ContentHashType tags content hashes computed by ComputeContentHash.
const ContentHashType = "CanonicalContentHash2020"

// CanonicalContent returns the canonical form hashed by ComputeContentHash.
//
// The canonical form is the JSON object made of the fields below, with object keys
// sorted at every level, no insignificant whitespace and timestamps in RFC 3339 UTC:
//
//	issuer            issuer id
//	type              credential types, in the given order
//	credentialSubject subject claims without "id"
//	credentialSchema  schema references
//	validFrom, validUntil, expirationDate
//	replaces, relatedResource  referenced credential ids
//	linkedCredentials
//
// Empty fields are omitted. Identifiers, bookkeeping timestamps, link codes and
// finalization fields never take part.
func CanonicalContent(o *Offer) ([]byte, error) {
	content := map[string]interface{}{}

	if o.Issuer.ID != "" {
		content["issuer"] = o.Issuer.ID
	}

	if len(o.Type) > 0 {
		content["type"] = o.Type
	}

	subject := lo.OmitByKeys(o.CredentialSubject, []string{"id"})
	if len(subject) > 0 {
		content["credentialSubject"] = subject
	}

	if len(o.CredentialSchema) > 0 {
		content["credentialSchema"] = o.CredentialSchema
	}

	putTime(content, "validFrom", o.ValidFrom)
	putTime(content, "validUntil", o.ValidUntil)
	putTime(content, "expirationDate", o.ExpirationDate)

	if ids := resourceIDs(o.Replaces); len(ids) > 0 {
		content["replaces"] = ids
	}

	if ids := resourceIDs(o.RelatedResource); len(ids) > 0 {
		content["relatedResource"] = ids
	}

	if len(o.LinkedCredentials) > 0 {
		content["linkedCredentials"] = o.LinkedCredentials
	}

	// encoding/json writes map keys in sorted order; round-tripping through a generic
	// value applies the same ordering to struct-typed members.
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal offer content: %w", err)
	}

	var generic interface{}
	if err = json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("normalize offer content: %w", err)
	}

	return json.Marshal(generic)
}

// ComputeContentHash returns the SHA-256 digest of the canonical content, base64url encoded.
func ComputeContentHash(o *Offer) (*ContentHash, error) {
	canonical, err := CanonicalContent(o)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(canonical)

	return &ContentHash{
		Type:  ContentHashType,
		Value: base64.RawURLEncoding.EncodeToString(digest[:]),
	}, nil
}

func putTime(content map[string]interface{}, key string, t *time.Time) {
	if t == nil || t.IsZero() {
		return
	}

	content[key] = t.UTC().Format(time.RFC3339Nano)
}

func resourceIDs(resources []RelatedResource) []string {
	return lo.FilterMap(resources, func(r RelatedResource, _ int) (string, bool) {
		return r.ID, r.ID != ""
	})
}
