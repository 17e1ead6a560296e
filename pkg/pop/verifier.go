/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package pop

import (
	"crypto"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"

	"github.com/trustbloc/credential-agent/pkg/exchange"
	"github.com/trustbloc/credential-agent/pkg/restapi/resterr"
)

const (
	// ProofTypeJWT is the only supported proof type.
	ProofTypeJWT = "jwt"

	didJWKPrefix        = "did:jwk:"
	thumbprintURNPrefix = "urn:ietf:params:oauth:jwk-thumbprint:sha-256:"
	challengeSize       = 32
)

// SubjectFormat selects how the holder key is written into credentialSubject.id.
type SubjectFormat string

const (
	SubjectFormatDID        SubjectFormat = "did"
	SubjectFormatThumbprint SubjectFormat = "thumbprint"
)

// Proof is the holder's proof of possession of its key.
type Proof struct {
	ProofType string `json:"proof_type"`
	JWT       string `json:"jwt"`
}

// Config of the verifier.
type Config struct {
	// Audience is the value holders must put in the proof aud claim.
	Audience string
	// ChallengeTTL is how long a challenge stays valid after it was issued.
	ChallengeTTL  time.Duration
	SubjectFormat SubjectFormat
}

type proofClaims struct {
	jwt.Claims
	Nonce string `json:"nonce"`
}

// Verifier binds a holder key to the challenge of an exchange.
type Verifier struct {
	audience      string
	challengeTTL  time.Duration
	subjectFormat SubjectFormat
	now           func() time.Time
}

func NewVerifier(cfg *Config) *Verifier {
	return &Verifier{
		audience:      cfg.Audience,
		challengeTTL:  cfg.ChallengeTTL,
		subjectFormat: cfg.SubjectFormat,
		now:           time.Now,
	}
}

// IssueChallenge returns a new random challenge and its issuance time in unix seconds.
func (v *Verifier) IssueChallenge() (string, int64, error) {
	b := make([]byte, challengeSize)

	if _, err := rand.Read(b); err != nil {
		return "", 0, fmt.Errorf("generate challenge: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), v.now().Unix(), nil
}

// Verify checks the proof against the current challenge of the exchange and returns
// the holder subject identifier.
func (v *Verifier) Verify(ex *exchange.Exchange, proof *Proof) (string, error) {
	if proof == nil || proof.ProofType != ProofTypeJWT {
		return "", resterr.NewCustomError(resterr.InvalidRequest,
			fmt.Errorf("proof_type must be %s", ProofTypeJWT))
	}

	if proof.JWT == "" {
		return "", resterr.NewCustomError(resterr.BadProof, errors.New("proof jwt is missing"))
	}

	parsed, err := jwt.ParseSigned(proof.JWT)
	if err != nil {
		return "", resterr.NewCustomError(resterr.BadProof, fmt.Errorf("parse proof jwt: %w", err))
	}

	if len(parsed.Headers) != 1 {
		return "", resterr.NewCustomError(resterr.BadProof, errors.New("proof jwt must have one signature"))
	}

	did, key, err := resolveDIDJWK(parsed.Headers[0].KeyID)
	if err != nil {
		return "", resterr.NewCustomError(resterr.InvalidKID, err)
	}

	var claims proofClaims

	if err = parsed.Claims(key.Key, &claims); err != nil {
		return "", resterr.NewCustomError(resterr.BadProofSignature, fmt.Errorf("verify proof signature: %w", err))
	}

	if !claims.Audience.Contains(v.audience) {
		return "", resterr.NewCustomError(resterr.BadAudience,
			fmt.Errorf("proof audience must be %s", v.audience))
	}

	if ex.Challenge == "" || claims.Nonce != ex.Challenge {
		return "", resterr.NewCustomError(resterr.ChallengeMismatch,
			errors.New("proof nonce does not match the exchange challenge"))
	}

	issuedAt := time.Unix(ex.ChallengeIssuedAt, 0)
	if v.now().Sub(issuedAt) > v.challengeTTL {
		return "", resterr.NewCustomError(resterr.ChallengeExpired,
			fmt.Errorf("challenge issued at %s has expired", issuedAt.UTC().Format(time.RFC3339)))
	}

	if v.subjectFormat == SubjectFormatThumbprint {
		tp, tpErr := key.Thumbprint(crypto.SHA256)
		if tpErr != nil {
			return "", resterr.NewCustomError(resterr.InvalidKID, fmt.Errorf("key thumbprint: %w", tpErr))
		}

		return thumbprintURNPrefix + base64.RawURLEncoding.EncodeToString(tp), nil
	}

	return did, nil
}

// resolveDIDJWK decodes a did:jwk key identifier into the DID and its public key.
func resolveDIDJWK(kid string) (string, *jose.JSONWebKey, error) {
	if !strings.HasPrefix(kid, didJWKPrefix) {
		return "", nil, fmt.Errorf("kid %q is not a did:jwk", kid)
	}

	did, _, _ := strings.Cut(kid, "#")

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(did, didJWKPrefix))
	if err != nil {
		return "", nil, fmt.Errorf("decode did:jwk: %w", err)
	}

	var key jose.JSONWebKey

	if err = key.UnmarshalJSON(raw); err != nil {
		return "", nil, fmt.Errorf("parse did:jwk key: %w", err)
	}

	if !key.IsPublic() {
		return "", nil, errors.New("did:jwk must hold a public key")
	}

	return did, &key, nil
}

// DIDJWK returns the did:jwk identifier of the public key.
func DIDJWK(key *jose.JSONWebKey) (string, error) {
	b, err := key.MarshalJSON()
	if err != nil {
		return "", err
	}

	return didJWKPrefix + base64.RawURLEncoding.EncodeToString(b), nil
}
