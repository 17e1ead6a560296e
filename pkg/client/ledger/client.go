/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
)

var logger = log.New("ledger-client")

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config defines configuration for Client.
type Config struct {
	HTTPClient httpClient
	// BaseURL is the ledger gateway endpoint.
	BaseURL string
}

// Client calls the ledger gateway that fronts the credential metadata and revocation registries.
type Client struct {
	httpClient httpClient
	baseURL    string
}

// Error is a rejection reported by the ledger.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ledger rejected request with status %d [%s]: %s", e.StatusCode, e.Code, e.Message)
}

// MetadataListRequest creates a credential metadata list for the issuer.
type MetadataListRequest struct {
	IssuerDID         string `json:"issuerDid"`
	ListID            int64  `json:"listId"`
	SignedTransaction string `json:"signedTransaction"`
}

// MetadataEntryRequest anchors the metadata of one issued credential.
type MetadataEntryRequest struct {
	IssuerDID         string `json:"issuerDid"`
	ListID            int64  `json:"listId"`
	Index             int    `json:"index"`
	CredentialType    string `json:"credentialType"`
	ContentHash       string `json:"contentHash"`
	PublicKey         string `json:"publicKey"`
	SignedTransaction string `json:"signedTransaction"`
}

// RevocationListRequest creates a revocation list for the issuer.
type RevocationListRequest struct {
	IssuerDID         string `json:"issuerDid"`
	ListID            int64  `json:"listId"`
	SignedTransaction string `json:"signedTransaction"`
}

func New(config *Config) *Client {
	return &Client{
		httpClient: config.HTTPClient,
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
	}
}

// LookupPrimary returns the primary ledger account of the organization identified by the DID.
func (c *Client) LookupPrimary(ctx context.Context, did string) (string, error) {
	body, err := c.send(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/v0.6/organizations/%s/primary", c.baseURL, url.PathEscape(did)), nil)
	if err != nil {
		return "", fmt.Errorf("lookup primary: %w", err)
	}

	primary := gjson.GetBytes(body, "primary").String()
	if primary == "" {
		return "", fmt.Errorf("lookup primary: no primary account for %s", did)
	}

	return primary, nil
}

// CreateCredentialMetadataList creates a new metadata list.
func (c *Client) CreateCredentialMetadataList(ctx context.Context, req *MetadataListRequest) error {
	if _, err := c.send(ctx, http.MethodPost, c.baseURL+"/api/v0.6/metadata-lists", req); err != nil {
		return fmt.Errorf("create credential metadata list: %w", err)
	}

	return nil
}

// AddCredentialMetadataEntry anchors a metadata entry.
func (c *Client) AddCredentialMetadataEntry(ctx context.Context, req *MetadataEntryRequest) error {
	if _, err := c.send(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/v0.6/metadata-lists/%d/entries", c.baseURL, req.ListID), req); err != nil {
		return fmt.Errorf("add credential metadata entry: %w", err)
	}

	return nil
}

// AddRevocationListSigned creates a new revocation list.
func (c *Client) AddRevocationListSigned(ctx context.Context, req *RevocationListRequest) error {
	if _, err := c.send(ctx, http.MethodPost, c.baseURL+"/api/v0.6/revocation-lists", req); err != nil {
		return fmt.Errorf("add revocation list: %w", err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, target string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader

	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}

		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if payload != nil {
		req.Header.Add("content-type", "application/json")
	}

	logger.Debug("ledger request", log.WithURL(target))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Code:       gjson.GetBytes(body, "errorCode").String(),
			Message:    gjson.GetBytes(body, "message").String(),
		}
	}

	return body, nil
}
