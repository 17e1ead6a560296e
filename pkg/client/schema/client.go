/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
	"github.com/trustbloc/credential-agent/pkg/doc/validator/jsonschema"
)

const credentialTypesPath = "/api/v0.6/credential-types"

var logger = log.New("schema-client")

var (
	// ErrCacheMiss is returned by a cache that does not hold the key.
	ErrCacheMiss = errors.New("schema not cached")
	// ErrUnknownCredentialType is returned when the registrar knows no schema for the type.
	ErrUnknownCredentialType = errors.New("unknown credential type")
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Config defines configuration for Client.
type Config struct {
	HTTPClient   httpClient
	RegistrarURL string
	// Cache is optional.
	Cache cache
}

// Schema is a fetched JSON schema document.
type Schema struct {
	ID       string
	Document []byte
}

// Client resolves the JSON schema of a credential type through the registrar.
type Client struct {
	httpClient   httpClient
	registrarURL string
	cache        cache
	group        singleflight.Group
}

func New(config *Config) *Client {
	return &Client{
		httpClient:   config.HTTPClient,
		registrarURL: strings.TrimSuffix(config.RegistrarURL, "/"),
		cache:        config.Cache,
	}
}

// Resolve returns the schema registered for the credential type. Concurrent calls
// for the same type share one lookup.
func (c *Client) Resolve(ctx context.Context, credentialType string) (*Schema, error) {
	v, err, _ := c.group.Do(credentialType, func() (interface{}, error) {
		schemaURL, err := c.lookupSchemaURL(ctx, credentialType)
		if err != nil {
			return nil, err
		}

		return c.fetch(ctx, schemaURL)
	})
	if err != nil {
		return nil, err
	}

	return v.(*Schema), nil //nolint:forcetypeassert
}

func (c *Client) lookupSchemaURL(ctx context.Context, credentialType string) (string, error) {
	body, err := c.get(ctx, c.registrarURL+credentialTypesPath+"?credentialType="+url.QueryEscape(credentialType))
	if err != nil {
		return "", fmt.Errorf("lookup credential type %s: %w", credentialType, err)
	}

	schemaURL := gjson.GetBytes(body, "0.schemaUrl").String()
	if schemaURL == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownCredentialType, credentialType)
	}

	return schemaURL, nil
}

func (c *Client) fetch(ctx context.Context, schemaURL string) (*Schema, error) {
	if c.cache != nil {
		doc, err := c.cache.Get(ctx, schemaURL)
		if err == nil {
			return parseSchema(doc)
		}

		if !errors.Is(err, ErrCacheMiss) {
			logger.Warn("schema cache read failed", log.WithURL(schemaURL), log.WithError(err))
		}
	}

	doc, err := c.get(ctx, schemaURL)
	if err != nil {
		return nil, fmt.Errorf("fetch schema %s: %w", schemaURL, err)
	}

	s, err := parseSchema(doc)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err = c.cache.Set(ctx, schemaURL, doc); err != nil {
			logger.Warn("schema cache write failed", log.WithURL(schemaURL), log.WithError(err))
		}
	}

	return s, nil
}

func parseSchema(doc []byte) (*Schema, error) {
	var schemaDoc jsonschema.Document

	if err := json.Unmarshal(doc, &schemaDoc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	id, err := jsonschema.SchemaID(schemaDoc)
	if err != nil {
		return nil, err
	}

	return &Schema{ID: id, Document: doc}, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("failed to close response body", log.WithError(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, msg: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
