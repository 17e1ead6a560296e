/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
)

var logger = log.New("jsonschema")

// ErrValidation is wrapped by errors reporting a document that does not satisfy its schema.
var ErrValidation = errors.New("validation error")

// Document holds the JSON schema document.
type Document map[string]interface{}

// Validator is a JSON schema validator.
type Validator interface {
	ValidateJSONSchema(data interface{}) error
}

type validatorFactory func(schema Document) (Validator, error)

type compiled struct {
	digest    [sha256.Size]byte
	validator Validator
}

// CachingValidator compiles a schema once per schema ID and body. A refreshed schema body under
// the same ID replaces the compiled validator.
type CachingValidator struct {
	cache           map[string]compiled
	createValidator validatorFactory
	mutex           sync.RWMutex
}

// NewCachingValidator returns a new caching JSON schema validator.
func NewCachingValidator() *CachingValidator {
	return &CachingValidator{
		cache:           make(map[string]compiled),
		createValidator: newValidator,
	}
}

// Validate validates the given JSON document against the given schema.
func (c *CachingValidator) Validate(data interface{}, schemaID string, schema []byte) error {
	validator, err := c.get(schemaID, schema)
	if err != nil {
		return fmt.Errorf("get schema validator from cache: %w", err)
	}

	return validator.ValidateJSONSchema(data)
}

func (c *CachingValidator) get(schemaID string, schema []byte) (Validator, error) {
	digest := sha256.Sum256(schema)

	c.mutex.RLock()
	entry, ok := c.cache[schemaID]
	c.mutex.RUnlock()

	if ok && entry.digest == digest {
		return entry.validator, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if entry, ok = c.cache[schemaID]; ok && entry.digest == digest {
		return entry.validator, nil
	}

	var schemaDoc Document

	if err := json.Unmarshal(schema, &schemaDoc); err != nil {
		return nil, fmt.Errorf("unmarshal JSON schema: %w", err)
	}

	schemaDocID, err := SchemaID(schemaDoc)
	if err != nil {
		return nil, err
	}

	if schemaDocID != schemaID {
		return nil, fmt.Errorf("the value of field '$id' in JSON schema [%s] does not match schema ID [%s]",
			schemaDocID, schemaID)
	}

	schemaValidator, err := c.createValidator(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("create validator [%s]: %w", schemaID, err)
	}

	c.cache[schemaID] = compiled{digest: digest, validator: schemaValidator}

	logger.Debug("compiled JSON schema", log.WithURL(schemaID))

	return schemaValidator, nil
}

// SchemaID returns the $id of the schema document.
func SchemaID(schemaDoc Document) (string, error) {
	schemaIDObj, ok := schemaDoc["$id"]
	if !ok {
		return "", fmt.Errorf("field '$id' not found in JSON schema")
	}

	schemaDocID, ok := schemaIDObj.(string)
	if !ok {
		return "", fmt.Errorf("expecting the value of field '$id' in JSON schema to be a string type but was %s",
			reflect.TypeOf(schemaIDObj))
	}

	return schemaDocID, nil
}

func newValidator(schema Document) (Validator, error) {
	schemaValidator, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema: %w", err)
	}

	return &validator{schema: schemaValidator}, nil
}

type validator struct {
	schema *gojsonschema.Schema
}

func (v *validator) ValidateJSONSchema(data interface{}) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %w", ErrValidation, validationErrors(result.Errors()))
	}

	return nil
}

type validationErrors []gojsonschema.ResultError

func (e validationErrors) Error() string {
	msgs := make([]string, 0, len(e))

	for _, msg := range e {
		msgs = append(msgs, msg.String())
	}

	return fmt.Sprintf("[%s]", strings.Join(msgs, "; "))
}
