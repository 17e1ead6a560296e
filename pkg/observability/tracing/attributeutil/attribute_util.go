/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"encoding/json"
	"strconv"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const redacted = "[REDACTED]"

// JSON returns an attribute holding the value marshaled to JSON. Parts of the value are masked
// with WithRedacted.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	for _, path := range op.redacted {
		if gjson.GetBytes(b, path).Exists() {
			b, _ = sjson.SetBytes(b, path, redacted)
		}
	}

	return attribute.KeyValue{
		Key:   attribute.Key(key),
		Value: attribute.StringValue(string(b)),
	}
}

// IDs returns a string slice attribute with at most limit ids. A longer list is cut and ends with
// the number of ids left out.
func IDs(key string, ids []string, limit int) attribute.KeyValue {
	if limit <= 0 || len(ids) <= limit {
		return attribute.StringSlice(key, ids)
	}

	out := append(lo.Subset(ids, 0, uint(limit)), "+"+strconv.Itoa(len(ids)-limit))

	return attribute.StringSlice(key, out)
}

type options struct {
	redacted []string
}

type Opt func(*options)

// WithRedacted masks the value at the given gjson path (https://github.com/tidwall/gjson/blob/master/SYNTAX.md).
func WithRedacted(path string) Opt {
	return func(o *options) {
		o.redacted = append(o.redacted, path)
	}
}
