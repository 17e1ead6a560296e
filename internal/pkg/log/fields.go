/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldUserLogLevel = "userLogLevel"
	FieldTenantID     = "tenantId"
	FieldExchangeID   = "exchangeId"
	FieldOfferID      = "offerId"
	FieldState        = "state"
	FieldService      = "service"
	FieldHTTPStatus   = "httpStatus"
	FieldURL          = "url"
	FieldTopic        = "topic"
	FieldEvent        = "event"
	FieldDuration     = "duration"
	FieldCount        = "count"
	FieldKeyPurpose   = "keyPurpose"
)

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}

// WithError sets the error field.
func WithError(err error) zap.Field {
	return zap.Error(err)
}

// WithUserLogLevel sets the user log level field.
func WithUserLogLevel(userLogLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, userLogLevel)
}

// WithTenantID sets the tenant id field.
func WithTenantID(id string) zap.Field {
	return zap.String(FieldTenantID, id)
}

// WithExchangeID sets the exchange id field.
func WithExchangeID(id string) zap.Field {
	return zap.String(FieldExchangeID, id)
}

// WithOfferID sets the offer id field.
func WithOfferID(id string) zap.Field {
	return zap.String(FieldOfferID, id)
}

// WithState sets the exchange state field.
func WithState(state string) zap.Field {
	return zap.String(FieldState, state)
}

// WithService sets the service field.
func WithService(name string) zap.Field {
	return zap.String(FieldService, name)
}

// WithHTTPStatus sets the http-status field.
func WithHTTPStatus(value int) zap.Field {
	return zap.Int(FieldHTTPStatus, value)
}

// WithURL sets the url field.
func WithURL(url string) zap.Field {
	return zap.String(FieldURL, url)
}

// WithTopic sets the topic field.
func WithTopic(value string) zap.Field {
	return zap.String(FieldTopic, value)
}

// WithEvent sets the event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithDuration sets the duration field.
func WithDuration(value time.Duration) zap.Field {
	return zap.Duration(FieldDuration, value)
}

// WithCount sets the count field.
func WithCount(value int) zap.Field {
	return zap.Int(FieldCount, value)
}

// WithKeyPurpose sets the key purpose field.
func WithKeyPurpose(purpose string) zap.Field {
	return zap.String(FieldKeyPurpose, purpose)
}
