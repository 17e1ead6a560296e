/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine readable code returned in error responses.
type ErrorCode string

const (
	SystemError            ErrorCode = "system-error"
	Unauthorized           ErrorCode = "unauthorized"
	Forbidden              ErrorCode = "forbidden"
	InvalidValue           ErrorCode = "invalid-value"
	BadRequest             ErrorCode = "bad-request"
	DoesntExist            ErrorCode = "doesnt-exist"
	InvalidStateTransition ErrorCode = "invalid-state-transition"

	TenantNotFound      ErrorCode = "tenant_not_found"
	OfferNotFound       ErrorCode = "offer_not_found"
	AlreadyRejected     ErrorCode = "already_rejected"
	DuplicateOffer      ErrorCode = "duplicate_offer"
	UpstreamUnavailable ErrorCode = "upstream_unavailable"
	OfferIDUndefined    ErrorCode = "offer_id_undefined"
	IssuingNotPermitted ErrorCode = "issuing_not_permitted"
	KeyNotFound         ErrorCode = "key_not_found"

	InvalidRequest    ErrorCode = "invalid_request"
	BadProof          ErrorCode = "bad_proof"
	InvalidKID        ErrorCode = "invalid_kid"
	BadProofSignature ErrorCode = "bad_proof_signature"
	BadAudience       ErrorCode = "bad_audience"
	ChallengeMismatch ErrorCode = "challenge_mismatch"
	ChallengeExpired  ErrorCode = "challenge_expired"
)

// Name returns the code as sent on the wire.
func (c ErrorCode) Name() string {
	return string(c)
}

func (c ErrorCode) httpStatus() int {
	switch c {
	case InvalidValue, BadRequest, InvalidRequest:
		return http.StatusBadRequest
	case Unauthorized, BadProof, InvalidKID, BadProofSignature, BadAudience, ChallengeMismatch, ChallengeExpired:
		return http.StatusUnauthorized
	case Forbidden, IssuingNotPermitted:
		return http.StatusForbidden
	case DoesntExist, TenantNotFound, OfferNotFound:
		return http.StatusNotFound
	case AlreadyRejected, DuplicateOffer, InvalidStateTransition:
		return http.StatusConflict
	case UpstreamUnavailable, OfferIDUndefined:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrDataNotFound   = errors.New("data not found")
	ErrTenantNotFound = errors.New("tenant doesn't exist")
)

// CustomError is an error carrying an ErrorCode and the context it was raised in.
type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	Component       Component
	FailedOperation string
	UpstreamCode    string
	Err             error
}

// NewSystemError reports an unexpected failure of a component operation.
func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

// NewValidationError reports an invalid request value.
func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

// NewUnauthorizedError reports a missing or invalid credential.
func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{
		Code: Unauthorized,
		Err:  err,
	}
}

// NewCustomError creates an error with the given code.
func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

// NewUpstreamError reports a failure surfaced by a remote collaborator, preserving its code.
func NewUpstreamError(code ErrorCode, upstreamCode string, err error) *CustomError {
	return &CustomError{
		Code:         code,
		UpstreamCode: upstreamCode,
		Err:          err,
	}
}

func (e *CustomError) Error() string {
	if e.IncorrectValue != "" {
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	}

	if e.Component != "" || e.FailedOperation != "" {
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.FailedOperation, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg returns the http status and the response body for the error.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	resp := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}

	if e.IncorrectValue != "" {
		resp["incorrectValue"] = e.IncorrectValue
	}

	if e.UpstreamCode != "" {
		resp["upstreamCode"] = e.UpstreamCode
	}

	return e.Code.httpStatus(), resp
}

// GetErrorDetails returns the message, code and component of a wrapped CustomError.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError

	if errors.As(err, &customErr) {
		return customErr.Err.Error(), customErr.Code.Name(), customErr.Component
	}

	return err.Error(), "", ""
}

// IsCode reports whether err wraps a CustomError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var customErr *CustomError

	return errors.As(err, &customErr) && customErr.Code == code
}
