package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the aggregation pipeline. Callers match them with
// errors.Is; the structured wrappers below add the context partial results
// need (which oracle, which airport, which leg).
var (
	// ErrInvalidRequest indicates the request failed boundary validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCredential indicates no bearer token could be obtained.
	// Fatal to the whole request: no token, no search.
	ErrCredential = errors.New("credential unavailable")

	// ErrAmbiguousCode indicates an airport or city code could not be
	// resolved against the directory. Fatal to trip classification; callers
	// may fall back to treating the trip as domestic or re-prompt.
	ErrAmbiguousCode = errors.New("unresolvable location code")

	// ErrMalformedOffer indicates a single offer in a batch was unparsable.
	// The offer is dropped and the batch continues.
	ErrMalformedOffer = errors.New("malformed offer")

	// ErrOracleUnavailable indicates an external fetch or lookup failed or
	// timed out. The failed call contributes zero results and aggregation
	// continues with whatever succeeded.
	ErrOracleUnavailable = errors.New("oracle unavailable")
)

// CredentialError wraps a failed token acquisition.
type CredentialError struct {
	Reason string
	Err    error
}

func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("credential unavailable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("credential unavailable: %s", e.Reason)
}

func (e *CredentialError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrCredential
}

// Is lets errors.Is(err, ErrCredential) match regardless of the wrapped cause.
func (e *CredentialError) Is(target error) bool {
	return target == ErrCredential
}

// NewCredentialError creates a CredentialError with the given reason.
func NewCredentialError(reason string, err error) *CredentialError {
	return &CredentialError{Reason: reason, Err: err}
}

// AmbiguousCodeError reports which code could not be resolved.
type AmbiguousCodeError struct {
	Code string
}

func (e *AmbiguousCodeError) Error() string {
	return fmt.Sprintf("unresolvable location code %q", e.Code)
}

func (e *AmbiguousCodeError) Is(target error) bool {
	return target == ErrAmbiguousCode
}

// NewAmbiguousCodeError creates an AmbiguousCodeError for the given code.
func NewAmbiguousCodeError(code string) *AmbiguousCodeError {
	return &AmbiguousCodeError{Code: code}
}

// MalformedOfferError reports which field of which offer was missing.
type MalformedOfferError struct {
	OfferID string
	Field   string
}

func (e *MalformedOfferError) Error() string {
	if e.OfferID == "" {
		return fmt.Sprintf("malformed offer: missing %s", e.Field)
	}
	return fmt.Sprintf("malformed offer %s: missing %s", e.OfferID, e.Field)
}

func (e *MalformedOfferError) Is(target error) bool {
	return target == ErrMalformedOffer
}

// NewMalformedOfferError creates a MalformedOfferError for the given offer
// and missing field.
func NewMalformedOfferError(offerID, field string) *MalformedOfferError {
	return &MalformedOfferError{OfferID: offerID, Field: field}
}

// OracleError reports a failed call to an external oracle along with enough
// context to explain a partial result.
type OracleError struct {
	// Oracle names the external service ("offers", "locations", "directions")
	Oracle string

	// Context names what was being looked up (airport code, city, leg)
	Context string

	Err error
}

func (e *OracleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s oracle failed for %s: %v", e.Oracle, e.Context, e.Err)
	}
	return fmt.Sprintf("%s oracle failed for %s", e.Oracle, e.Context)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}

func (e *OracleError) Is(target error) bool {
	return target == ErrOracleUnavailable
}

// NewOracleError creates an OracleError for the given oracle and context.
func NewOracleError(oracle, context string, err error) *OracleError {
	return &OracleError{Oracle: oracle, Context: context, Err: err}
}
