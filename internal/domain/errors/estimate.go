package errors

import (
	"fmt"
)

// EstimateErrorKind classifies why an estimator response was rejected.
type EstimateErrorKind string

const (
	KindEstimatorUnavailable EstimateErrorKind = "estimator_unavailable"
	KindMalformedResponse    EstimateErrorKind = "malformed_response"
	KindIncompleteResponse   EstimateErrorKind = "incomplete_response"
	KindInvalidNutrientValue EstimateErrorKind = "invalid_nutrient_value"
)

// EstimateError is returned when the estimator output cannot be turned into a
// loggable record. Raw always holds the estimator's original text so operators
// can tune prompts against it.
type EstimateError struct {
	Kind   EstimateErrorKind
	Key    string // offending key for incomplete/invalid responses
	Reason string
	Raw    string
}

// NewEstimateError creates an EstimateError.
func NewEstimateError(kind EstimateErrorKind, key, reason, raw string) *EstimateError {
	return &EstimateError{
		Kind:   kind,
		Key:    key,
		Reason: reason,
		Raw:    raw,
	}
}

// Error implements the error interface
func (e *EstimateError) Error() string {
	switch {
	case e.Key != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Key, e.Reason)
	case e.Reason != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	default:
		return string(e.Kind)
	}
}

// Is matches the predefined BaseError of the same kind.
func (e *EstimateError) Is(target error) bool {
	return target == e.base()
}

// HTTPCode returns the HTTP status code
func (e *EstimateError) HTTPCode() int {
	return e.base().HTTPCode()
}

// ErrorCode returns the business error code
func (e *EstimateError) ErrorCode() string {
	return e.base().ErrorCode()
}

// Message returns the user-friendly error message
func (e *EstimateError) Message() string {
	if e.Key != "" {
		return fmt.Sprintf("%s (%s)", e.base().Message(), e.Key)
	}

	return e.base().Message()
}

// Details returns the raw estimator output, falling back to the reason.
func (e *EstimateError) Details() string {
	if e.Raw != "" {
		return e.Raw
	}

	return e.Reason
}

func (e *EstimateError) base() *BaseError {
	switch e.Kind {
	case KindEstimatorUnavailable:
		return ErrEstimatorUnavailable
	case KindMalformedResponse:
		return ErrMalformedResponse
	case KindIncompleteResponse:
		return ErrIncompleteResponse
	default:
		return ErrInvalidNutrientValue
	}
}
