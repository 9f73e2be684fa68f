package nutrition

import (
	"encoding/json"
	"io"
	"regexp"
	"strconv"
	"strings"

	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/errors"
)

// MealNameKey is the estimator key holding the meal label.
const MealNameKey = "meal_name"

// Sentinels returned by the estimator collaborator in place of a response.
const (
	SentinelNoKey        = "ERROR_NO_KEY"
	SentinelErrorDetails = "ERROR_DETAILS:"
	SentinelError        = "ERROR:"
)

var (
	leadingFence  = regexp.MustCompile("^```[A-Za-z]*[ \t]*\r?\n?")
	trailingFence = regexp.MustCompile("\r?\n?[ \t]*```$")
)

// ParseEstimate turns raw estimator output into a validated MealEstimate.
// Every failure is a *domainerrors.EstimateError carrying the raw text.
func ParseEstimate(raw string) (*entity.MealEstimate, error) {
	trimmed := strings.TrimSpace(raw)

	if reason, ok := sentinelReason(trimmed); ok {
		return nil, domainerrors.NewEstimateError(domainerrors.KindEstimatorUnavailable, "", reason, raw)
	}

	body := StripFences(trimmed)

	decoder := json.NewDecoder(strings.NewReader(body))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil, domainerrors.NewEstimateError(domainerrors.KindMalformedResponse, "", err.Error(), raw)
	}
	if fields == nil {
		return nil, domainerrors.NewEstimateError(domainerrors.KindMalformedResponse, "", "response is not an object", raw)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, domainerrors.NewEstimateError(domainerrors.KindMalformedResponse, "", "trailing content after object", raw)
	}

	if _, ok := fields[MealNameKey]; !ok {
		return nil, missingKey(MealNameKey, raw)
	}
	for _, n := range entity.AllNutrients {
		if _, ok := fields[n.String()]; !ok {
			return nil, missingKey(n.String(), raw)
		}
	}

	name, ok := fields[MealNameKey].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, domainerrors.NewEstimateError(domainerrors.KindInvalidNutrientValue, MealNameKey, "meal name must be a non-empty string", raw)
	}

	estimate := &entity.MealEstimate{MealName: strings.TrimSpace(name)}
	for _, n := range entity.AllNutrients {
		v, err := coerceMagnitude(fields[n.String()])
		if err != nil {
			return nil, domainerrors.NewEstimateError(domainerrors.KindInvalidNutrientValue, n.String(), err.Error(), raw)
		}
		estimate.Nutrients.Set(n, v)
	}

	return estimate, nil
}

// StripFences removes a leading ``` or ```json marker and a trailing ``` marker.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = leadingFence.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

func sentinelReason(s string) (string, bool) {
	switch {
	case s == "":
		return "empty response", true
	case s == SentinelNoKey:
		return "no estimator credential configured", true
	case strings.HasPrefix(s, SentinelErrorDetails):
		return strings.TrimSpace(strings.TrimPrefix(s, SentinelErrorDetails)), true
	case strings.HasPrefix(s, SentinelError):
		return strings.TrimSpace(strings.TrimPrefix(s, SentinelError)), true
	default:
		return "", false
	}
}

func missingKey(key, raw string) error {
	return domainerrors.NewEstimateError(domainerrors.KindIncompleteResponse, key, "key is missing", raw)
}

func coerceMagnitude(value any) (float64, error) {
	var v float64

	switch typed := value.(type) {
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return 0, errors.Errorf("not a number: %s", typed.String())
		}
		v = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, errors.Errorf("not a number: %q", typed)
		}
		v = f
	default:
		return 0, errors.New("not a number")
	}

	if !isMagnitude(v) {
		return 0, errors.New("must be a finite non-negative number")
	}

	return positiveZero(v), nil
}
