// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// EstimateRequest is what the estimator receives for one meal.
type EstimateRequest struct {
	Description string // Free-text meal description.
	Image       []byte // Optional photo of the meal.
	ImageType   string // MIME type of Image, e.g. "image/jpeg".
	StrictJSON  bool   // Ask the model for a bare JSON object.
}

// Estimator turns a meal description into raw estimator text.
//
// The returned text is untrusted: it is expected to hold a JSON object but may
// be fenced, incomplete, or one of the ERROR_* sentinels. A non-nil error is
// treated exactly like a sentinel: the logging attempt is aborted.
type Estimator interface {
	Estimate(ctx context.Context, req *EstimateRequest) (string, error)
}
