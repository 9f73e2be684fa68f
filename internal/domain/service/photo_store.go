package service

import "context"

// PhotoStore archives meal photos keyed by log identifier.
type PhotoStore interface {
	Save(ctx context.Context, logID string, contentType string, data []byte) error
	Close() error
}
