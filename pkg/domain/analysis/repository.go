package analysis

import (
	"context"
)

// Repository persists analysis results. The pipeline accepts results as
// plain records and never owns persistence; storage is injected.
type Repository interface {
	Save(ctx context.Context, result *StoredResult) error
	Get(ctx context.Context, id string) (*StoredResult, error)
}
