package structures

import (
	"context"
	"time"
)

// Repo defines persistence operations for structures.
type Repo interface {
	Create(ctx context.Context, s Structure) error
	GetByID(ctx context.Context, id string) (Structure, error)
	ListByProject(ctx context.Context, ownerID, projectID string, limit, offset int) ([]Structure, error)
	MarkPublished(ctx context.Context, id, exportKey string, publishedAt time.Time) error
}
