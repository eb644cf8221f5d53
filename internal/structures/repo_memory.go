package structures

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Structure
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Structure),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, s Structure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[s.ID] = s
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Structure, error) {
	if err := ctx.Err(); err != nil {
		return Structure{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[id]
	if !ok {
		return Structure{}, ErrNotFound
	}
	return s, nil
}

// ListByProject returns the owner's structures for a project, newest first.
func (r *MemoryRepo) ListByProject(ctx context.Context, ownerID, projectID string, limit, offset int) ([]Structure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	var matched []Structure
	for _, s := range r.data {
		if s.OwnerID == ownerID && s.ProjectID == projectID {
			matched = append(matched, s)
		}
	}
	r.mu.RUnlock()

	if len(matched) == 0 || offset >= len(matched) {
		return []Structure{}, nil
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

func (r *MemoryRepo) MarkPublished(ctx context.Context, id, exportKey string, publishedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	s.Status = StatusPublished
	s.ExportKey = exportKey
	s.PublishedAt = &publishedAt
	r.data[id] = s
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
