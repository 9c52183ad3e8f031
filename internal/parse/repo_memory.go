package parse

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ParsesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Parse // userId -> parses
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Parse)}
}

// Create stores a parse for a user.
func (r *MemoryRepo) Create(ctx context.Context, p Parse) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.UserID] = append(r.data[p.UserID], p)
	return nil
}

// GetByParseID returns the newest parse with the given parse ID.
func (r *MemoryRepo) GetByParseID(ctx context.Context, userID, parseID string) (Parse, error) {
	if err := ctx.Err(); err != nil {
		return Parse{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	parses := r.data[userID]
	for i := len(parses) - 1; i >= 0; i-- {
		if parses[i].ParseID == parseID {
			return parses[i], nil
		}
	}
	return Parse{}, ErrNotFound
}

// ListByUser returns parses newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Parse, error) {
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
	userParses := r.data[userID]
	r.mu.RUnlock()

	if len(userParses) == 0 || offset >= len(userParses) {
		return []Parse{}, nil
	}

	parses := make([]Parse, len(userParses))
	copy(parses, userParses)
	sort.Slice(parses, func(i, j int) bool {
		return parses[i].CreatedAt.After(parses[j].CreatedAt)
	})

	end := len(parses)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return parses[offset:end], nil
}

var _ ParsesRepo = (*MemoryRepo)(nil)
