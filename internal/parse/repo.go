package parse

import "context"

// ParsesRepo defines persistence operations for parse results.
type ParsesRepo interface {
	Create(ctx context.Context, p Parse) error
	GetByParseID(ctx context.Context, userID, parseID string) (Parse, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Parse, error)
}
