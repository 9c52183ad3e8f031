package parse

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements ParsesRepo using Postgres. The full result is stored as
// JSONB alongside the queryable columns.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new parse.
func (r *PGRepo) Create(ctx context.Context, p Parse) error {
	const query = `
INSERT INTO parses (
    id,
    user_id,
    document_id,
    parse_id,
    parse_method,
    overall_confidence,
    result,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	payload, err := json.Marshal(p.Result)
	if err != nil {
		return fmt.Errorf("marshal parse result: %w", err)
	}

	var documentID sql.NullString
	if p.DocumentID != "" {
		documentID = sql.NullString{String: p.DocumentID, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		p.ID,
		p.UserID,
		documentID,
		p.ParseID,
		p.Method,
		p.Overall,
		payload,
		p.CreatedAt,
	)
	return err
}

// GetByParseID returns the newest parse with the given parse ID for a user.
func (r *PGRepo) GetByParseID(ctx context.Context, userID, parseID string) (Parse, error) {
	const query = `
SELECT id, user_id, document_id, parse_id, parse_method, overall_confidence, result, created_at
FROM parses
WHERE user_id = $1 AND parse_id = $2
ORDER BY created_at DESC
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, userID, parseID)
	p, err := scanParse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Parse{}, ErrNotFound
		}
		return Parse{}, err
	}
	return p, nil
}

// ListByUser lists parses ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Parse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, document_id, parse_id, parse_method, overall_confidence, result, created_at
FROM parses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Parse
	for rows.Next() {
		p, err := scanParse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParse(row rowScanner) (Parse, error) {
	var p Parse
	var documentID sql.NullString
	var payload []byte
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&documentID,
		&p.ParseID,
		&p.Method,
		&p.Overall,
		&payload,
		&p.CreatedAt,
	); err != nil {
		return Parse{}, err
	}
	if documentID.Valid {
		p.DocumentID = documentID.String
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &p.Result); err != nil {
			return Parse{}, fmt.Errorf("unmarshal parse result: %w", err)
		}
	}
	return p, nil
}

var _ ParsesRepo = (*PGRepo)(nil)
