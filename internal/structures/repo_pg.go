package structures

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, project_id, owner_id, business_type, criteria, blocks, alternatives, profession_blocks, mobile, status, export_key, published_at, created_at`

// Create inserts a new structure. JSON columns are encoded here so the engine
// types stay free of database concerns.
func (r *PGRepo) Create(ctx context.Context, s Structure) error {
	const query = `
INSERT INTO structures (
    id,
    project_id,
    owner_id,
    business_type,
    criteria,
    blocks,
    alternatives,
    profession_blocks,
    mobile,
    status,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	criteria, err := json.Marshal(s.Criteria)
	if err != nil {
		return fmt.Errorf("encode criteria: %w", err)
	}
	blockList, err := marshalList(s.Blocks)
	if err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	alternatives, err := marshalList(s.Alternatives)
	if err != nil {
		return fmt.Errorf("encode alternatives: %w", err)
	}
	professionBlocks, err := marshalList(s.ProfessionBlocks)
	if err != nil {
		return fmt.Errorf("encode profession blocks: %w", err)
	}

	status := s.Status
	if status == "" {
		status = StatusDraft
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		s.ID,
		s.ProjectID,
		s.OwnerID,
		s.BusinessType,
		criteria,
		blockList,
		alternatives,
		professionBlocks,
		s.Mobile,
		string(status),
		s.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Structure, error) {
	query := `SELECT ` + selectColumns + `
FROM structures
WHERE id = $1
LIMIT 1`
	s, err := scanStructure(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Structure{}, ErrNotFound
		}
		return Structure{}, err
	}
	return s, nil
}

// ListByProject lists an owner's structures for a project ordered newest-first.
func (r *PGRepo) ListByProject(ctx context.Context, ownerID, projectID string, limit, offset int) ([]Structure, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + selectColumns + `
FROM structures
WHERE owner_id = $1 AND project_id = $2
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4`

	rows, err := r.DB.QueryContext(ctx, query, ownerID, projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Structure{}
	for rows.Next() {
		s, err := scanStructure(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) MarkPublished(ctx context.Context, id, exportKey string, publishedAt time.Time) error {
	const query = `
UPDATE structures
SET status = $1, export_key = $2, published_at = $3
WHERE id = $4`
	res, err := r.DB.ExecContext(ctx, query, string(StatusPublished), exportKey, publishedAt, id)
	if err != nil {
		return err
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStructure(row rowScanner) (Structure, error) {
	var s Structure
	var criteria, blockList, alternatives, professionBlocks []byte
	var status string
	var exportKey sql.NullString
	var publishedAt sql.NullTime
	if err := row.Scan(
		&s.ID,
		&s.ProjectID,
		&s.OwnerID,
		&s.BusinessType,
		&criteria,
		&blockList,
		&alternatives,
		&professionBlocks,
		&s.Mobile,
		&status,
		&exportKey,
		&publishedAt,
		&s.CreatedAt,
	); err != nil {
		return Structure{}, err
	}
	s.Status = Status(status)
	if exportKey.Valid {
		s.ExportKey = exportKey.String
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		s.PublishedAt = &t
	}
	if err := unmarshalColumn(criteria, &s.Criteria); err != nil {
		return Structure{}, fmt.Errorf("decode criteria: %w", err)
	}
	if err := unmarshalColumn(blockList, &s.Blocks); err != nil {
		return Structure{}, fmt.Errorf("decode blocks: %w", err)
	}
	if err := unmarshalColumn(alternatives, &s.Alternatives); err != nil {
		return Structure{}, fmt.Errorf("decode alternatives: %w", err)
	}
	if err := unmarshalColumn(professionBlocks, &s.ProfessionBlocks); err != nil {
		return Structure{}, fmt.Errorf("decode profession blocks: %w", err)
	}
	return s, nil
}

// marshalList encodes a nil slice as [] to satisfy the NOT NULL JSONB columns.
func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(items)
}

func unmarshalColumn(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

var _ Repo = (*PGRepo)(nil)
