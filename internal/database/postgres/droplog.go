package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/droplog"
)

var (
	_ droplog.Repository = (*DropLogRepository)(nil)
	_ droplog.Reader     = (*DropLogRepository)(nil)
)

var dropLogColumns = []string{
	"item_uid", "box_kind", "box_id", "character_id", "item_id", "rarity", "amount", "request_id", "created_at",
}

// DropLogRepository stores drop audit records in PostgreSQL
type DropLogRepository struct {
	db *pgxpool.Pool
}

// NewDropLogRepository creates a new PostgreSQL drop log repository
func NewDropLogRepository(db *pgxpool.Pool) *DropLogRepository {
	return &DropLogRepository{db: db}
}

// InsertDrops bulk-inserts records with COPY
func (r *DropLogRepository) InsertDrops(ctx context.Context, records []domain.DropRecord) error {
	if len(records) == 0 {
		return nil
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{TableDropLog},
		dropLogColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			var requestID *string
			if rec.RequestID != "" {
				requestID = &rec.RequestID
			}
			return []any{
				rec.ItemUID, string(rec.BoxKind), rec.BoxID, rec.CharacterID,
				rec.ItemID, rec.Rarity, rec.Amount, requestID, rec.CreatedAt,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCopyDrops, err)
	}
	return nil
}

// ListDrops returns the most recent records for a character, newest first
func (r *DropLogRepository) ListDrops(ctx context.Context, characterID int64, limit int) ([]domain.DropRecord, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	rows, err := r.db.Query(ctx, QueryListDropsByCharacter, characterID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDrops, err)
	}
	defer rows.Close()

	records := make([]domain.DropRecord, 0, limit)
	for rows.Next() {
		var rec domain.DropRecord
		var kind string
		if err := rows.Scan(&rec.ItemUID, &kind, &rec.BoxID, &rec.CharacterID, &rec.ItemID,
			&rec.Rarity, &rec.Amount, &rec.RequestID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanDrop, err)
		}
		rec.BoxKind = domain.BoxKind(kind)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDrops, err)
	}
	return records, nil
}
