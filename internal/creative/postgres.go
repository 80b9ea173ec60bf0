package creative

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ignite/adserver/internal/domain"
)

// PostgresStore implements Store against PostgreSQL.
type PostgresStore struct{ db *sql.DB }

// NewPostgresStore creates a Postgres-backed creative record store.
func NewPostgresStore(db *sql.DB) *PostgresStore { return &PostgresStore{db: db} }

const recordColumns = `id, publisher_id, COALESCE(campaign,''), COALESCE(selector,''),
       COALESCE(legacy_target_id,''), kind, COALESCE(settings,'{}'), created_at`

func (s *PostgresStore) ListByPublisher(ctx context.Context, publisherID string) ([]domain.CreativeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM ad_creatives
		WHERE publisher_id = $1
	`, publisherID)
	if err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}
	defer rows.Close()

	var out []domain.CreativeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (*domain.CreativeRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM ad_creatives
		WHERE id = $1
	`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get creative: %w", err)
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one row and resolves the settings bag into the tagged
// union selected by kind. Unknown kinds carry frame settings (they render
// down the frame path).
func scanRecord(row rowScanner) (*domain.CreativeRecord, error) {
	var rec domain.CreativeRecord
	var settings []byte
	if err := row.Scan(
		&rec.ID, &rec.PublisherID, &rec.Campaign, &rec.Selector,
		&rec.LegacyTargetID, &rec.Kind, &settings, &rec.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan creative: %w", err)
	}

	switch rec.Kind {
	case domain.KindNative:
		var ns domain.NativeSettings
		if err := json.Unmarshal(settings, &ns); err != nil {
			return nil, fmt.Errorf("creative %s: native settings: %w", rec.ID, err)
		}
		rec.Native = &ns
	default:
		var fs domain.FrameSettings
		if err := json.Unmarshal(settings, &fs); err != nil {
			return nil, fmt.Errorf("creative %s: frame settings: %w", rec.ID, err)
		}
		rec.Frame = &fs
	}
	return &rec, nil
}
