// Package quote is the PostgreSQL persistence layer for quote records.
package quote

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
	quoteservice "github.com/mkt-tools/quote-forge/pkg/services/quote"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Store{db: db}, nil
}

// Init creates the quotes table if it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS quotes (
			id          UUID PRIMARY KEY,
			company     TEXT NOT NULL,
			email       TEXT NOT NULL,
			submission  JSONB NOT NULL,
			calculation JSONB NOT NULL,
			lead_score  INT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL,
			expires_at  TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create quotes table: %w", err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, rec domain.QuoteRecord) error {
	submission, err := json.Marshal(rec.Submission)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}
	calculation, err := json.Marshal(rec.Calculation)
	if err != nil {
		return fmt.Errorf("marshal calculation: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quotes (id, company, email, submission, calculation, lead_score, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rec.ID, rec.Submission.Business.CompanyName, rec.Submission.Business.Email,
		submission, calculation, rec.LeadScore, rec.CreatedAt, rec.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.QuoteRecord, error) {
	var (
		rec         domain.QuoteRecord
		submission  []byte
		calculation []byte
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, submission, calculation, lead_score, created_at, expires_at
		FROM quotes
		WHERE id = $1
	`, id).Scan(&rec.ID, &submission, &calculation, &rec.LeadScore, &rec.CreatedAt, &rec.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, quoteservice.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	if err := json.Unmarshal(submission, &rec.Submission); err != nil {
		return nil, fmt.Errorf("unmarshal submission: %w", err)
	}
	if err := json.Unmarshal(calculation, &rec.Calculation); err != nil {
		return nil, fmt.Errorf("unmarshal calculation: %w", err)
	}
	return &rec, nil
}
