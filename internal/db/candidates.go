package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// CreateCandidate inserts a new candidate and returns it.
func (db *DB) CreateCandidate(ctx context.Context, name, email, resumeText string) (*types.Candidate, error) {
	var (
		cand      types.Candidate
		nullEmail sql.NullString
	)
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, resume_text)
		 VALUES ($1, NULLIF($2, ''), $3)
		 RETURNING id, name, email, resume_text, created_at`,
		name, email, resumeText,
	).Scan(&cand.ID, &cand.Name, &nullEmail, &cand.ResumeText, &cand.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	cand.Email = nullEmail.String
	return &cand, nil
}

// GetCandidate fetches a candidate by id.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	var (
		cand      types.Candidate
		nullEmail sql.NullString
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, resume_text, created_at FROM candidates WHERE id = $1`,
		id,
	).Scan(&cand.ID, &cand.Name, &nullEmail, &cand.ResumeText, &cand.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	cand.Email = nullEmail.String
	return &cand, nil
}

// ListCandidates returns all candidates, newest first.
func (db *DB) ListCandidates(ctx context.Context) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, resume_text, created_at FROM candidates ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []types.Candidate{}
	for rows.Next() {
		var (
			cand      types.Candidate
			nullEmail sql.NullString
		)
		if err := rows.Scan(&cand.ID, &cand.Name, &nullEmail, &cand.ResumeText, &cand.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		cand.Email = nullEmail.String
		candidates = append(candidates, cand)
	}
	return candidates, rows.Err()
}
