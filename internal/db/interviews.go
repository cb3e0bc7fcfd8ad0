package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveSession inserts or updates an interview session's serialized state.
func (db *DB) SaveSession(ctx context.Context, sessionID, jobID, candidateID uuid.UUID, status string, state []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO interview_sessions (id, job_id, candidate_id, status, state)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id)
		 DO UPDATE SET status = EXCLUDED.status, state = EXCLUDED.state, updated_at = NOW()`,
		sessionID, jobID, candidateID, status, state)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// LoadSession returns a session's serialized state along with its job and
// candidate ids.
func (db *DB) LoadSession(ctx context.Context, sessionID uuid.UUID) (jobID, candidateID uuid.UUID, state []byte, err error) {
	err = db.pool.QueryRow(ctx,
		`SELECT job_id, candidate_id, state FROM interview_sessions WHERE id = $1`,
		sessionID,
	).Scan(&jobID, &candidateID, &state)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, uuid.Nil, nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	return jobID, candidateID, state, nil
}

// RecordMessage appends one transcript message to a session.
func (db *DB) RecordMessage(ctx context.Context, sessionID uuid.UUID, role, content string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO interview_messages (session_id, role, content) VALUES ($1, $2, $3)`,
		sessionID, role, content)
	if err != nil {
		return fmt.Errorf("failed to record message: %w", err)
	}
	return nil
}
