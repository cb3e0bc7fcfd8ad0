package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// CreateJob inserts a new job posting and returns it.
func (db *DB) CreateJob(ctx context.Context, title, description string) (*types.Job, error) {
	var job types.Job
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description)
		 VALUES ($1, $2)
		 RETURNING id, title, description, created_at`,
		title, description,
	).Scan(&job.ID, &job.Title, &job.Description, &job.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &job, nil
}

// GetJob fetches a job by id.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	var job types.Job
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, created_at FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Description, &job.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// ListJobs returns all jobs, newest first.
func (db *DB) ListJobs(ctx context.Context) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, created_at FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []types.Job{}
	for rows.Next() {
		var job types.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
