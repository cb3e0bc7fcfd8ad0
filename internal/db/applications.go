package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// Application statuses.
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
)

// UpsertApplication records (or refreshes) a screening result for a
// job/candidate pair. Re-screening overwrites the previous score.
func (db *DB) UpsertApplication(ctx context.Context, jobID, candidateID uuid.UUID, status string, score float64, rationale string) (*types.ScreeningResult, error) {
	var res types.ScreeningResult
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, candidate_id, status, score, rationale)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (job_id, candidate_id)
		 DO UPDATE SET status = EXCLUDED.status, score = EXCLUDED.score, rationale = EXCLUDED.rationale
		 RETURNING id, job_id, candidate_id, score, rationale, status`,
		jobID, candidateID, status, score, rationale,
	).Scan(&res.ApplicationID, &res.JobID, &res.CandidateID, &res.Score, &res.Rationale, &res.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert application: %w", err)
	}
	return &res, nil
}

// ListApplicationsByJob returns screening results for a job, best score first.
func (db *DB) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]types.ScreeningResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_id, candidate_id, score, rationale, status
		 FROM applications WHERE job_id = $1
		 ORDER BY score DESC, created_at ASC`,
		jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	results := []types.ScreeningResult{}
	for rows.Next() {
		var res types.ScreeningResult
		if err := rows.Scan(&res.ApplicationID, &res.JobID, &res.CandidateID, &res.Score, &res.Rationale, &res.Status); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
