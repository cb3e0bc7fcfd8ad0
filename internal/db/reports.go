package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HiringReport is the persisted outcome of a completed interview session.
type HiringReport struct {
	ID             uuid.UUID `json:"id"`
	JobID          uuid.UUID `json:"job_id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	OverallScore   float64   `json:"overall_score"`
	Recommendation string    `json:"recommendation"`
	Summary        string    `json:"summary"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpsertReport records the outcome of a completed session. Re-running an
// interview for the same pair replaces the previous report.
func (db *DB) UpsertReport(ctx context.Context, jobID, candidateID uuid.UUID, overallScore float64, recommendation, summary string) (*HiringReport, error) {
	var rep HiringReport
	err := db.pool.QueryRow(ctx,
		`INSERT INTO reports (job_id, candidate_id, overall_score, recommendation, summary)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (job_id, candidate_id)
		 DO UPDATE SET overall_score = EXCLUDED.overall_score,
		               recommendation = EXCLUDED.recommendation,
		               summary = EXCLUDED.summary
		 RETURNING id, job_id, candidate_id, overall_score, recommendation, summary, created_at`,
		jobID, candidateID, overallScore, recommendation, summary,
	).Scan(&rep.ID, &rep.JobID, &rep.CandidateID, &rep.OverallScore, &rep.Recommendation, &rep.Summary, &rep.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert report: %w", err)
	}
	return &rep, nil
}

// GetReportByPair fetches the report for a job/candidate pair.
func (db *DB) GetReportByPair(ctx context.Context, jobID, candidateID uuid.UUID) (*HiringReport, error) {
	var rep HiringReport
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, candidate_id, overall_score, recommendation, summary, created_at
		 FROM reports WHERE job_id = $1 AND candidate_id = $2`,
		jobID, candidateID,
	).Scan(&rep.ID, &rep.JobID, &rep.CandidateID, &rep.OverallScore, &rep.Recommendation, &rep.Summary, &rep.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &rep, nil
}
