package shortlist

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// CandidateScore is one screening row before persistence.
type CandidateScore struct {
	Candidate types.Candidate
	Score     float64
	Rationale string
}

// ScreenCandidates scores every candidate against the job description
// concurrently and returns the rows sorted by descending score. Candidates
// share no mutable state, so each scoring call runs in its own goroutine.
func ScreenCandidates(ctx context.Context, jobDescription string, candidates []types.Candidate) ([]CandidateScore, error) {
	results := make([]CandidateScore, len(candidates))

	g, _ := errgroup.WithContext(ctx)
	for i, c := range candidates {
		g.Go(func() error {
			results[i] = CandidateScore{
				Candidate: c,
				Score:     TokenOverlapScore(jobDescription, c.ResumeText),
				Rationale: Rationale(jobDescription, c.ResumeText),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}
