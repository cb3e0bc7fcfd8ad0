package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Seis05640/ai-voice-interviewer/internal/fetch"
)

// loadJobText reads the job description from a local file or fetches it from
// a URL. Exactly one of jobPath/jobURL must be set.
func loadJobText(ctx context.Context, jobPath, jobURL string, useBrowser bool) (string, error) {
	if jobPath != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	if jobPath != "" {
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	}

	if jobURL != "" {
		opts := fetch.DefaultOptions()
		opts.UseBrowser = useBrowser
		result, err := fetch.URL(ctx, jobURL, opts)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return result.Text, nil
	}

	return "", fmt.Errorf("either --job or --job-url is required")
}

// loadResumeText reads resume text from a local file.
func loadResumeText(resumePath string) (string, error) {
	if resumePath == "" {
		return "", fmt.Errorf("--resume is required")
	}
	data, err := os.ReadFile(resumePath)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return string(data), nil
}
