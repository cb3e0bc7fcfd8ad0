package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Seis05640/ai-voice-interviewer/internal/observability"
	"github.com/Seis05640/ai-voice-interviewer/internal/scoring"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Compute the weighted match score between one resume and one job description and print the result as JSON.",
	RunE:  runMatch,
}

var (
	matchJobFile    string
	matchJobURL     string
	matchResumeFile string
	matchOutputFile string
	matchUseBrowser bool
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description text file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job description from")
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume text file (required)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Use headless browser for SPA job pages")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted score summary")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	jobText, err := loadJobText(cmd.Context(), matchJobFile, matchJobURL, matchUseBrowser)
	if err != nil {
		return err
	}
	resumeText, err := loadResumeText(matchResumeFile)
	if err != nil {
		return err
	}

	score := scoring.CalculateMatchScore(jobText, resumeText)

	if matchVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatchScore(&score)
	}

	jsonBytes, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if matchOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(matchOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
