package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Seis05640/ai-voice-interviewer/internal/observability"
	"github.com/Seis05640/ai-voice-interviewer/internal/shortlist"
	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen [resume files...]",
	Short: "Screen multiple resumes against a job description",
	Long:  "Score every given resume file against one job description and print the ranked results.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScreen,
}

var (
	screenJobFile    string
	screenJobURL     string
	screenOutputFile string
	screenUseBrowser bool
	screenVerbose    bool
)

func init() {
	screenCmd.Flags().StringVarP(&screenJobFile, "job", "j", "", "Path to job description text file")
	screenCmd.Flags().StringVar(&screenJobURL, "job-url", "", "URL to fetch the job description from")
	screenCmd.Flags().StringVarP(&screenOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	screenCmd.Flags().BoolVar(&screenUseBrowser, "use-browser", false, "Use headless browser for SPA job pages")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print a formatted ranking table")

	rootCmd.AddCommand(screenCmd)
}

// screenRow is one ranked entry in the CLI screening output.
type screenRow struct {
	Resume    string  `json:"resume"`
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

func runScreen(cmd *cobra.Command, args []string) error {
	jobText, err := loadJobText(cmd.Context(), screenJobFile, screenJobURL, screenUseBrowser)
	if err != nil {
		return err
	}

	candidates := make([]types.Candidate, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read resume file %s: %w", path, err)
		}
		candidates = append(candidates, types.Candidate{
			Name:       filepath.Base(path),
			ResumeText: string(data),
		})
	}

	scored, err := shortlist.ScreenCandidates(cmd.Context(), jobText, candidates)
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}

	rows := make([]screenRow, 0, len(scored))
	tableRows := make([]observability.ScreeningRow, 0, len(scored))
	for _, cs := range scored {
		rows = append(rows, screenRow{
			Resume:    cs.Candidate.Name,
			Score:     cs.Score,
			Rationale: cs.Rationale,
		})
		tableRows = append(tableRows, observability.ScreeningRow{
			Name:  cs.Candidate.Name,
			Score: cs.Score,
		})
	}

	if screenVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintScreeningTable(tableRows)
	}

	jsonBytes, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if screenOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(screenOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
