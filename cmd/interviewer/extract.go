package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Seis05640/ai-voice-interviewer/internal/nlp"
	"github.com/Seis05640/ai-voice-interviewer/internal/observability"
	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills, education and experience from a resume",
	Long:  "Run the resume extractors over a plain-text resume and print the structured profile as JSON.",
	RunE:  runExtract,
}

var (
	extractResumeFile string
	extractOutputFile string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractResumeFile, "resume", "r", "", "Path to resume text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted profile summary")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	resumeText, err := loadResumeText(extractResumeFile)
	if err != nil {
		return err
	}

	profile := types.ResumeData{
		Skills:     nlp.ExtractSkills(resumeText),
		Education:  nlp.ExtractEducation(resumeText),
		Experience: nlp.ExtractExperience(resumeText),
	}

	if extractVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResumeProfile(profile.Skills, profile.Education, profile.Experience)
	}

	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if extractOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
