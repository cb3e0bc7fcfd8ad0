package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Seis05640/ai-voice-interviewer/internal/interview"
	"github.com/Seis05640/ai-voice-interviewer/internal/observability"
	"github.com/Seis05640/ai-voice-interviewer/internal/schemas"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a deterministic interview plan",
	Long:  "Plan an ordered interview question list from a job description and optional resume, validating the output against the interview_plan schema.",
	RunE:  runPlan,
}

var (
	planJobFile      string
	planJobURL       string
	planResumeFile   string
	planOutputFile   string
	planMaxQuestions int
	planUseBrowser   bool
	planVerbose      bool
)

func init() {
	planCmd.Flags().StringVarP(&planJobFile, "job", "j", "", "Path to job description text file")
	planCmd.Flags().StringVar(&planJobURL, "job-url", "", "URL to fetch the job description from")
	planCmd.Flags().StringVarP(&planResumeFile, "resume", "r", "", "Path to resume text file (optional)")
	planCmd.Flags().StringVarP(&planOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	planCmd.Flags().IntVarP(&planMaxQuestions, "max-questions", "n", 5, "Maximum number of questions")
	planCmd.Flags().BoolVar(&planUseBrowser, "use-browser", false, "Use headless browser for SPA job pages")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print the plan as a formatted list")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	jobText, err := loadJobText(cmd.Context(), planJobFile, planJobURL, planUseBrowser)
	if err != nil {
		return err
	}

	resumeText := ""
	if planResumeFile != "" {
		resumeText, err = loadResumeText(planResumeFile)
		if err != nil {
			return err
		}
	}

	questions := interview.BuildInterviewPlanWithResume(jobText, resumeText, planMaxQuestions)

	if planVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintInterviewPlan(questions)
	}

	planJSON, err := interview.PlanToJSON(questions)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	// Validate against schema (if schema file exists)
	if schemaPath := schemas.ResolveSchemaPath(schemas.InterviewPlanSchema); schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err == nil {
			if err := schemas.ValidateJSONString(string(schemaContent), planJSON); err != nil {
				var validationErr *schemas.ValidationError
				if errors.As(err, &validationErr) {
					return fmt.Errorf("generated plan does not validate against schema: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Warning: Could not validate plan against schema: %v\n", err)
			}
		}
	}

	if planOutputFile == "" {
		fmt.Println(planJSON)
		return nil
	}
	if err := os.WriteFile(planOutputFile, []byte(planJSON), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
