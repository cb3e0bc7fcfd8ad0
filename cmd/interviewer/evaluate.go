package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Seis05640/ai-voice-interviewer/internal/evaluation"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one interview answer",
	Long:  "Score a single question/answer pair on relevance, depth and clarity and print the evaluation report.",
	RunE:  runEvaluate,
}

var (
	evaluateQuestion     string
	evaluateAnswer       string
	evaluateAnswerFile   string
	evaluateQuestionType string
	evaluateFormat       string
	evaluateOutputFile   string
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateQuestion, "question", "q", "", "The interview question (required)")
	evaluateCmd.Flags().StringVarP(&evaluateAnswer, "answer", "a", "", "The candidate's answer")
	evaluateCmd.Flags().StringVar(&evaluateAnswerFile, "answer-file", "", "Path to a file containing the answer")
	evaluateCmd.Flags().StringVar(&evaluateQuestionType, "type", "general", "Question type label for the report")
	evaluateCmd.Flags().StringVarP(&evaluateFormat, "format", "f", "text", "Output format: text, markdown or json")
	evaluateCmd.Flags().StringVarP(&evaluateOutputFile, "out", "o", "", "Path to output file (default: stdout)")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	if evaluateQuestion == "" {
		return fmt.Errorf("--question is required")
	}
	if evaluateAnswer != "" && evaluateAnswerFile != "" {
		return fmt.Errorf("--answer and --answer-file are mutually exclusive")
	}

	answer := evaluateAnswer
	if evaluateAnswerFile != "" {
		data, err := os.ReadFile(evaluateAnswerFile)
		if err != nil {
			return fmt.Errorf("failed to read answer file: %w", err)
		}
		answer = string(data)
	}

	report := evaluation.NewReport(evaluateQuestion, answer, evaluateQuestionType)

	var output string
	switch evaluateFormat {
	case "text":
		output = report.FormatText()
	case "markdown":
		output = report.FormatMarkdown()
	case "json":
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(jsonBytes)
	default:
		return fmt.Errorf("unknown format %q (expected text, markdown or json)", evaluateFormat)
	}

	if evaluateOutputFile == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(evaluateOutputFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
