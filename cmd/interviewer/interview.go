package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Seis05640/ai-voice-interviewer/internal/evaluation"
	"github.com/Seis05640/ai-voice-interviewer/internal/interview"
	"github.com/Seis05640/ai-voice-interviewer/internal/llm"
	"github.com/Seis05640/ai-voice-interviewer/internal/observability"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive interview session in the terminal",
	Long:  "Plan an interview for a job description and optional resume, then ask the questions one at a time, reading answers from stdin.",
	RunE:  runInterview,
}

var (
	interviewJobFile      string
	interviewJobURL       string
	interviewResumeFile   string
	interviewOutputFile   string
	interviewMaxQuestions int
	interviewUseBrowser   bool
	interviewEvaluate     bool
	interviewLLMProvider  string
	interviewAPIKey       string
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewJobFile, "job", "j", "", "Path to job description text file")
	interviewCmd.Flags().StringVar(&interviewJobURL, "job-url", "", "URL to fetch the job description from")
	interviewCmd.Flags().StringVarP(&interviewResumeFile, "resume", "r", "", "Path to resume text file (optional)")
	interviewCmd.Flags().StringVarP(&interviewOutputFile, "out", "o", "", "Path to write the final session state JSON")
	interviewCmd.Flags().IntVarP(&interviewMaxQuestions, "max-questions", "n", 5, "Maximum number of questions")
	interviewCmd.Flags().BoolVar(&interviewUseBrowser, "use-browser", false, "Use headless browser for SPA job pages")
	interviewCmd.Flags().BoolVar(&interviewEvaluate, "evaluate", false, "Evaluate each answer and print the scores")
	interviewCmd.Flags().StringVar(&interviewLLMProvider, "llm", "", "LLM provider for conversational acknowledgements (fake or gemini)")
	interviewCmd.Flags().StringVar(&interviewAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	jobText, err := loadJobText(ctx, interviewJobFile, interviewJobURL, interviewUseBrowser)
	if err != nil {
		return err
	}

	resumeText := ""
	if interviewResumeFile != "" {
		resumeText, err = loadResumeText(interviewResumeFile)
		if err != nil {
			return err
		}
	}

	var client llm.Client
	if interviewLLMProvider != "" {
		apiKey := interviewAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		client, err = llm.NewClient(ctx, llm.Provider(interviewLLMProvider), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
	}

	engine := interview.NewEngine()
	state := engine.Start(jobText, resumeText, interviewMaxQuestions)

	if state.MaxQuestions() == 0 {
		fmt.Println("No questions could be planned from the given job description.")
		return nil
	}

	fmt.Printf("Interview session %s (%d questions)\n\n", state.SessionID, state.MaxQuestions())

	printer := observability.NewPrinter(os.Stderr)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		question, ok := state.CurrentQuestion()
		if !ok {
			break
		}

		fmt.Printf("Q%d: %s\n> ", state.NextTurnIndex+1, question)
		if !scanner.Scan() {
			break
		}
		answer := scanner.Text()

		if err := state.SubmitAnswer(answer); err != nil {
			return fmt.Errorf("failed to submit answer: %w", err)
		}

		if interviewEvaluate {
			eval := evaluation.EvaluateAnswer(question, answer, "")
			printer.PrintAnswerEvaluation(&eval)
		}

		if client != nil {
			ack, err := client.Generate(ctx,
				"You are a friendly technical interviewer. Acknowledge the candidate's answer in one short sentence without revealing any assessment.",
				fmt.Sprintf("Question: %s\nAnswer: %s", question, answer))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: LLM acknowledgement failed: %v\n", err)
			} else {
				fmt.Printf("\n%s\n", ack)
			}
		}
		fmt.Println()
	}

	if state.Status == interview.StatusCompleted {
		score := evaluation.SessionScore(state.Answers())
		fmt.Printf("Interview complete. Session score: %.2f (%s)\n",
			score, evaluation.Recommendation(score))
	} else {
		fmt.Println("Interview ended early.")
	}

	if interviewOutputFile != "" {
		raw, err := state.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal session state: %w", err)
		}
		if err := os.WriteFile(interviewOutputFile, raw, 0644); err != nil {
			return fmt.Errorf("failed to write session state: %w", err)
		}
	}

	return scanner.Err()
}
