// Package main provides the entry point for the interview screener CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interviewer",
	Short: "Resume screening and scripted interview engine",
	Long:  "Interviewer screens resumes against job descriptions, plans deterministic interview sessions and evaluates candidate answers, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
