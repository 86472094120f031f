package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/ballpit/internal/platform/tui"
	"github.com/arcadelab/ballpit/internal/registry"
	"github.com/arcadelab/ballpit/internal/storage"
)

var flagScoresUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [rule]",
	Short: "Show recorded run results",
	Long: `Display the top 10 runs for the specified rule set, or browse all
rule sets interactively with --ui.

Examples:
  ballpit scores score-exit
  ballpit scores splitter
  ballpit scores --ui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresUI, "ui", false, "Browse results in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	// Interactive browser
	if flagScoresUI {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: specify a rule, or use --ui to browse interactively.")
		fmt.Fprintln(os.Stderr, "Run 'ballpit rules' to see available rule sets.")
		os.Exit(1)
	}
	ruleID := args[0]

	// Check if rule exists
	if !registry.Exists(ruleID) {
		fmt.Fprintf(os.Stderr, "Error: unknown rule %q\n", ruleID)
		fmt.Fprintln(os.Stderr, "Run 'ballpit rules' to see available rule sets.")
		os.Exit(1)
	}

	rule, err := registry.Create(ruleID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating rule: %v\n", err)
		os.Exit(1)
	}
	title := rule.Title()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top runs
	runs, err := store.TopRuns(ruleID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Run Results - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'ballpit run %s' to record the first result!\n", ruleID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-14s  %s\n", "Rank", "Score", "Escaped", "Engine", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-14s  %s\n", "----", "-----", "-------", "------", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-14s  %s\n", i+1, entry.Score, entry.Escaped, entry.Engine, dateStr)
	}

	// Show best score
	fmt.Println()
	best, err := store.BestScore(ruleID)
	if err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
