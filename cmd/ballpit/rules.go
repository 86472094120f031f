package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcadelab/ballpit/internal/registry"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List all registered rule sets",
	Long:  `Shows a list of all rule sets registered in the simulator.`,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	rules := registry.List()

	if len(rules) == 0 {
		fmt.Println("No rule sets available.")
		return
	}

	fmt.Println("Available rule sets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, r := range rules {
		if len(r.ID) > maxIDLen {
			maxIDLen = len(r.ID)
		}
		if len(r.Title) > maxTitleLen {
			maxTitleLen = len(r.Title)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")

	// Print rules
	for _, r := range rules {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, r.ID, maxTitleLen, r.Title, r.Description)
	}

	fmt.Println()
	fmt.Println("Run 'ballpit run <id>' to start a simulation with a rule set.")
}
