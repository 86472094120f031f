package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/ballpit/internal/config"
	"github.com/arcadelab/ballpit/internal/core"
	"github.com/arcadelab/ballpit/internal/platform/tui"
	"github.com/arcadelab/ballpit/internal/registry"
	"github.com/arcadelab/ballpit/internal/storage"
)

var (
	flagConfig       string
	flagPreset       string
	flagEngine       string
	flagBalls        int
	flagNoCollisions bool
)

var runCmd = &cobra.Command{
	Use:   "run [rule]",
	Short: "Run a simulation",
	Long: `Start a live simulation in the terminal viewer, optionally with a
rule set installed.

Controls:
  Space      - Pause/resume
  Left / [   - Step back one frame (pauses)
  Shift+Left - Jump back 60 frames
  Right / ]  - Step forward (while paused)
  E          - Cycle physics engine
  C          - Toggle ball collisions
  B          - Spawn an extra ball
  R          - Reset with a new seed
  Q/Ctrl+C   - Quit

Physics presets:
  standard - Stock tuning
  bouncy   - High elasticity, fast launches
  floaty   - Low gravity, gentle launches

Examples:
  ballpit run
  ballpit run splitter
  ballpit run score-exit --engine realistic --preset bouncy
  ballpit run painter --balls 24 --no-collisions
  ballpit run --config ./my-sim.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	runCmd.Flags().StringVar(&flagPreset, "preset", "", "Physics preset: standard, bouncy, floaty")
	runCmd.Flags().StringVar(&flagEngine, "engine", "", "Physics engine: arcade, arcadeSimple, realistic")
	runCmd.Flags().IntVar(&flagBalls, "balls", 0, "Initial ball count (0 = config default)")
	runCmd.Flags().BoolVar(&flagNoCollisions, "no-collisions", false, "Disable ball-ball collisions")
}

func runRun(cmd *cobra.Command, args []string) {
	// Resolve the rule set, if any
	var rule registry.Rule
	if len(args) > 0 && args[0] != "none" {
		ruleID := args[0]
		if !registry.Exists(ruleID) {
			fmt.Fprintf(os.Stderr, "Error: unknown rule %q\n", ruleID)
			fmt.Fprintln(os.Stderr, "Run 'ballpit rules' to see available rule sets.")
			os.Exit(1)
		}
		r, err := registry.Create(ruleID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating rule: %v\n", err)
			os.Exit(1)
		}
		rule = r
	}

	// Load simulation config
	cfg, err := config.LoadSim(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		config.ApplyPreset(&cfg, config.PhysicsPreset(flagPreset))
	}
	if flagEngine != "" {
		cfg.Engine.Name = flagEngine
	}
	if flagBalls > 0 {
		cfg.Spawn.Count = flagBalls
	}
	if flagNoCollisions {
		cfg.Collisions = false
	}

	// Get terminal size for the viewer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the viewer still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		SimConfig: cfg,
		Rule:      rule,
		Store:     store,
		Runtime:   runtime,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
