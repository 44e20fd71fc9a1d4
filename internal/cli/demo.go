package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vsa-tools/holo/internal/config"
	"github.com/vsa-tools/holo/internal/demo"
	"github.com/vsa-tools/holo/internal/formatter"
	"github.com/vsa-tools/holo/internal/logger"
	"github.com/vsa-tools/holo/internal/ui"
)

var (
	demoDimensionality int
	demoSeed           int64
	demoSuperpose      bool
	demoNoTables       bool
	demoInteractive    bool
)

func newDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the HRR demonstration end to end",
		Long: `Generate random symbol vectors, bind each configured role/filler pair
with circular convolution, unbind the role with circular correlation, and
clean the noisy result up against the memory.

Examples:
  holo demo
  holo demo -n 1024 --seed 7
  holo demo --superpose -o json
  holo demo --interactive`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}

	cmd.Flags().IntVarP(&demoDimensionality, "dimensionality", "n", 0, "vector dimensionality (overrides config)")
	cmd.Flags().Int64Var(&demoSeed, "seed", 0, "generator seed (overrides config)")
	cmd.Flags().BoolVar(&demoSuperpose, "superpose", false, "also unbind from a superposed trace of all pairs")
	cmd.Flags().BoolVar(&demoNoTables, "no-tables", false, "hide the ranked similarity tables")
	cmd.Flags().BoolVarP(&demoInteractive, "interactive", "i", false, "explore the demonstration in an interactive TUI")

	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadDemoConfig(cmd)
	if err != nil {
		return err
	}

	if demoInteractive {
		return ui.Run(cfg)
	}

	log := logger.New("demo", isVerbose)
	report, err := demo.NewRunner(cfg.Demo, log).Run()
	if err != nil {
		return fmt.Errorf("demonstration failed: %w", err)
	}

	output, err := formatReport(cfg, report)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(output)
	return err
}

// loadDemoConfig loads configuration and applies demo flag overrides.
func loadDemoConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("dimensionality") {
		cfg.Demo.Dimensionality = demoDimensionality
	}
	if cmd.Flags().Changed("seed") {
		cfg.Demo.Seed = demoSeed
	}
	if cmd.Flags().Changed("superpose") {
		cfg.Demo.Superpose = demoSuperpose
	}
	if demoNoTables {
		cfg.Output.ShowTables = false
	}
	if verbose {
		cfg.Output.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// formatReport renders a report according to global and config output settings.
func formatReport(cfg *config.Config, report *demo.Report) ([]byte, error) {
	format := cfg.Output.DefaultFormat
	if outputFmt != "" {
		format = outputFmt
	}

	f, err := formatter.New(format, formatter.Options{
		Color:      cfg.Output.ColorMode != "never" && !isColorDisabled(),
		Emoji:      !isEmojiDisabled(),
		ShowTables: cfg.Output.ShowTables,
	})
	if err != nil {
		return nil, err
	}
	return f.Format(report)
}
