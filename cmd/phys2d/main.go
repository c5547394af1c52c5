// phys2d runs 2D rigid-body scenarios headless or in the terminal.
//
// Usage:
//
//	phys2d list               - List built-in scenarios
//	phys2d run <scenario>     - Step a scenario and log collider states
//	phys2d view <scenario>    - Watch a scenario in the terminal
//
// Global flags:
//
//	--config <path>  - Load the scenario from a YAML file instead of by name
//	--verbose        - Log contacts and membership changes
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/setanarut/phys2d/internal/scenario"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "phys2d",
	Short: "phys2d - discrete-time 2D rigid-body simulator",
	Long: `phys2d steps worlds of circles and infinite lines with impulse
collision response, energy loss and penetration correction.

Examples:
  phys2d list
  phys2d run freefall --steps 2000 --every 100
  phys2d view bounce
  phys2d run --config ./my-scene.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a scenario YAML file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "phys2d",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadScenario resolves the scenario from --config or the first argument.
func loadScenario(args []string, logger *log.Logger) (*scenario.Scenario, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" && flagConfig == "" {
		return nil, fmt.Errorf("a scenario name or --config is required; run 'phys2d list'")
	}
	f, err := scenario.Load(name, flagConfig)
	if err != nil {
		return nil, err
	}
	return scenario.Build(f, logger)
}
