package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/setanarut/phys2d/internal/tui"
)

var (
	flagFPS      int
	flagSubsteps int
	flagScale    float64
)

var viewCmd = &cobra.Command{
	Use:   "view [scenario]",
	Short: "Watch a scenario in the terminal",
	Long: `Run a scenario in the terminal.

Controls:
  Space/P    - Pause/resume
  N          - Single frame while paused
  +/-        - Zoom
  Q/Ctrl+C   - Quit

Examples:
  phys2d view bounce
  phys2d view lorentz --fps 30 --substeps 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frames per second")
	viewCmd.Flags().IntVar(&flagSubsteps, "substeps", 10, "World steps per frame")
	viewCmd.Flags().Float64Var(&flagScale, "scale", 0, "Rows per world unit (0 = fit the scenario view)")
}

func runView(cmd *cobra.Command, args []string) error {
	// The viewer owns the terminal; log lines would tear the frame.
	logger := log.New(io.Discard)
	scn, err := loadScenario(args, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(scn, tui.Options{
		TickRate: flagFPS,
		Substeps: flagSubsteps,
		Scale:    flagScale,
		Width:    width,
		Height:   height,
	})
}
