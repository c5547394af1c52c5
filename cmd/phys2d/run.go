package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/setanarut/phys2d"
	"github.com/setanarut/phys2d/internal/scenario"
)

var (
	flagSteps int
	flagDT    float64
	flagEvery int
)

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Step a scenario without a display",
	Long: `Step a scenario headless and log the state of every movable collider.

Examples:
  phys2d run freefall
  phys2d run pi --steps 200000 --dt 0.0001 --every 0
  phys2d run bounce -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagSteps, "steps", 1000, "Number of steps")
	runCmd.Flags().Float64Var(&flagDT, "dt", 0.01, "Step length in seconds")
	runCmd.Flags().IntVar(&flagEvery, "every", 100, "Log collider states every N steps (0 = only at the end)")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	scn, err := loadScenario(args, logger)
	if err != nil {
		return err
	}
	if flagSteps < 0 {
		return fmt.Errorf("--steps must not be negative")
	}

	w := scn.World
	contacts := 0
	prev := w.OnCollision
	w.OnCollision = func(w *phys2d.World, ev phys2d.CollisionEvent) {
		contacts++
		if prev != nil {
			prev(w, ev)
		}
	}

	logger.Info("running scenario", "name", scn.Name, "steps", flagSteps, "dt", flagDT)
	for i := 1; i <= flagSteps; i++ {
		if err := w.Step(flagDT); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if flagEvery > 0 && i%flagEvery == 0 {
			logStates(logger, scn, i)
		}
	}
	if flagEvery <= 0 || flagSteps%flagEvery != 0 {
		logStates(logger, scn, flagSteps)
	}

	for id, n := range scn.Counts {
		logger.Info("collision count", "name", scn.Names[id], "count", n)
	}
	logger.Info("done", "steps", flagSteps, "time", float64(flagSteps)*flagDT, "contacts", contacts)
	return nil
}

// logStates logs position and velocity of every movable collider.
func logStates(logger *log.Logger, scn *scenario.Scenario, step int) {
	for _, c := range scn.World.ActiveColliders() {
		logger.Info("state",
			"step", step,
			"name", scn.NameOf(c),
			"x", round3(c.Position.X),
			"y", round3(c.Position.Y),
			"vx", round3(c.Velocity.X),
			"vy", round3(c.Velocity.Y),
		)
	}
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
