package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/events"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagFlapEvery int
	flagGames     int
	flagFrame     bool
	flagWidth     int
	flagHeight    int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session",
	Long: `Run sessions without a terminal UI, as fast as possible, and print
the scores. Input comes from the autopilot or a fixed flap cadence.
Session events are logged to stderr.

Examples:
  flappy sim --autopilot --seed 7
  flappy sim --flap-every 30 --ticks 2000
  flappy sim --autopilot --games 10 --log-level warn
  flappy sim --autopilot --ticks 300 --frame`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to run")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot decide when to flap")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Flap every N ticks (0 = never)")
	simCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play before stopping")
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the last frame as text")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Frame width in cells")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Frame height in cells")
}

// simOptions controls a headless run.
type simOptions struct {
	Ticks     int
	Games     int
	FlapEvery int
	Autopilot bool
}

// simResult is the outcome of a headless run. Scores holds one entry per
// game, including a game still running when the tick budget ran out.
type simResult struct {
	Scores []int
	Ticks  int
}

func (r simResult) best() int {
	best := 0
	for _, s := range r.Scores {
		best = core.Max(best, s)
	}
	return best
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	logger, err := events.NewLogger(cmd.ErrOrStderr(), "flappy-sim", flagLogLevel)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(flagWidth, flagHeight)
	opts := []flappy.Option{
		flappy.WithSeed(seed),
		flappy.WithListener(events.NewLogListener(logger)),
	}
	if flagFrame {
		opts = append(opts, flappy.WithRenderer(flappy.NewScreenRenderer(screen, cfg)))
	}

	s, err := flappy.NewSession(cfg, opts...)
	if err != nil {
		return err
	}

	res := simulate(s, simOptions{
		Ticks:     flagTicks,
		Games:     flagGames,
		FlapEvery: flagFlapEvery,
		Autopilot: flagAutopilot,
	})

	if flagFrame {
		s.Draw()
	}
	printSim(cmd.OutOrStdout(), seed, res, screen, flagFrame)
	return nil
}

// simulate drives s with scripted input until the tick budget or the game
// count is used up.
func simulate(s *flappy.Session, opt simOptions) simResult {
	var res simResult
	if opt.Ticks <= 0 || opt.Games <= 0 {
		return res
	}

	var step core.StepResult
	in := core.NewInputFrame()
	in.Set(core.ActionStart)

	for res.Ticks < opt.Ticks {
		if opt.Autopilot && flappy.Autopilot(s) {
			in.Set(core.ActionFlap)
		}
		if opt.FlapEvery > 0 && s.Running() && s.Frame()%opt.FlapEvery == 0 && !in.Has(core.ActionFlap) {
			in.Set(core.ActionFlap)
		}

		step = s.Step(in)
		in.Clear()
		res.Ticks++

		if !step.Continue {
			res.Scores = append(res.Scores, step.State.Score)
			if len(res.Scores) >= opt.Games {
				return res
			}
			in.Set(core.ActionStart)
		}
	}

	if step.State.Running() {
		res.Scores = append(res.Scores, step.State.Score)
	}
	return res
}

func printSim(w io.Writer, seed int64, res simResult, screen *core.Screen, frame bool) {
	fmt.Fprintf(w, "seed:  %d\n", seed)
	fmt.Fprintf(w, "ticks: %d\n", res.Ticks)
	fmt.Fprintf(w, "games: %d\n", len(res.Scores))
	for i, score := range res.Scores {
		fmt.Fprintf(w, "  game %d: %d\n", i+1, score)
	}
	fmt.Fprintf(w, "best:  %d\n", res.best())

	if frame {
		fmt.Fprintln(w)
		fmt.Fprintln(w, screen.String())
	}
}
