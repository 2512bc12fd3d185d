package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/lox/nlhe-solver/action"
	"github.com/lox/nlhe-solver/api"
	"github.com/lox/nlhe-solver/config"
	"github.com/lox/nlhe-solver/handrange"
	"github.com/lox/nlhe-solver/poker"
	"github.com/lox/nlhe-solver/solver"
	"github.com/lox/nlhe-solver/tui"
)

var cli struct {
	Debug bool `help:"enable debug logging"`

	Solve SolveCmd `cmd:"" default:"1" help:"solve a single hero decision"`
	Serve ServeCmd `cmd:"" help:"run the websocket solve server"`
}

// SolveCmd solves a single decision point and prints the resulting
// strategy, or launches a TUI that renders it as it converges.
type SolveCmd struct {
	Hero     []string `help:"hero's two hole cards, e.g. As Ks" required:""`
	Board    []string `help:"known board cards, 0, 3, 4 or 5 of them"`
	Range    string   `help:"villain's range notation, e.g. 22-99,ATo-AQo,KQo" required:""`
	Pot      float64  `help:"pot size" required:""`
	Stack    float64  `help:"effective stack behind" required:""`
	ToCall   float64  `help:"amount hero must call to stay in" default:"0"`
	Position string   `help:"hero's position (SB, BB, UTG, MP, CO, BTN)" default:"BTN"`

	Config string `help:"path to an HCL defaults file"`

	Iterations            int     `help:"override the configured iteration budget"`
	SamplesPerIteration   int     `help:"override the configured samples per iteration"`
	ConvergenceThreshold  float64 `help:"override the configured convergence threshold"`
	ConvergenceCheckEvery int     `help:"override the configured convergence check interval"`
	Seed                  int64   `help:"random seed; 0 uses the defaults file's seed, or entropy if that is 0 too" default:"0"`

	TUI     bool          `help:"render live convergence in a terminal UI"`
	Timeout time.Duration `help:"abort the solve after this long (0 disables)" default:"2m"`
}

// ServeCmd runs the websocket solve server.
type ServeCmd struct {
	Addr string `help:"address to listen on" default:":8080"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("nlhe-solver"),
		kong.Description("Monte Carlo CFR solver for a single no-limit hold'em decision"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)

	runCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch ctx.Command() {
	case "solve":
		if err := cli.Solve.Run(runCtx); err != nil {
			zlog.Fatal().Err(err).Msg("solve failed")
		}
	case "serve":
		if err := cli.Serve.Run(runCtx); err != nil {
			zlog.Fatal().Err(err).Msg("server failed")
		}
	default:
		zlog.Fatal().Msgf("unknown command: %s", ctx.Command())
	}
}

func setupLogger(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

func (cmd *SolveCmd) Run(ctx context.Context) error {
	settings, err := config.Load(cmd.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	gs, err := cmd.gameState(settings)
	if err != nil {
		return fmt.Errorf("building game state: %w", err)
	}
	cfg, err := cmd.solverConfig(settings)
	if err != nil {
		return fmt.Errorf("building solver config: %w", err)
	}

	if cmd.Timeout > 0 {
		clock := quartz.NewReal()
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, clock.Now().Add(cmd.Timeout))
		defer cancel()
	}

	if cmd.TUI {
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
		model := tui.NewModel(ctx, gs, cfg, logger)
		p := tea.NewProgram(model)
		_, err := p.Run()
		return err
	}

	report, err := solver.Solve(ctx, gs, cfg)
	if err != nil {
		return err
	}
	printReport(gs, report)
	return nil
}

func (cmd *SolveCmd) gameState(settings config.SolverSettings) (solver.GameState, error) {
	var hero, board poker.Hand
	for _, s := range cmd.Hero {
		c, err := poker.ParseCard(s)
		if err != nil {
			return solver.GameState{}, fmt.Errorf("parsing hero card %q: %w", s, err)
		}
		hero.AddCard(c)
	}
	for _, s := range cmd.Board {
		c, err := poker.ParseCard(s)
		if err != nil {
			return solver.GameState{}, fmt.Errorf("parsing board card %q: %w", s, err)
		}
		board.AddCard(c)
	}
	villainRange, err := handrange.Parse(cmd.Range)
	if err != nil {
		return solver.GameState{}, fmt.Errorf("parsing villain range: %w", err)
	}

	return solver.GameState{
		HeroHand:       hero,
		Board:          board,
		Pot:            cmd.Pot,
		EffectiveStack: cmd.Stack,
		ToCall:         cmd.ToCall,
		Position:       action.PositionFromString(strings.ToUpper(cmd.Position)),
		VillainRange:   villainRange,
		BetSizing:      settings.BetSizing,
	}, nil
}

func (cmd *SolveCmd) solverConfig(settings config.SolverSettings) (solver.Config, error) {
	if err := settings.Validate(); err != nil {
		return solver.Config{}, fmt.Errorf("invalid solver settings: %w", err)
	}

	if cmd.Iterations > 0 {
		settings.Iterations = cmd.Iterations
	}
	if cmd.SamplesPerIteration > 0 {
		settings.SamplesPerIteration = cmd.SamplesPerIteration
	}
	if cmd.ConvergenceThreshold > 0 {
		settings.ConvergenceThreshold = cmd.ConvergenceThreshold
	}
	if cmd.ConvergenceCheckEvery > 0 {
		settings.ConvergenceCheckEvery = cmd.ConvergenceCheckEvery
	}

	cfg := solver.Config{
		Iterations:            uint32(settings.Iterations),
		SamplesPerIteration:   uint(settings.SamplesPerIteration),
		ConvergenceThreshold:  settings.ConvergenceThreshold,
		ConvergenceCheckEvery: uint32(settings.ConvergenceCheckEvery),
	}
	if cmd.Seed != 0 {
		seed := uint64(cmd.Seed)
		cfg.Seed = &seed
	} else if settings.Seed != 0 {
		seed := uint64(settings.Seed)
		cfg.Seed = &seed
	}
	cfg.OnProgress = func(iteration uint32, metric float64) {
		zlog.Debug().Uint32("iteration", iteration).Float64("convergence", metric).Msg("progress")
	}
	return cfg, nil
}

func printReport(gs solver.GameState, report solver.StrategyReport) {
	heroCards := gs.HeroHand.Cards()
	category := poker.CategorizeHoleCards(heroCards[0], heroCards[1])

	zlog.Info().
		Uint32("iterations", report.IterationsExecuted).
		Float64("convergence", report.Convergence).
		Str("hero_category", string(category)).
		Msg("solve complete")

	for _, a := range report.Actions {
		zlog.Info().
			Str("action", a.Action.Kind.String()).
			Float64("amount", a.Action.Amount).
			Float64("frequency", a.Frequency).
			Float64("ev", a.EV).
			Msg("strategy")
	}
}

func (cmd *ServeCmd) Run(ctx context.Context) error {
	logger := zlog.Logger
	zlog.Info().Str("addr", cmd.Addr).Msg("starting solve server")
	return api.Serve(ctx, cmd.Addr, logger)
}
