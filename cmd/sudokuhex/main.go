package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zalioth/SudokuHex/internal/hint"
	"github.com/Zalioth/SudokuHex/internal/infrastructure/storage"
	"github.com/Zalioth/SudokuHex/internal/ports"
	"github.com/Zalioth/SudokuHex/internal/solver"
	"github.com/Zalioth/SudokuHex/internal/usecase"
	"github.com/Zalioth/SudokuHex/internal/validator"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	logLevel string
	solver   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "sudokuhex",
		Short:        "Solve 16x16 hexadecimal sudokus",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&opts.solver, "solver", "constraint", "solver to use: constraint|backtrack|dlx|sat")
	cmd.AddCommand(newSolveCommand(opts), newBenchCommand(opts), newServeCommand(opts))
	return cmd
}

func (o *options) logger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(o.logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func (o *options) newSolver() ports.Solver {
	switch strings.ToLower(strings.TrimSpace(o.solver)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	case "dlx":
		return solver.NewDLXSolver()
	case "sat":
		return solver.NewSATSolver()
	default:
		return solver.NewConstraintSolver()
	}
}

// newService wires providers into use cases. persistDir may be empty for
// commands that never touch storage.
func (o *options) newService(persistDir string) *usecase.Service {
	var st ports.Storage
	if persistDir != "" {
		st = storage.NewFS(persistDir)
	}
	return usecase.NewService(o.newSolver(), validator.New(), hint.NewSingles(), st)
}
