package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/Zalioth/SudokuHex/internal/infrastructure/storage"
)

func newBenchCommand(opts *options) *cobra.Command {
	var cpuProfileDir string
	cmd := &cobra.Command{
		Use:   "bench <file>",
		Short: "Solve one template per line and report aggregate statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()
			templates, err := storage.ReadTemplates(args[0])
			if err != nil {
				return err
			}
			logger.Info("benchmark", "file", args[0], "puzzles", len(templates), "solver", opts.solver)

			if cpuProfileDir != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfileDir)).Stop()
			}

			svc := opts.newService("")
			report, err := svc.RunBatch(cmd.Context(), templates)
			if err != nil {
				return err
			}

			for i, res := range report.Results {
				if res.Err != nil {
					logger.Warn("puzzle failed", "index", i, "err", res.Err)
					continue
				}
				fmt.Printf("%s\n%s\nTime: %v  Backtracks: %d  Heuristic: %d\n\n",
					res.Template, res.Solution,
					res.Stats.Duration, res.Stats.Backtracks, res.Stats.HeuristicHits)
			}
			fmt.Printf("All sudokus solved successfully: %t\n", report.AllSolved)
			fmt.Printf("%d solved in %v.\n", report.Solved(), report.TotalDuration)
			fmt.Printf("The average sudoku solving time is: %v.\n", report.AvgDuration())
			fmt.Printf("The average number of backtracks per solving is: %d.\n", report.AvgBacktracks())
			fmt.Printf("The average number of times the consistency heuristic is used per solving is: %d.\n", report.AvgHeuristicHits())
			return nil
		},
	}
	cmd.Flags().StringVar(&cpuProfileDir, "cpu-profile", "", "write a CPU profile to this directory")
	return cmd
}
