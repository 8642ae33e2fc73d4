package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zalioth/SudokuHex/internal/domain"
	"github.com/Zalioth/SudokuHex/internal/validator"
)

func newSolveCommand(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "solve [template]",
		Short: "Solve a single template and print the solution",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tpl string
			switch {
			case len(args) == 1:
				tpl = args[0]
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				tpl = string(data)
			default:
				return errors.New("pass a template argument or --file")
			}

			svc := opts.newService("")
			solution, st, err := svc.SolveTemplate(cmd.Context(), tpl)
			if err != nil {
				return err
			}

			// independent validity check on the output
			b, err := domain.ParseTemplate(solution)
			if err != nil {
				return err
			}
			ok, err := validator.New().Complete(cmd.Context(), b)
			if err != nil {
				return err
			}

			fmt.Println(solution)
			fmt.Printf("Is the sudoku solved? %t\n", ok)
			fmt.Printf("Time: %v\n", st.Duration)
			fmt.Printf("Number of backtracks: %d\n", st.Backtracks)
			fmt.Printf("Times used the consistency heuristic: %d\n", st.HeuristicHits)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read the template from a file")
	return cmd
}
