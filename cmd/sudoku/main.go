package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sudoku_engine/db"
	"sudoku_engine/internal/core"
	"sudoku_engine/internal/generator"
	"sudoku_engine/internal/solver"
	"sudoku_engine/internal/visualizer"
)

var verbose int

func main() {
	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Generate and solve 9x9 sudoku puzzles",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case verbose >= 2:
				logrus.SetLevel(logrus.TraceLevel)
			case verbose == 1:
				logrus.SetLevel(logrus.DebugLevel)
			default:
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}
	root.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (-v debug, -vv trace)")

	root.AddCommand(generateCmd(), solveCmd(), showCmd())

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func generateCmd() *cobra.Command {
	var (
		seedHex string
		count   int
		upload  bool
		dbURL   string
		quiet   bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles with unique solutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seedHex != "" && count != 1 {
				return fmt.Errorf("--seed fixes the output, so --count must be 1")
			}

			var store *db.Store
			if upload {
				var err error
				if store, err = db.Open(dbURL); err != nil {
					return err
				}
			}

			gen := generator.New(solver.NewTechniqueSolverWithAll())
			for i := 0; i < count; i++ {
				var puzzle *generator.GeneratedPuzzle
				if seedHex != "" {
					seed, err := generator.ParseSeed(seedHex)
					if err != nil {
						return err
					}
					puzzle = gen.GenerateWithSeed(seed)
				} else {
					puzzle = gen.Generate()
				}

				fmt.Printf("seed:     %s\n", puzzle.Seed)
				fmt.Printf("problem:  %s\n", puzzle.Problem)
				fmt.Printf("solution: %s\n", puzzle.Solution)
				fmt.Printf("clues:    %d\n", puzzle.Problem.FilledCount())
				if !quiet {
					visualizer.Print(os.Stdout, puzzle.Problem)
				}

				if store != nil {
					id, err := store.Upload(puzzle)
					if err != nil {
						return err
					}
					fmt.Printf("uploaded: %s\n", id)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&seedHex, "seed", "", "64-character hex seed for a reproducible puzzle")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of puzzles to generate")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload generated puzzles to the puzzle store")
	cmd.Flags().StringVar(&dbURL, "db-url", "https://base.mljr.eu", "puzzle store URL")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the board rendering")
	return cmd
}

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve PUZZLE",
		Short: "Solve a puzzle given in the 81-character format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := core.ParseDigitGrid(args[0])
			if err != nil {
				return err
			}

			s := solver.NewBacktrackSolverWithAll()
			solutions, err := s.Solve(*core.CandidateGridFromDigitGrid(grid))
			if err != nil {
				return fmt.Errorf("puzzle is contradictory: %w", err)
			}

			first, ok := solutions.Next()
			if !ok {
				return fmt.Errorf("puzzle has no solution")
			}
			fmt.Printf("solution: %s\n", first.Grid)
			visualizer.Print(os.Stdout, first.Grid)

			if first.Stats.SolvedWithoutAssumptions() {
				fmt.Println("solved by deduction alone")
			} else {
				fmt.Printf("assumptions: %d, backtracks: %d\n",
					len(first.Stats.Assumptions), first.Stats.Backtracks)
			}
			for _, t := range solver.AllTechniques() {
				if n := first.Stats.Technique.Count(t.Name()); n > 0 {
					fmt.Printf("  %s: %d\n", t.Name(), n)
				}
			}

			if _, ok := solutions.Next(); ok {
				fmt.Println("warning: solution is not unique")
			}
			return nil
		},
	}
	return cmd
}

func showCmd() *cobra.Command {
	var candidates bool
	cmd := &cobra.Command{
		Use:   "show PUZZLE",
		Short: "Render a puzzle given in the 81-character format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := core.ParseDigitGrid(args[0])
			if err != nil {
				return err
			}
			if candidates {
				visualizer.PrintCandidates(os.Stdout, core.CandidateGridFromDigitGrid(grid))
				return nil
			}
			visualizer.Print(os.Stdout, grid)
			return nil
		},
	}
	cmd.Flags().BoolVar(&candidates, "candidates", false, "show remaining candidates per cell")
	return cmd
}
