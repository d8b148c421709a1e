package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/export"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

var (
	seed       int64
	workers    int
	outputPath string
	keyPrefix  string
	solverKind string
	timeout    time.Duration
	logLevel   string
)

func main() {
	command := &cobra.Command{
		Use:   "sudoku-gen <count> <difficulty>",
		Short: "Generate sets of uniquely solvable sudoku puzzles",
		Long: strings.TrimSpace(`
Generate <count> sudoku puzzles at <difficulty> (easy, medium, or hard)
and emit them as a JSON object of question/answer grid pairs, keyed
<prefix>-q<index> in generation order.`),
		Args:         cobra.ExactArgs(2),
		RunE:         run,
		SilenceUsage: true,
	}
	command.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the current time)")
	command.Flags().IntVar(&workers, "workers", 0, "generation workers (0 uses all CPUs)")
	command.Flags().StringVarP(&outputPath, "output", "o", "", "write the set to a file instead of stdout")
	command.Flags().StringVar(&keyPrefix, "prefix", generator.DefaultKeyPrefix, "record key prefix")
	command.Flags().StringVar(&solverKind, "solver", "backtrack", "uniqueness oracle: backtrack|dlx")
	command.Flags().DurationVar(&timeout, "timeout", 0, "abort generation after this duration (0 disables)")
	command.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	if err := command.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logrus.SetLevel(level)

	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parse count: %w", err)
	}
	difficulty := args[1]

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(solverKind)) {
	case "dlx":
		s = solver.NewDLXSolver()
	default:
		s = solver.NewBacktrackingSolver()
	}

	builder := generator.NewSetBuilder(generator.NewUniqueGenerator(s), seed)
	builder.Workers = workers
	builder.Prefix = keyPrefix
	exporter := export.NewJSON()
	uc := usecase.NewService(s, builder, validator.New(), exporter)

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logrus.WithFields(logrus.Fields{
		"count":      count,
		"difficulty": difficulty,
		"seed":       seed,
		"solver":     solverKind,
	}).Debug("generating puzzle set")

	set, st, err := uc.GenerateSet(ctx, count, difficulty)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"puzzles":  set.Len(),
		"nodes":    st.Nodes,
		"duration": st.Duration.Round(time.Millisecond),
	}).Info("puzzle set ready")

	if outputPath != "" {
		if err := exporter.WriteFile(ctx, outputPath, set); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logrus.Info("wrote ", outputPath)
		return nil
	}
	if err := uc.Export(ctx, os.Stdout, set); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
