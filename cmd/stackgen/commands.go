package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/blocksworld/stackgen/internal/blocks"
	"github.com/blocksworld/stackgen/internal/dataset"
)

var (
	verbose    bool
	logFile    string
	configPath string

	numSamples int
	outputDir  string
	seed       int64
	noVideos   bool
	workers    int

	maxMoves int

	rootCmd = &cobra.Command{
		Use:   "stackgen",
		Short: "Generate block stacking puzzle datasets",
		Long: `stackgen builds visual block stacking tasks: random puzzles with a
BFS-optimal solution, rendered start/target images and an optional
solution video, plus a metadata line per task.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset of puzzle samples",
		Args:  cobra.NoArgs,
		RunE:  runGenerate, // defined in cmd_generate.go
	}

	solveCmd = &cobra.Command{
		Use:   "solve INITIAL TARGET",
		Short: "Find the optimal move sequence between two states",
		Long: `Solve takes two states in stack notation: digits are block ids from the
bottom of a stack up, stacks are separated by "|". For example "01|2|"
means block 1 on block 0, block 2 alone, and an empty third stack.`,
		Args: cobra.ExactArgs(2),
		RunE: runSolve, // defined in cmd_solve.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to this file (rotated)")

	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"YAML config file (defaults apply when omitted)")
	generateCmd.Flags().IntVarP(&numSamples, "num-samples", "n", 0,
		"number of samples to generate")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"dataset output directory")
	generateCmd.Flags().Int64Var(&seed, "seed", 0,
		"master random seed (a fresh one is picked when omitted)")
	generateCmd.Flags().BoolVar(&noVideos, "no-videos", false,
		"skip solution videos")
	generateCmd.Flags().IntVar(&workers, "workers", 0,
		"concurrent sample builds (0 = one per CPU)")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&maxMoves, "max-moves", blocks.DefaultMaxMoves,
		"search depth limit")
}

func allLoggers() []*logrus.Logger {
	return []*logrus.Logger{log, blocks.Log, dataset.Log}
}

// setupLogging configures the cmd logger and the library loggers alike, so
// -v and --log-file affect everything.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}

	loggers := allLoggers()
	for _, l := range loggers {
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.DebugLevel,
			Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
		})
		if err != nil {
			return fmt.Errorf("setting up log file: %w", err)
		}
		for _, l := range loggers {
			l.AddHook(hook)
		}
	}
	return nil
}
