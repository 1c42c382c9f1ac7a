package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mirageproc/mirage/internal/compiler"
	"github.com/mirageproc/mirage/internal/logging"
	"github.com/mirageproc/mirage/pkg/adapters/mathrand"
	"github.com/mirageproc/mirage/pkg/registry"
)

var rootCmd = &cobra.Command{
	Use:   "mirage",
	Short: "Mirage is a procedural frame generation engine",
	Long:  `Mirage generates synthetic frames by threading a blank frame through a pipeline of randomly parameterized stages declared in a YAML definition.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "pipeline.yaml", "Pipeline definition file")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 = time-based)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// compileFromFlags builds the pipeline declared by the persistent flags.
func compileFromFlags(cmd *cobra.Command) (*compiler.Result, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	seed, _ := cmd.Flags().GetUint64("seed")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := mathrand.New(seed)
	logger.Debug("compiling pipeline", "config", path, "seed", seed)

	comp := compiler.New(registry.Default(), registry.Deps{Random: rng})
	result, err := comp.CompileFile(path)
	if err != nil {
		return nil, nil, err
	}
	return result, logger, nil
}
