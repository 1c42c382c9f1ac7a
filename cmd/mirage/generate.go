package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mirageproc/mirage"
	"github.com/mirageproc/mirage/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate frames from a pipeline definition",
	Long:  `Compiles the pipeline definition, runs the requested number of generation rounds and writes each frame as a grayscale PNG.`,
	Run: func(cmd *cobra.Command, args []string) {
		rounds, _ := cmd.Flags().GetInt("rounds")
		outDir, _ := cmd.Flags().GetString("out")

		result, logger, err := compileFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error compiling pipeline: %v\n", err)
			os.Exit(1)
		}

		name := result.Name
		if name == "" {
			name = "mirage"
		}
		gen, err := mirage.New(result.Root,
			mirage.WithName(name),
			mirage.WithInputShape(result.Width, result.Height),
			mirage.WithLogger(logger),
		)
		if err != nil {
			fmt.Printf("Error building generator: %v\n", err)
			os.Exit(1)
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			fmt.Printf("Error creating output dir: %v\n", err)
			os.Exit(1)
		}

		for i := 0; i < rounds; i++ {
			frame, err := gen.Generate(context.Background())
			if err != nil {
				fmt.Printf("Error on round %d: %v\n", i+1, err)
				os.Exit(1)
			}
			path := filepath.Join(outDir, fmt.Sprintf("%s-%04d.png", name, i))
			f, err := os.Create(path)
			if err != nil {
				fmt.Printf("Error creating %s: %v\n", path, err)
				os.Exit(1)
			}
			err = render.EncodePNG(f, frame)
			f.Close()
			if err != nil {
				fmt.Printf("Error encoding %s: %v\n", path, err)
				os.Exit(1)
			}
			logger.Info("frame written", "path", path, "trail_len", len(frame.Trail))
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntP("rounds", "n", 1, "Number of generation rounds")
	generateCmd.Flags().StringP("out", "o", "out", "Output directory")
}
