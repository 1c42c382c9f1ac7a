package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mirageproc/mirage/internal/presentation/graph"
	"github.com/mirageproc/mirage/internal/presentation/tui"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the pipeline graph visualization",
	Long:  `Compiles the pipeline definition and outputs a Mermaid diagram (graph TD) representing the stage tree.`,
	Run: func(cmd *cobra.Command, args []string) {
		pretty, _ := cmd.Flags().GetBool("pretty")

		result, _, err := compileFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error compiling pipeline: %v\n", err)
			os.Exit(1)
		}

		output := graph.GenerateMermaid(result.Root)

		if pretty && term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
			renderer := tui.NewRenderer()
			md := fmt.Sprintf("```mermaid\n%s```\n", output)
			if rendered, err := renderer(md); err == nil {
				fmt.Print(rendered)
				return
			}
		}
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("pretty", false, "Render with terminal styling when stdout is a TTY")
}
