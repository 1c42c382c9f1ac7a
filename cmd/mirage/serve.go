package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mirageproc/mirage"
	"github.com/mirageproc/mirage/internal/adapters/httpapi"
	"github.com/mirageproc/mirage/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the frame preview server",
	Long:  `Starts an HTTP server that runs one generation round per request, serving frames as PNG with prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")

		result, logger, err := compileFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error compiling pipeline: %v\n", err)
			os.Exit(1)
		}

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics()
		if err := metrics.Register(reg); err != nil {
			fmt.Printf("Error registering metrics: %v\n", err)
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
			mirage.WithLifecycleHooks(metrics.Hooks()),
		)
		if err != nil {
			fmt.Printf("Error building generator: %v\n", err)
			os.Exit(1)
		}

		handler := httpapi.NewHandler(gen, reg)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Mirage Server on %s\n", srv.Addr)
			fmt.Printf("Serving pipeline: %s\n", name)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Mirage Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
