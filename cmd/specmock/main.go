package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/specmock-project/specmock-go/internal/config"
	"github.com/specmock-project/specmock-go/internal/server"
	"github.com/specmock-project/specmock-go/internal/spec"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

var (
	flagPort    string
	flagWatch   bool
	flagMetrics bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "specmock <spec-file>",
		Short:        "Mock HTTP server driven entirely by an OpenAPI contract",
		Long:         "specmock serves a mock backend for the given OpenAPI specification:\nroutes, parameter validation, authentication requirements and response\nbodies all derive from the contract, with no handler code.",
		Version:      fmt.Sprintf("%s (%s)", Version, Commit),
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&flagPort, "port", "p", "", "listen port (default: dynamically assigned)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload the contract when the specification file changes")
	rootCmd.Flags().BoolVar(&flagMetrics, "metrics", false, "expose Prometheus metrics at /metrics")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cmd.Flags().Changed("port") {
		cfg.ServerPort = flagPort
	}
	if cmd.Flags().Changed("watch") {
		cfg.WatchEnabled = flagWatch
	}
	if cmd.Flags().Changed("metrics") {
		cfg.MetricsEnabled = flagMetrics
	}

	specPath := args[0]
	contract, err := spec.Load(specPath)
	if err != nil {
		// no partial-contract degraded mode: a bad specification aborts startup
		return fmt.Errorf("failed to load specification: %w", err)
	}

	srv := server.New(cfg, specPath, contract)
	return srv.Start()
}
