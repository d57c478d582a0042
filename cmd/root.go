package cmd

import (
	"time"

	"github.com/penwern/curate-museum-crosswalk/internal"
	"github.com/penwern/curate-museum-crosswalk/pkg/config"
	"github.com/penwern/curate-museum-crosswalk/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	addr  string
	serve bool
)

var RootCmd = &cobra.Command{
	Use:   "crosswalk",
	Short: "Curate Museum Crosswalk",
	Long: `Curate Museum Crosswalk

Normalizes museum collection metadata (Linked Art JSON-LD, LIDO XML and EDM) into one canonical artwork record.
If the --serve flag is provided, the tool will start a HTTP server.
Otherwise, use the convert command to convert files from the CLI.
Environment configuration is loaded from the environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !serve {
			return cmd.Help()
		}

		ctx := cmd.Context()
		startTime := time.Now()

		cfg := loadConfig()
		defer func() {
			logger.Debug("Execution time: %vs", time.Since(startTime).Seconds())
		}()

		svc, err := internal.NewService(ctx, cfg)
		if err != nil {
			logger.Fatal("Error creating service: %v", err)
		}
		defer svc.Close()

		listen := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			listen = addr
		}
		logger.Info("Starting HTTP server on %s", listen)
		if err := internal.Serve(ctx, svc, listen, cfg.Server.MaxBodyBytes); err != nil {
			logger.Fatal("Error starting HTTP server: %v", err)
		}
		return nil
	},
}

// loadConfig loads the configuration and initializes the logger from it.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Error loading configuration:\n%v", err)
	}
	logger.Initialize(cfg.LogLevel)
	return cfg
}

func init() {
	cobra.OnInitialize(config.Init)

	RootCmd.Flags().BoolVar(&serve, "serve", false, "Start HTTP server")
	RootCmd.Flags().StringVar(&addr, "addr", ":6906", "HTTP listen address (with --serve)")

	RootCmd.AddCommand(convertCmd)
	RootCmd.AddCommand(versionCmd)
}
