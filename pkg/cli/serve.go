package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/polyrpc/demoapi/pkg/config"
	"github.com/polyrpc/demoapi/pkg/httpapi"
	"github.com/polyrpc/demoapi/pkg/logging"
	"github.com/polyrpc/demoapi/pkg/service"
)

var (
	servePort    int
	serveNoSeed  bool
	serveLogJSON bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if serveNoSeed {
			cfg.Seed = false
		}
		if serveLogJSON {
			cfg.Log.Format = "json"
		}

		log := logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.Log.Level),
			Format: logging.ParseFormat(cfg.Log.Format),
		})

		store := service.NewStore()
		if cfg.Seed {
			store = service.NewSeededStore()
		}
		svc := service.New(store, service.WithLogger(log))
		api := httpapi.New(svc, cfg.Port,
			httpapi.WithLogger(log),
			httpapi.WithAllowedOrigins(cfg.AllowedOrigins),
		)

		errCh := make(chan error, 1)
		go func() {
			errCh <- api.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			log.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return api.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveNoSeed, "no-seed", false, "Start with empty collections")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Log in JSON format")
	rootCmd.AddCommand(serveCmd)
}
