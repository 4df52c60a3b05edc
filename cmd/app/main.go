package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"
	"logistics/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var (
	envFile  string
	port     string
	seedPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "logistics",
		Short:        "Registry of vehicles, customers and shipments",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "YAML or JSON seed file (overrides SEED_PATH)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and run the registry audit job",
		RunE: func(c *cobra.Command, _ []string) error {
			return serve(c.Context())
		},
	}
	serveCmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides HTTP_PORT)")

	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Run the interactive console on stdin and stdout",
		RunE: func(c *cobra.Command, _ []string) error {
			return runConsole(c.Context())
		},
	}

	rootCmd.AddCommand(serveCmd, consoleCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("logistics: %v", err)
	}
}

// bootstrap loads the configuration, applies flag overrides and loads the
// seed file into a fresh composition root.
func bootstrap(ctx context.Context) (*cmd.CompositionRoot, cmd.Config, error) {
	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return nil, config, err
	}
	if port != "" {
		config.HTTPPort = port
	}
	if seedPath != "" {
		config.SeedPath = seedPath
	}
	if err := config.Validate(); err != nil {
		return nil, config, err
	}

	l, err := logger.New(os.Stderr, config.LogLevel, config.LogFormat)
	if err != nil {
		return nil, config, err
	}

	app, err := cmd.NewCompositionRoot(config, l)
	if err != nil {
		return nil, config, err
	}

	if config.SeedPath != "" {
		if _, err := app.NewSeedLoader().LoadFile(ctx, config.SeedPath); err != nil {
			return nil, config, err
		}
	}

	return app, config, nil
}

func serve(ctx context.Context) error {
	app, config, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	e := app.NewEcho()
	jobManager := app.NewJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func runConsole(ctx context.Context) error {
	app, _, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	err = app.NewConsole(os.Stdin, os.Stdout).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
