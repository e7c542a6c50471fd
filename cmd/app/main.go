package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waiter/cmd"
	"waiter/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close order producer", "error", closeErr)
		}
	}()

	if err = run(ctx, app, configs.HTTPPort); err != nil {
		log.Fatal(err)
	}
}

// run serves HTTP and runs the jobs until ctx is cancelled or one of them fails.
func run(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.HideBanner = true
	if err := app.CreateHTTPServer().Register(e); err != nil {
		return err
	}

	jobManager := app.CreateJobManager()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := jobManager.StartAll(); err != nil {
			return err
		}
		<-gctx.Done()
		jobManager.StopAll()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
