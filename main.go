package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/buildwise/buildwise-backend/infra"
	"github.com/buildwise/buildwise-backend/repositories"
	"github.com/buildwise/buildwise-backend/usecases"
	"github.com/buildwise/buildwise-backend/utils"
)

type AppConfiguration struct {
	env       string
	port      string
	sentryDsn string
	pgConfig  infra.PgConfig
}

func loadConfiguration() AppConfiguration {
	return AppConfiguration{
		env:       utils.GetEnv("ENV", "development"),
		port:      utils.GetRequiredEnv[string]("PORT"),
		sentryDsn: utils.GetEnv("SENTRY_DSN", ""),
		pgConfig: infra.PgConfig{
			ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
			Database:           utils.GetEnv("PG_DATABASE", "buildwise"),
			Hostname:           utils.GetEnv("PG_HOSTNAME", "localhost"),
			Password:           utils.GetEnv("PG_PASSWORD", ""),
			Port:               utils.GetEnv("PG_PORT", "5432"),
			User:               utils.GetEnv("PG_USER", "postgres"),
			SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
			MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		},
	}
}

func runServer(ctx context.Context, conf AppConfiguration) error {
	logger := utils.LoggerFromContext(ctx)

	pool, err := infra.NewPostgresConnectionPool(ctx,
		conf.pgConfig.GetConnectionString(), conf.pgConfig.MaxPoolConnections)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := usecases.NewUsecases(repositories.NewRepositories(pool))

	router := initRouter(ctx, conf, uc)
	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%s", conf.port),
		Handler: router,

		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", conf.port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error serving the app", "error", err.Error())
		}
	}()

	<-notify.Done()
	logger.InfoContext(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "run the database migrations")
	shouldRunServer := flag.Bool("server", false, "run the api server")
	flag.Parse()

	conf := loadConfiguration()
	logger := utils.NewLogger(utils.GetEnv("LOG_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if *shouldRunMigrations {
		if err := runMigrations(ctx, conf.pgConfig); err != nil {
			logger.ErrorContext(ctx, "failed to run migrations", "error", err.Error())
			panic(err)
		}
	}
	if *shouldRunServer {
		if err := runServer(ctx, conf); err != nil {
			panic(err)
		}
	}
}
