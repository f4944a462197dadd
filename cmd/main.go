package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "driverlogs/docs"
	"driverlogs/internal/geocode"
	"driverlogs/internal/handlers"
	"driverlogs/internal/logger"
	"driverlogs/internal/repository"
	"driverlogs/internal/repository/db"
	"driverlogs/internal/server"
	"driverlogs/internal/service"

	"github.com/spf13/viper"
)

const defaultBackfillTick = 15 * time.Minute

// @title Driver Logs API
// @version 1.0
// @description HOS compliance and route statistics backend for truck-driver daily logs.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	geo := geocode.NewClient(geocodeConfig(), repos.LocationRepo)
	services := service.NewService(repos, geo, authConfig())
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start the coordinate backfill sweep (via composed service)
	go services.Backfill.Run(ctx, backfillTick())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "driverlogs.db")
		dbPath = "driverlogs.db"
	}
	return db.InitDB(dbPath)
}

func authConfig() service.AuthConfig {
	return service.AuthConfig{
		SigningKey: viper.GetString("auth.signingKey"),
		TokenTTL:   viper.GetDuration("auth.tokenTTL"),
	}
}

func geocodeConfig() geocode.Config {
	return geocode.Config{
		BaseURL:     viper.GetString("geocode.baseURL"),
		UserAgent:   viper.GetString("geocode.userAgent"),
		Timeout:     viper.GetDuration("geocode.timeout"),
		MinInterval: viper.GetDuration("geocode.minInterval"),
	}
}

func backfillTick() time.Duration {
	if d := viper.GetDuration("backfill.tick"); d > 0 {
		return d
	}
	return defaultBackfillTick
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
