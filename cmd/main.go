package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"climacontrol/internal/handlers"
	"climacontrol/internal/logger"
	"climacontrol/internal/repository"
	"climacontrol/internal/repository/db"
	"climacontrol/internal/server"
	"climacontrol/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; it only overrides config in local setups.
	_ = godotenv.Load()

	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	if err := repository.Seed(context.Background(), repos); err != nil {
		log.Fatalw("failed to seed database", "err", err)
	}
	services := service.NewService(repos, log)
	apiHandler := handlers.NewHandler(services, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if viper.GetBool("scheduler.enabled") {
		if err := services.Scheduler.Sync(ctx); err != nil {
			log.Fatalw("failed to load routines into scheduler", "err", err)
		}
		services.Scheduler.Start()
	}

	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	waitForShutdown(cancel, srv, services, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "climacontrol.db")
		dbPath = "climacontrol.db"
	}
	return db.Open(dbPath)
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

// waitForShutdown listens for termination signals and performs graceful
// shutdown: scheduler first, then in-flight HTTP requests.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, services *service.Service, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	cancel()
	services.Scheduler.Stop()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
