package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ram-Jam5/movie-review-back-end/config"
	"github.com/Ram-Jam5/movie-review-back-end/database"
	"github.com/Ram-Jam5/movie-review-back-end/logger"
	"github.com/Ram-Jam5/movie-review-back-end/repository"
	"github.com/Ram-Jam5/movie-review-back-end/routes"
	"github.com/Ram-Jam5/movie-review-back-end/utils"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const serviceName = "movie-reviews"

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lg, err := logger.New(serviceName, cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		return err
	}
	log.Logger = lg
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	movies, users, closeStore, err := openStore(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeStore()

	deps := routes.NewDependencies(movies, users, utils.NewTokenManager(cfg.SecretKey, cfg.SecretRefreshKey), bcrypt.DefaultCost)
	deps.Production = cfg.IsProduction()
	for _, origin := range cfg.Origins() {
		lg.Info().Str("origin", origin).Msg("allowed origin")
	}
	router := routes.NewRouter(deps, routes.Options{
		AllowedOrigins: cfg.Origins(),
		RequestTimeout: cfg.RequestTimeout,
		Logger:         lg,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		lg.Info().Str("addr", srv.Addr).Str("store", cfg.StoreDriver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	lg.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
}

// openStore selects the persistence backend named by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, lg zerolog.Logger) (repository.MovieRepository, repository.UserRepository, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		lg.Warn().Msg("using in-memory store, data is lost on restart")
		return repository.NewMemoryMovieRepository(), repository.NewMemoryUserRepository(), func() {}, nil
	}

	client, err := database.Connect(ctx, cfg.MongoURL)
	if err != nil {
		return nil, nil, nil, err
	}
	db := client.Database(cfg.DatabaseName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, nil, err
	}
	lg.Info().Str("database", cfg.DatabaseName).Msg("connected to mongodb")

	closeFn := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			lg.Error().Err(err).Msg("disconnect from mongodb")
		}
	}
	return repository.NewMongoMovieRepository(db), repository.NewMongoUserRepository(db), closeFn, nil
}
