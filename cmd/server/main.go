package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myflix/internal/config"
	"myflix/internal/core/auth"
	"myflix/internal/core/movie"
	"myflix/internal/core/user"
	"myflix/internal/logger"
	"myflix/internal/storage/postgres"
	redisstore "myflix/internal/storage/redis"
	"myflix/internal/transport/rest"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if cfg.JWTSecret == "" {
		panic("FATAL: JWT_SECRET is mandatory for Server!")
	}

	dbPool, err := postgres.InitDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to init DB", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	movieRepo := postgres.NewMovieRepository(dbPool)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	var catalogCache movie.Cache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		catalogCache = redisstore.NewCache(redis.NewClient(opts), cfg.CatalogCacheTTL)
		log.Info("catalog cache enabled", "ttl", cfg.CatalogCacheTTL)
	}

	authService := auth.NewService(userRepo, hasher, tokens)
	movieService := movie.NewService(movieRepo, catalogCache)
	userService := user.NewService(userRepo, hasher)

	router := rest.NewRouter(cfg, &rest.RouterDeps{
		Auth:  rest.NewAuthHandler(authService),
		Movie: rest.NewMovieHandler(movieService),
		User:  rest.NewUserHandler(userService),

		Verifier: authService,
		Log:      log,
	})

	srv := rest.NewServer(router, cfg.Address)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http: server error", "error", err)
	}

	log.Info("server stopped")
}
