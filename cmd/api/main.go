package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"fashion-catalog/internal/cache"
	"fashion-catalog/internal/catalog"
	"fashion-catalog/internal/config"
	"fashion-catalog/internal/handlers"
	"fashion-catalog/internal/importer"
	"fashion-catalog/internal/loader"
	"fashion-catalog/internal/logger"
	"fashion-catalog/internal/metrics"
	"fashion-catalog/internal/normalizer"
	"fashion-catalog/internal/repository"
	"fashion-catalog/internal/routes"
	"fashion-catalog/internal/search"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.EnvError != nil {
		log.Warn().Err(cfg.EnvError).Msg(".env could not be loaded")
	}
	log.Info().Str("env", cfg.EnvSource).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	brands, err := search.LoadBrandTableFile(cfg.BrandTable)
	if err != nil {
		return err
	}
	log.Info().Int("brands", brands.Len()).Int("version", brands.Version()).Msg("brand table loaded")

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	responses := openCache(ctx, cfg, log)
	defer responses.Close()

	m := metrics.New()
	cat := catalog.New(search.NewEngine(brands))

	static, err := loader.New(brands, log).LoadFiles(ctx, cfg.StaticPaths())
	if err != nil {
		return err
	}
	cat.Replace(static, nil)

	imp := importer.New(store, cat, normalizer.New(log), log,
		importer.WithCache(responses),
		importer.WithMetrics(m),
	)
	if err := imp.Refresh(ctx); err != nil {
		return err
	}
	staticCount, importedCount := cat.Counts()
	log.Info().Int("static", staticCount).Int("imported", importedCount).Msg("📦 catalog ready")

	gin.SetMode(cfg.GinMode)
	router := routes.NewRouter(log, m)
	routes.RegisterRoutes(router, handlers.New(cat, imp, log, handlers.Options{
		Cache:       responses,
		Metrics:     m,
		CacheTTL:    cfg.CacheTTL,
		MaxUploadMB: cfg.MaxUploadMB,
	}))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore usa MongoDB si hay MONGO_URI; si no, un almacén en memoria
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.ImportStore, func(), error) {
	if cfg.MongoURI == "" {
		log.Warn().Msg("MONGO_URI not set: imports are kept in memory")
		return repository.NewMemoryImportStore(), func() {}, nil
	}

	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	store := repository.NewMongoImportStore(client.Database(cfg.MongoDB))
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	log.Info().Str("db", cfg.MongoDB).Msg("✅ connected to MongoDB")
	return store, disconnect(client, log), nil
}

func disconnect(client *mongo.Client, log zerolog.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}
}

// openCache usa Redis si hay REDIS_ADDR y responde; si no, el caché en memoria
func openCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) cache.Store {
	if cfg.RedisAddr != "" {
		r, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
		if err == nil {
			log.Info().Str("addr", cfg.RedisAddr).Msg("response cache on redis")
			return r
		}
		log.Warn().Err(err).Msg("redis unavailable, using in-memory cache")
	}
	return cache.NewMemory(cfg.CacheTTL)
}
