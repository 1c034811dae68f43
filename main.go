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

	"tube-catalog/domain/repository"
	"tube-catalog/infrastructure/cache"
	youtubeclient "tube-catalog/infrastructure/clients/youtube"
	"tube-catalog/infrastructure/configuration"
	"tube-catalog/infrastructure/logger"
	"tube-catalog/infrastructure/persistence"
	httpHandler "tube-catalog/interfaces/http"
	"tube-catalog/server"
	"tube-catalog/usecase"

	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := configuration.C

	catalog, closeCatalog, err := initiateCatalog(ctx, cfg)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("backend", cfg.Catalog.Backend).Error("Catalog backend initialization failed")
		os.Exit(1)
	}
	defer closeCatalog()

	categoryStore := initiateCategoryStore(ctx, cfg, catalog)

	var categoryClient repository.ICategoryClient
	if client, err := youtubeclient.NewCategoryClient(ctx, cfg.YouTube.APIKey); err != nil {
		logger.GetLogger().WithField("error", err).Warn("YouTube category source not available - only cached regions will resolve")
	} else {
		categoryClient = client
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalog, usecase.NewCategoryResolver(categoryStore, categoryClient)).
		WithLimits(cfg.Catalog.DefaultLimit, cfg.Catalog.MaxLimit)
	router := server.InitiateRouter(httpHandler.NewCatalogHandler(catalogUseCase), cfg.App.AllowedOrigins)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.GetLogger().WithField("port", cfg.App.Port).WithField("backend", cfg.Catalog.Backend).Info("Starting application")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.GetLogger().Info("Application shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateCatalog connects the configured backend and returns it with its cleanup.
func initiateCatalog(ctx context.Context, cfg configuration.Config) (repository.ICatalog, func(), error) {
	switch cfg.Catalog.Backend {
	case configuration.BackendCassandra:
		c := cfg.Database.Cassandra
		session, err := persistence.NewCassandraSession(persistence.CassandraConfig{
			Hosts:       c.Hosts,
			Keyspace:    c.Keyspace,
			User:        c.User,
			Password:    c.Password,
			Consistency: c.Consistency,
			Timeout:     c.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.GetLogger().WithField("hosts", c.Hosts).Info("Cassandra connected successfully")
		return persistence.NewCatalogRepositoryCassandra(persistence.NewCQLRunner(session)), session.Close, nil

	case configuration.BackendMongo:
		m := cfg.Database.Mongo
		client, err := persistence.NewMongoDb(m.Host, m.Port, m.User, m.Password, m.Name)
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("ping mongo: %w", err)
		}
		logger.GetLogger().Info("MongoDB connected successfully")
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.GetLogger().WithField("error", err).Warn("MongoDB disconnect failed")
			}
		}
		return persistence.NewCatalogRepositoryMongo(client.Database(m.Name)), closeFn, nil
	}
	return nil, nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
}

// initiateCategoryStore prefers Redis when configured and reachable, and the
// catalog backend otherwise.
func initiateCategoryStore(ctx context.Context, cfg configuration.Config, catalog repository.ICatalog) repository.ICategoryStore {
	if cfg.Catalog.CategoryStore != configuration.CategoryStoreRedis {
		return catalog
	}
	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", cfg.RedisClient.Host, cfg.RedisClient.Port),
		cfg.RedisClient.Username,
		cfg.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - storing categories in the catalog backend")
		return catalog
	}
	logger.GetLogger().Info("Redis client initialized successfully.")
	return cache.NewCategoryCache(redisClient, cfg.Catalog.CategoryTTL)
}
