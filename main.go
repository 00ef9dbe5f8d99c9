package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "artwork-auctions/internal/auctionService"
	"artwork-auctions/internal/auth"
	"artwork-auctions/internal/cache"
	"artwork-auctions/internal/config"
	"artwork-auctions/internal/events"
	"artwork-auctions/internal/metrics"
	model "artwork-auctions/internal/models"
	"artwork-auctions/internal/repository"
	"artwork-auctions/internal/server"
	handler "artwork-auctions/services/auction/handler"
	"artwork-auctions/utils"
)

const (
	shutdownTimeout = 10 * time.Second

	// per-user offer buckets idle this long are dropped
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	if err := cfg.Validate(); err != nil {
		utils.Fatal("invalid config", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Fatal("invalid log level", map[string]any{"error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, artworks, closeStore := openStore(ctx, cfg)
	defer closeStore()

	m := metrics.New()
	opts := []auction.Option{
		auction.WithMetrics(m),
		auction.WithStartGrace(cfg.StartTimeGrace),
	}

	if cfg.RedisAddr != "" {
		rdb, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			utils.Fatal("failed to connect to redis", map[string]any{"addr": cfg.RedisAddr, "error": err.Error()})
		}
		defer rdb.Close()
		opts = append(opts, auction.WithRankingCache(cache.NewRedisRankingCache(rdb, cfg.RankingCacheTTL)))
		utils.Info("ranking cache enabled", map[string]any{"addr": cfg.RedisAddr, "ttl": cfg.RankingCacheTTL.String()})
	}

	if cfg.NATSURL != "" {
		conn, err := events.Connect(cfg.NATSURL)
		if err != nil {
			utils.Fatal("failed to connect to nats", map[string]any{"url": cfg.NATSURL, "error": err.Error()})
		}
		defer conn.Drain()
		opts = append(opts, auction.WithPublisher(events.NewNATSPublisher(conn, cfg.NATSSubjectPrefix)))
		utils.Info("offer events enabled", map[string]any{"url": cfg.NATSURL, "prefix": cfg.NATSSubjectPrefix})
	}

	service := auction.NewAuctionService(repo, artworks, opts...)

	offerLimiter := server.NewUserRateLimiter(cfg.OfferRateLimitRPS, cfg.OfferRateLimitBurst)
	offerLimiter.StartCleanup(ctx, limiterSweepInterval, limiterIdleTTL)

	router := server.SetupRouter(service, server.Options{
		Resolver:       auth.NewJWTResolver(cfg.JWTSecret),
		Metrics:        m,
		RequestTimeout: cfg.RequestTimeout,
		OfferLimiter:   offerLimiter,
		Handler: handler.HandlerConfig{
			DiscoverDefaultCount: cfg.DiscoverDefaultCount,
			DiscoverMaxCount:     cfg.DiscoverMaxCount,
		},
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": cfg.ServerAddress, "store": cfg.StoreBackend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server stopped unexpectedly", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}

// openStore builds the configured backend and returns a cleanup func
func openStore(ctx context.Context, cfg config.Config) (repository.AuctionDB, repository.ArtworkLookup, func()) {
	if cfg.StoreBackend == config.BackendMemory {
		repo := repository.NewMemoryRepo()
		prepopulateArtworks(repo, cfg.JWTSecret)
		return repo, repo, func() {}
	}

	db, err := repository.OpenPostgres(ctx, cfg.PostgresConn)
	if err != nil {
		utils.Fatal("failed to open postgres", map[string]any{"error": err.Error()})
	}
	if cfg.RunMigrations {
		if err := repository.Migrate(db); err != nil {
			closeDB(db)
			utils.Fatal("failed to run migrations", map[string]any{"error": err.Error()})
		}
		utils.Info("migrations applied", nil)
	}
	return repository.NewPostgresRepo(db), repository.NewPostgresArtworkLookup(db), func() { closeDB(db) }
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		utils.Warn("failed to close database", map[string]any{"error": err.Error()})
	}
}

// prepopulateArtworks adds demo artworks to the in-memory repo and logs a
// short-lived token per owner at debug level for local testing
func prepopulateArtworks(repo *repository.MemoryRepo, secret string) {
	artworks := []model.Artwork{
		{ID: 1, OwnerID: 1},
		{ID: 2, OwnerID: 1},
		{ID: 3, OwnerID: 2},
	}

	for _, artwork := range artworks {
		repo.AddArtwork(artwork)
	}

	for _, userID := range []int64{1, 2, 3} {
		token, err := auth.IssueToken(secret, userID, 24*time.Hour)
		if err != nil {
			utils.Warn("failed to issue demo token", map[string]any{"user_id": userID, "error": err.Error()})
			continue
		}
		utils.Debug("demo token", map[string]any{"user_id": userID, "token": token})
	}
}
