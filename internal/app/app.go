package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/league-ledger/internal/config"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	cacherepo "github.com/riskibarqy/league-ledger/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/guard"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/league-ledger/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-ledger/internal/platform/cache"
	"github.com/riskibarqy/league-ledger/internal/platform/changefeed"
	idgen "github.com/riskibarqy/league-ledger/internal/platform/id"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
	"github.com/riskibarqy/league-ledger/internal/usecase"
)

// NewHTTPServer wires the store, change feed and services behind the HTTP
// router. The returned cleanup releases the feed and the store; ctx bounds
// the background change listener.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}

	broker, err := changefeed.NewBroker(cfg.FeedWorkers, logger)
	if err != nil {
		_ = repos.close()
		return nil, nil, err
	}
	cleanup := func() {
		broker.Close()
		if err := repos.close(); err != nil {
			logger.Error("close store failed", "error", err)
		}
	}

	var (
		suspensionRepo suspension.Repository = repos.suspensions
		matchRepo      match.Repository      = repos.matches
		rosterRepo     roster.Repository     = repos.roster
		cacheStore     *cache.Store
	)
	if cfg.StoreCircuit.Enabled {
		breaker := guard.NewBreaker(cfg.StoreCircuit, logger)
		suspensionRepo = guard.NewSuspensionRepository(suspensionRepo, breaker)
		matchRepo = guard.NewMatchRepository(matchRepo, breaker)
		rosterRepo = guard.NewRosterRepository(rosterRepo, breaker)
	}
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
		suspensionRepo = cacherepo.NewSuspensionRepository(suspensionRepo, cacheStore)
		matchRepo = cacherepo.NewMatchRepository(matchRepo, cacheStore)
		rosterRepo = cacherepo.NewRosterRepository(rosterRepo, cacheStore)
		logger.Info("store cache enabled", "ttl", cfg.CacheTTL.String())
	}

	// With the postgres listener on, every committed write (ours included)
	// arrives through NOTIFY, so services must not publish a second time.
	var publisher docstore.Publisher = broker
	if cfg.StoreDriver == config.StorePostgres && cfg.DBListenEnabled {
		startListener(ctx, cfg, broker, cacheStore, logger)
		publisher = docstore.NopPublisher{}
	}

	adminHash, err := resolveAdminHash(cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if adminHash == "" {
		logger.Warn("admin password is not configured, write routes are locked")
	}

	league := usecase.NewLeague(cfg.LeagueTeams)
	ids := idgen.NewUUIDGenerator()
	discipline := usecase.NewDisciplineService(suspensionRepo, rosterRepo, league, ids, publisher, logger)
	handler := httpapi.NewHandler(
		discipline,
		usecase.NewMatchService(matchRepo, discipline, league, ids, publisher, logger),
		usecase.NewRosterService(rosterRepo, league, ids, publisher, logger),
		usecase.NewLeagueViewService(matchRepo, suspensionRepo, broker, league, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, httpapi.NewAdminGate(adminHash), logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func startListener(ctx context.Context, cfg config.Config, broker *changefeed.Broker, cacheStore *cache.Store, logger *logging.Logger) {
	listener := sqlstore.NewListener(normalizeDBURL(cfg.DBURL, cfg.DBApplicationName), broker, logger)
	if cacheStore != nil {
		// Another instance may have written; drop everything cached.
		listener.OnChange(func(docstore.Change) {
			cacheStore.Flush(ctx)
		})
	}

	go func() {
		if err := listener.Run(ctx); err != nil {
			logger.Error("change listener stopped", "error", err)
		}
	}()
}

func resolveAdminHash(cfg config.Config) (string, error) {
	if cfg.AdminPasswordHash != "" {
		return cfg.AdminPasswordHash, nil
	}
	if cfg.AdminPassword == "" {
		return "", nil
	}
	return httpapi.HashAdminPassword(cfg.AdminPassword)
}
