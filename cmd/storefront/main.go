package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/phoneshop-web/internal/api/http"
	"github.com/spec-kit/phoneshop-web/internal/api/http/handlers"
	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/config"
	"github.com/spec-kit/phoneshop-web/internal/events"
	"github.com/spec-kit/phoneshop-web/internal/notice"
	"github.com/spec-kit/phoneshop-web/internal/observability"
	"github.com/spec-kit/phoneshop-web/internal/persistence"
	"github.com/spec-kit/phoneshop-web/internal/service"
	"github.com/spec-kit/phoneshop-web/internal/session"
	"github.com/spec-kit/phoneshop-web/internal/worker"
)

const sessionHeartbeat = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	loc, err := cfg.App.Location()
	if err != nil {
		logger.Fatal("invalid time zone", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store session.Store
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		rdb := persistence.OpenRedis(ctx, cfg.Redis, logger)
		defer rdb.Close() //nolint:errcheck
		store = session.NewRedisStore(rdb)
	case config.SessionBackendPostgres:
		pool, err := persistence.OpenPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to open postgres", zap.Error(err))
		}
		defer pool.Close()
		store = session.NewPostgresStore(pool)
	default:
		store = session.NewMemoryStore()
	}
	logger.Info("session store ready", zap.String("backend", cfg.Session.Backend))

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	sessions := session.NewManager(store, dispatcher, cfg.Session.TTL(), logger)

	api := client.New(cfg.API.BaseURL, cfg.API.Timeout())
	notices := notice.NewBuilder(cfg.Notice.Dismiss())
	cookies := session.CookieOptions{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure}

	reviews := service.NewReviewService(api)
	cart := service.NewCartService(api)
	wishlist := service.NewWishlistService(api)
	sessionHandler := handlers.NewSessionHandler(sessions, sessionHeartbeat)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:   logger,
		Metrics:  metrics,
		Notices:  notices,
		Timeout:  cfg.App.RequestTimeout(),
		Sessions: sessions,
		Cookies:  cookies,
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{"sessions": sessions}, metrics),
		Auth:      handlers.NewAuthHandler(service.NewAuthService(api, sessions, logger), cookies, notices),
		Session:   sessionHandler,
		Catalog:   handlers.NewCatalogHandler(service.NewCatalogService(api, cfg.Catalog.FeaturedCount), cart, wishlist, reviews, notices),
		Cart:      handlers.NewCartHandler(cart, wishlist, notices),
		Orders:    handlers.NewOrdersHandler(service.NewOrderService(api), notices, loc),
		Products:  handlers.NewProductsHandler(service.NewProductService(api), reviews, notices),
		Accounts:  handlers.NewAccountsHandler(service.NewAccountService(api), notices),
		Discounts: handlers.NewDiscountsHandler(service.NewDiscountService(api), notices),
		Reports:   handlers.NewReportsHandler(service.NewReportService(api)),
		Profile:   handlers.NewProfileHandler(service.NewProfileService(api), notices),
		Metrics:   metrics,
	})

	sweeperDone := worker.StartSessionSweeper(ctx, sessions, cfg.Session.SweepInterval(), logger)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	sessionHandler.Close()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
	cancel()
	<-sweeperDone
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
