package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/go_storefront/internal/cache"
	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/chat"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/config"
	"github.com/fjod/go_storefront/internal/domain"
	h "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/inventory"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/fjod/go_storefront/internal/payment"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/fjod/go_storefront/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	log := logger.New("storefront", zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log = logger.New("storefront", logger.ParseLevel(cfg.App.LogLevel))

	// Catalog
	repo, err := catalog.NewRepository(cfg.Catalog.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog database")
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.Catalog.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("catalog migrations completed")

	// Inventory with simulated stock drift
	invStore := inventory.NewStore()
	simulator := inventory.NewSimulator(log, invStore, cfg.Inventory.DriftInterval)
	defer simulator.Close()

	// Notifications: in-memory feed for the UI, plus Kafka when configured
	feed := notify.NewMemorySink()
	var sink notify.Sink = feed
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink := notify.NewKafkaSink(cfg.Kafka.Topic, cfg.Kafka.Brokers...)
		defer kafkaSink.Close()
		sink = notify.Fanout{feed, kafkaSink}
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("kafka sink enabled")
	}

	charger := payment.NewProcessor(cfg.Payment.ProcessingDelay)

	sessions := session.NewStore(func(userID string) *session.Session {
		c := session.NewCart()
		seedDemoCart(c)
		return &session.Session{
			ID:   userID,
			Chat: chat.NewService(log.With().Str("user_id", userID).Logger(), cfg.Chat.ReplyDelay),
			Cart: c,
			Flow: checkout.NewFlow(log.With().Str("user_id", userID).Logger(), charger, sink, c),
		}
	})
	defer sessions.Close()

	// Cart view cache
	var viewCache cache.ViewCache = cache.Nop{}
	if cfg.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		viewCache = cache.NewRedisCache(client)
		log.Info().Str("addr", cfg.Redis.Address).Msg("redis cart view cache enabled")
	}
	views := cart.NewService(sessions, viewCache, log)

	router := h.NewRouter(h.RouterConfig{
		RequestTimeout: cfg.App.RequestTimeout,
		Chat:           h.NewChatHandler(sessions),
		Cart:           h.NewCartHandler(log, sessions, views, repo, sink),
		Inventory:      h.NewInventoryHandler(log, invStore, sessions, views, sink),
		Checkout:       h.NewCheckoutHandler(log, sessions, views),
		Notifications:  h.NewNotificationsHandler(feed),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("storefront starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// seedDemoCart pre-fills new sessions so the demo opens with a familiar
// two-item cart.
func seedDemoCart(c *domain.Cart) {
	bananas := domain.Product{
		ID:       101,
		Name:     "Great Value Organic Bananas",
		Category: domain.CategoryGroceries,
		Price:    decimal.RequireFromString("2.48"),
	}
	tv := domain.Product{
		ID:       102,
		Name:     `Samsung 55" 4K Smart TV`,
		Category: domain.CategoryElectronics,
		Price:    decimal.RequireFromString("398.00"),
	}

	cart.AddItem(c, bananas)
	cart.AddItem(c, bananas)
	cart.AddItem(c, tv)
}
