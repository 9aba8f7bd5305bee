package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/cache"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/config"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/health"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/jewelry-storefront/internal/services"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/tracing"
	"github.com/aaravmahajanofficial/jewelry-storefront/pkg/completion"
	"github.com/aaravmahajanofficial/jewelry-storefront/pkg/sendGrid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	shutdownTracer, err := tracing.InitTracer(context.Background(), cfg.Otel)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repo, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repo.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if now, err := repo.Now(context.Background()); err != nil {
		slog.Error("❌ Database check failed", slog.String("error", err.Error()))
		os.Exit(1)
	} else {
		slog.Info("✅ Connected to database", slog.Time("db_time", now))
	}

	// Redis is optional; without it the catalog is uncached and rate limits are off
	catalogCache := cache.NewNoopCache()
	var limiter middleware.RateLimiter
	var redisClient *redis.Client

	if cfg.RedisConnect.Enabled {
		redisClient, err = repository.NewRedisClient(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		catalogCache = cache.NewRedisCache(redisClient, &cfg.Cache)
		limiter = repository.NewRateLimitRepo(redisClient, cfg.RateConfig)
	}

	var mailer service.Mailer
	if cfg.SendGrid.APIKey != "" && cfg.SendGrid.FromEmail != "" {
		mailer = sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid is not configured, welcome emails are disabled")
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	if len(jwtKey) == 0 {
		slog.Warn("JWT_KEY is not set, login is disabled")
	}

	store := repository.NewStore(repo.DB)
	txRunner := repository.NewTxRunner(repo.DB)
	completionClient := completion.NewOpenAIClient(cfg.Completion.APIKey, cfg.Completion.BaseURL, cfg.Completion.Model, cfg.Completion.Timeout)

	catalogHandler := handlers.NewCatalogHandler(service.NewCatalogService(store.Products, store.Categories, catalogCache, cfg.Cache.DefaultTTL))
	cartHandler := handlers.NewCartHandler(service.NewCartService(store.Cart, txRunner))
	wishlistHandler := handlers.NewWishlistHandler(service.NewWishlistService(store.Wishlist, txRunner))
	orderHandler := handlers.NewOrderHandler(service.NewOrderService(store.Orders, txRunner))
	customerHandler := handlers.NewCustomerHandler(service.NewCustomerService(store.Customers, jwtKey))
	communityHandler := handlers.NewCommunityHandler(service.NewNewsletterService(store.Newsletter, mailer), service.NewFeedbackService(store.Feedback))
	assistantHandler := handlers.NewAssistantHandler(service.NewAssistantService(completionClient))
	systemHandler := handlers.NewSystemHandler(repo)

	identity := middleware.NewIdentityResolver(jwtKey, cfg.Identity.DevFallback, cfg.Identity.DefaultUserID)
	if cfg.Identity.DevFallback {
		slog.Warn("⚠️ Identity dev fallback is enabled, unauthenticated callers act as a default user", slog.Int64("default_user_id", cfg.Identity.DefaultUserID))
	}

	assistantLimit := middleware.RateLimit(limiter, "assistant", cfg.RateConfig.TrustForwardedFor)
	loginLimit := middleware.RateLimit(limiter, "login", cfg.RateConfig.TrustForwardedFor)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.Bool("redis", redisClient != nil))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("GET /api", systemHandler.Root())
	routerMux.HandleFunc("GET /api/hello", systemHandler.Hello())
	routerMux.HandleFunc("GET /api/test-db", systemHandler.TestDB())

	routerMux.HandleFunc("GET /api/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/categories/{id}", catalogHandler.GetCategory())

	routerMux.HandleFunc("GET /api/cart", identity.Resolve(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/cart/add", identity.Resolve(cartHandler.AddToCart()))
	routerMux.HandleFunc("PUT /api/cart/update/{id}", identity.Resolve(cartHandler.UpdateCart()))
	routerMux.HandleFunc("DELETE /api/cart/remove/{id}", identity.Resolve(cartHandler.RemoveFromCart()))
	routerMux.HandleFunc("DELETE /api/cart/clear", identity.Resolve(cartHandler.ClearCart()))

	routerMux.HandleFunc("GET /api/wishlist", identity.Resolve(wishlistHandler.GetWishlist()))
	routerMux.HandleFunc("POST /api/wishlist/add", identity.Resolve(wishlistHandler.AddToWishlist()))
	routerMux.HandleFunc("DELETE /api/wishlist/remove/{id}", identity.Resolve(wishlistHandler.RemoveFromWishlist()))

	routerMux.HandleFunc("POST /api/orders", identity.Resolve(orderHandler.PlaceOrder()))
	routerMux.HandleFunc("GET /api/orders", identity.Resolve(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/order_items/{orderId}", identity.Resolve(orderHandler.ListOrderItems()))

	routerMux.Handle("POST /api/customers/signup", customerHandler.Signup())
	routerMux.Handle("POST /api/customers/login", loginLimit(customerHandler.Login()))
	routerMux.HandleFunc("PUT /api/customers/{id}", identity.Resolve(customerHandler.UpdateCustomer()))
	routerMux.HandleFunc("PUT /api/customers/{id}/password", identity.Resolve(customerHandler.UpdatePassword()))

	routerMux.HandleFunc("POST /api/newsletter", communityHandler.Subscribe())
	routerMux.HandleFunc("POST /api/feedback", communityHandler.SubmitFeedback())

	routerMux.Handle("POST /api/chat", assistantLimit(assistantHandler.Chat()))
	routerMux.Handle("POST /api/ask", assistantLimit(assistantHandler.Ask()))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// storefront assets
	routerMux.Handle("GET /", handlers.StaticFiles(cfg.HTTPServer.StaticDir))

	// Middleware chaining
	handler := middleware.Chain(routerMux,
		middleware.Logging,
		middleware.CORS(),
		middleware.NoStore,
		metrics.Middleware,
	)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      otelhttp.NewHandler(handler, cfg.Otel.ServiceName),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}
