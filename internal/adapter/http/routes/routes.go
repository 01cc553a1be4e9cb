package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/configs"
	"storefront/internal/adapter/http/middleware"
	"storefront/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Run will start the server
func Run() {
	cfg, err := configs.Load(getenvDefault("STOREFRONT_CONFIG_DIR", "configs"), os.Getenv("APP_ENV"))
	if err != nil {
		slog.Error("[app][startup] config load failed", "error", err.Error())
		os.Exit(1)
	}

	log := logging.Init(logging.Options{
		Component: cfg.App.Name,
		FilePath:  cfg.App.LogFile,
		Level:     logging.ParseLevel(cfg.App.LogLevel),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApplication(ctx, cfg)
	if err != nil {
		log.Error("[app][startup] wiring failed", "error", err.Error())
		os.Exit(1)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.App.HTTPAddr,
		Handler:           NewRouter(app.Handlers, logging.New("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("[app][startup] listening", "addr", cfg.App.HTTPAddr, "store", cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("[app][startup] failed to start the server", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("[app][shutdown] draining")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("[app][shutdown] server shutdown", "error", err.Error())
	}
}

// NewRouter mounts every route under /v1 plus /metrics and /swagger.
func NewRouter(h Handlers, base *slog.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, base)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCartRoutes(v1, h.Cart)
	addCheckoutRoutes(v1, h.Checkout)
	addGiftCardRoutes(v1, h.GiftCards)
	addAuthRoutes(v1, h.Auth)
	addFavoritesRoutes(v1, h.Favorites)
	return router
}

func setMiddlewares(router *gin.Engine, base *slog.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.From(c).Error("[app][http] recovered from panic", "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.Logging(base))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
