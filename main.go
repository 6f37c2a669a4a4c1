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
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/giftgenie-teelab/server/internal/api"
	"github.com/giftgenie-teelab/server/internal/catalog"
	"github.com/giftgenie-teelab/server/internal/core"
	"github.com/giftgenie-teelab/server/internal/llm"
	"github.com/giftgenie-teelab/server/internal/model"
	"github.com/giftgenie-teelab/server/internal/recommend"
	"github.com/giftgenie-teelab/server/internal/store"
	"github.com/giftgenie-teelab/server/internal/upload"
	"github.com/giftgenie-teelab/server/pkg/database"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
	pkgredis "github.com/giftgenie-teelab/server/pkg/redis"
)

// AppConfig defines all configurable parameters of the server,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Port        string `envconfig:"PORT" default:"3000"`

	// Infrastructure
	Database database.Config
	Redis    pkgredis.Config

	// Upstreams
	Shopify    catalog.ShopifyConfig
	Generation model.GenerationModelConfig

	Cache  model.CatalogCacheConfig
	Upload model.UploadConfig
}

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		logx.Warn().Err(err).Msg("Could not load .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("Failed to process environment config")
	}

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})
	gin.SetMode(env.GinMode())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ====================================================
	// Persistence
	db, err := cfg.Database.New()
	if err != nil {
		logx.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to open database")
	}
	defer database.Close(db)

	gateway := store.NewGateway(db)
	if err := gateway.Migrate(ctx); err != nil {
		logx.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// ====================================================
	// Catalog
	shopify, err := catalog.NewShopify(cfg.Shopify)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to create Shopify catalog")
	}
	var products model.Catalog = shopify

	if cfg.Redis.Enabled() {
		ttl, err := time.ParseDuration(cfg.Cache.TTL)
		if err != nil {
			logx.Fatal().Err(err).Str("ttl", cfg.Cache.TTL).Msg("Invalid CATALOG_CACHE_TTL")
		}
		rdb, err := cfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
		}
		defer rdb.Close()

		products = catalog.NewCached(shopify, rdb, ttl)
		logx.Info().Dur("ttl", ttl).Msg("Catalog cache enabled")
	}

	// ====================================================
	// Generation
	chatModel, err := llm.NewGeminiChatModel(ctx, cfg.Generation)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to create generation model")
	}
	generator, err := llm.NewClient(ctx, chatModel, cfg.Generation.Model)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to create generation client")
	}

	pipeline := recommend.NewPipeline(products, generator, cfg.Shopify.StorefrontURL)

	// ====================================================
	// HTTP
	images, err := upload.NewStore(cfg.Upload)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to prepare upload directory")
	}

	handlers := api.NewHandlers(pipeline, gateway, gateway, images, gateway)
	router := api.NewRouter(handlers, api.StaticDir{Prefix: images.PublicPrefix(), Dir: images.Dir()})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logx.Info().Str("addr", srv.Addr).Str("env", env.String()).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logx.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
