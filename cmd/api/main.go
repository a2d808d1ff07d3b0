package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/macroprep/backend/config"
	"github.com/macroprep/backend/internal/api"
	"github.com/macroprep/backend/internal/router"
	"github.com/macroprep/backend/internal/server"
	"github.com/macroprep/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	providerClient := &http.Client{Timeout: cfg.ProviderTimeout}

	// Load the reference tables once; they are read-only afterwards.
	supabase := service.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseKey, providerClient, logger)
	loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	dataset, err := service.LoadDataset(loadCtx, supabase, logger)
	cancel()
	if err != nil {
		logger.Fatal("failed to load reference data", zap.Error(err))
	}

	userStore, err := newUserStore(cfg)
	if err != nil {
		logger.Fatal("failed to open user registry", zap.Error(err))
	}

	resolver := service.NewResolver(dataset)
	nutrition := service.NewNutritionEngine(dataset)
	llm := service.NewLLMService(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL, providerClient, logger)
	instacart := service.NewInstacartService(cfg.InstacartAPIKey, cfg.InstacartAPIURL, providerClient, logger)
	verifier := service.NewTwilioVerifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioVerifyServiceID)
	identity := service.NewIdentityService(verifier, userStore, cfg.JWTSecret, logger)

	engine := router.Setup(
		api.NewRecipeHandler(dataset, resolver, nutrition, logger),
		api.NewChatHandler(resolver, llm, logger),
		api.NewShoppingHandler(instacart, logger),
		api.NewAuthHandler(identity, logger),
		identity,
	)

	srv := server.New(cfg, engine, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newUserStore(cfg *config.Config) (service.UserStore, error) {
	switch cfg.UserStoreDriver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.UsersDBPath), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return service.NewGormUserStore(db)
	default:
		return service.NewFileUserStore(cfg.UsersFile), nil
	}
}
