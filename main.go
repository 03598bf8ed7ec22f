package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/apiclient"
	"github.com/Rajankit27/FakeNewsDetection/internal/config"
	"github.com/Rajankit27/FakeNewsDetection/internal/crypto"
	"github.com/Rajankit27/FakeNewsDetection/internal/notify"
	"github.com/Rajankit27/FakeNewsDetection/internal/render"
	"github.com/Rajankit27/FakeNewsDetection/internal/server"
	"github.com/Rajankit27/FakeNewsDetection/internal/service"
	"github.com/Rajankit27/FakeNewsDetection/internal/session"
)

func main() {
	cfgPath := "configs/config.yml"
	if p := os.Getenv("FND_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.Log.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	gin.SetMode(cfg.Server.Mode)

	keys, err := crypto.DeriveKeys(cfg.Session.Secret)
	if err != nil {
		logger.Fatal("Failed to derive session keys", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := session.Open(ctx, cfg, keys.Token, logger)
	if err != nil {
		logger.Fatal("Failed to open session store", zap.Error(err))
	}
	defer store.Close()

	routes, err := apiclient.RoutesFor(cfg.Backend.Routes)
	if err != nil {
		logger.Fatal("Invalid backend route set", zap.Error(err))
	}
	backend := apiclient.NewClient(cfg.Backend.URL, routes, cfg.BackendTimeout(), logger)

	var notifier service.Notifier = service.NopNotifier{}
	bot, err := notify.NewTelegram(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Telegram notifications, continuing without them", zap.Error(err))
	} else if bot != nil {
		notifier = bot
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		logger.Fatal("Failed to load templates", zap.Error(err))
	}

	srv, err := server.NewServer(cfg, server.Deps{
		Store:    store,
		Cookies:  session.NewCookies(cfg.Session.CookieName, keys.Cookie, cfg.Session.SecureCookie),
		Backend:  backend,
		Notifier: notifier,
		Renderer: renderer,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to build server", zap.Error(err))
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Application stopped.")
}
