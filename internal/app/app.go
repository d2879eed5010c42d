package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"metalwatch/internal/adapters"
	"metalwatch/internal/adapters/cache"
	"metalwatch/internal/api"
	"metalwatch/internal/config"
	httpserver "metalwatch/internal/platform/http"
	"metalwatch/internal/quote"
	"metalwatch/internal/quote/handler"
	"metalwatch/internal/store"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and the
// staleness watchdog.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Last-known-value store and reply idempotency cache
	quoteStore := store.New()
	replyCache, err := cache.NewReplyCache(appCfg.ReplyCache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create reply cache")
		return err
	}
	defer replyCache.Close()
	logrus.Info("✅ Reply cache created")

	clock := adapters.SystemClock{}

	// Services
	quoteService := quote.NewService(quoteStore, clock)
	watchdog := quote.NewWatchdog(
		quoteStore,
		clock,
		time.Duration(appCfg.Watchdog.IntervalSeconds)*time.Second,
		time.Duration(appCfg.Watchdog.MaxAgeMinutes)*time.Minute,
	)
	// Ensure watchdog stops before the process exits
	defer func() {
		if shutDownErr := watchdog.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Watchdog shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := watchdog.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start watchdog")
		return startErr
	}
	logrus.Info("✅ Staleness watchdog activation successful")

	// Handlers and router
	quoteHandler := handler.NewHandler(quoteService, quoteStore, replyCache)
	router := api.NewRouter(quoteHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
