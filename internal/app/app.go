package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ejo3h9612/currencyDemo/internal/adapters/httpclient"
	"github.com/Ejo3h9612/currencyDemo/internal/adapters/postgres"
	"github.com/Ejo3h9612/currencyDemo/internal/api"
	"github.com/Ejo3h9612/currencyDemo/internal/config"
	"github.com/Ejo3h9612/currencyDemo/internal/forex"
	"github.com/Ejo3h9612/currencyDemo/internal/forex/handler"
	"github.com/Ejo3h9612/currencyDemo/internal/platform/db"
	httpserver "github.com/Ejo3h9612/currencyDemo/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
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

	// Bounded context for startup operations (DB connect)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External client for the daily rates feed
	rateSource := httpclient.NewDailyRatesClient(
		baseHTTPClient,
		appCfg.ForexAPI.URL,
		appCfg.ForexAPI.CurrencyPair,
	)

	// Repository and services
	rateRepo := postgres.NewRateRepository(pool)
	forexService := forex.NewService(rateSource, rateRepo, appCfg.ForexAPI.CurrencyPair)
	rangeValidator := forex.NewRangeValidator(nil)

	scheduler := forex.NewScheduler(forexService, appCfg.Scheduler.FetchAt)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	forexHandler := handler.NewForexHandler(rangeValidator, forexService)
	router := api.NewRouter(forexHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
