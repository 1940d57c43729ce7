package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "webland/docs"
	"webland/internal/config"
	"webland/internal/controller"
	"webland/internal/handler"
	"webland/internal/models"
	"webland/internal/service"
	"webland/internal/store"
	"webland/pkg/database"
	"webland/pkg/integrations/chanpubsub"
	"webland/pkg/integrations/kvstore"
	"webland/pkg/integrations/notify"
	pricesService "webland/pkg/integrations/prices"
	"webland/pkg/integrations/prices/coingecko"
	"webland/pkg/integrations/prices/simulated"
	"webland/pkg/integrations/tabs"
	"webland/pkg/integrations/translate"
	"webland/pkg/integrations/weather"
	"webland/pkg/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Webland Sidebar API
// @version 1.0
// @description Local backend for the Webland browser side-panel

// @host localhost:8385
// @BasePath /

func main() {
	utils.LoadEnv()

	cfg, err := config.Load(utils.GetEnv("WEBLAND_CONFIG", "config.yaml"))
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(database.WithPath(cfg.Database.Path))
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	backend, err := kvstore.New(db.Get())
	if err != nil {
		log.Fatal("Failed to initialize key-value store:", err)
	}

	notes, err := store.NewCollection[models.Note](models.KeyNotes, backend, logger)
	if err != nil {
		log.Fatal("Failed to open notes collection:", err)
	}
	bookmarks, err := store.NewCollection[models.Bookmark](models.KeyBookmarks, backend, logger)
	if err != nil {
		log.Fatal("Failed to open bookmarks collection:", err)
	}
	todos, err := store.NewCollection[models.Todo](models.KeyTodos, backend, logger)
	if err != nil {
		log.Fatal("Failed to open todos collection:", err)
	}
	cryptoNotes, err := store.NewCollection[models.Note](models.KeyCryptoNotes, backend, logger)
	if err != nil {
		log.Fatal("Failed to open crypto notes collection:", err)
	}
	links, err := store.NewCollection[models.Link](models.KeyCryptoLinks, backend, logger)
	if err != nil {
		log.Fatal("Failed to open links collection:", err)
	}
	watchlist, err := store.NewCollection[models.WatchlistEntry](models.KeyWatchlist, backend, logger)
	if err != nil {
		log.Fatal("Failed to open watchlist collection:", err)
	}
	calculations, err := store.NewCollection[models.Calculation](models.KeyCalculations, backend, logger)
	if err != nil {
		log.Fatal("Failed to open calculations collection:", err)
	}
	portfolio, err := store.NewCollection[models.PortfolioPosition](models.KeyPortfolio, backend, logger)
	if err != nil {
		log.Fatal("Failed to open portfolio collection:", err)
	}
	alerts, err := store.NewCollection[models.PriceAlert](models.KeyPriceAlerts, backend, logger)
	if err != nil {
		log.Fatal("Failed to open alerts collection:", err)
	}

	simOptions := []simulated.Option{}
	if cfg.Crypto.CoinsFile != "" {
		base, err := simulated.LoadBasePrices(cfg.Crypto.CoinsFile)
		if err != nil {
			log.Fatal("Failed to load coins file:", err)
		}
		simOptions = append(simOptions, simulated.WithBasePrices(base))
	}

	newLive := func() *coingecko.Client {
		client := coingecko.NewClient()
		client.VsCurrency = cfg.Crypto.VsCurrency
		return client
	}

	// Watchlist quotes drift tighter than portfolio ones when the live
	// source is down.
	watchlistPrices := pricesService.NewService(
		pricesService.WithLive(newLive()),
		pricesService.WithSimulated(simulated.NewSource(append(simOptions, simulated.WithBound(0.025))...)),
		pricesService.WithLogger(logger),
	)
	portfolioPrices := pricesService.NewService(
		pricesService.WithLive(newLive()),
		pricesService.WithSimulated(simulated.NewSource(append(simOptions, simulated.WithBound(0.05))...)),
		pricesService.WithLogger(logger),
	)

	// Persisted quotes seed the fallback so a cold start without
	// network drifts from the last known prices.
	for _, entry := range watchlist.Load() {
		watchlistPrices.Seed(entry.CoinID, entry.Price)
	}
	for _, position := range portfolio.Load() {
		portfolioPrices.Seed(position.CoinID, position.CurrentPrice)
	}

	cryptoCh := make(chan []byte, 10)
	cryptoSSECh := make(chan []byte, 10)
	cryptoPub := chanpubsub.New(
		chanpubsub.WithChannel(cryptoCh),
		chanpubsub.WithContext(ctx),
		chanpubsub.WithTopic("crypto"),
		chanpubsub.WithLogger(logger),
		chanpubsub.WithHandler(func(data []byte) error {
			select {
			case cryptoSSECh <- data:
			default:
				logger.Warn("crypto stream full, dropping message")
			}
			return nil
		}),
	)
	if err := cryptoPub.Subscribe(); err != nil {
		log.Fatal("Failed to start crypto stream subscriber:", err)
	}

	notifyCh := make(chan []byte, 10)
	notifySSECh := make(chan []byte, 10)
	notifyPub := chanpubsub.New(
		chanpubsub.WithChannel(notifyCh),
		chanpubsub.WithContext(ctx),
		chanpubsub.WithTopic("notifications"),
		chanpubsub.WithLogger(logger),
		chanpubsub.WithHandler(func(data []byte) error {
			select {
			case notifySSECh <- data:
			default:
				logger.Warn("notification stream full, dropping message")
			}
			return nil
		}),
	)
	if err := notifyPub.Subscribe(); err != nil {
		log.Fatal("Failed to start notification subscriber:", err)
	}

	alertSvc, err := service.NewAlertService(
		service.WithAlertLogger(logger),
		service.WithAlertCollection(alerts),
		service.WithAlertSink(notify.Fanout{
			notify.NewSlogSink(logger),
			notify.NewPubSink(notifyPub),
		}),
	)
	if err != nil {
		log.Fatal("Failed to create alert service:", err)
	}

	interval, err := cfg.RefreshInterval()
	if err != nil {
		log.Fatal("Failed to parse refresh interval:", err)
	}

	watchlistRefresh, err := service.NewWatchlistRefreshService(
		service.WithWatchlistRefreshContext(ctx),
		service.WithWatchlistRefreshLogger(logger),
		service.WithWatchlistRefreshCollection(watchlist),
		service.WithWatchlistRefreshSource(watchlistPrices),
		service.WithWatchlistRefreshPublisher(cryptoPub),
		service.WithWatchlistRefreshAlerts(alertSvc),
		service.WithWatchlistRefreshInterval(interval),
	)
	if err != nil {
		log.Fatal("Failed to create watchlist refresh service:", err)
	}

	portfolioRefresh, err := service.NewPortfolioRefreshService(
		service.WithPortfolioRefreshContext(ctx),
		service.WithPortfolioRefreshLogger(logger),
		service.WithPortfolioRefreshCollection(portfolio),
		service.WithPortfolioRefreshSource(portfolioPrices),
		service.WithPortfolioRefreshPublisher(cryptoPub),
		service.WithPortfolioRefreshInterval(interval),
	)
	if err != nil {
		log.Fatal("Failed to create portfolio refresh service:", err)
	}

	if err := watchlistRefresh.Start(); err != nil {
		log.Fatal("Failed to start watchlist refresh service:", err)
	}
	if err := portfolioRefresh.Start(); err != nil {
		log.Fatal("Failed to start portfolio refresh service:", err)
	}

	ctrl, err := controller.New(
		controller.WithLogger(logger),
		controller.WithCollections(controller.Collections{
			Notes:        notes,
			Bookmarks:    bookmarks,
			Todos:        todos,
			CryptoNotes:  cryptoNotes,
			Links:        links,
			Watchlist:    watchlist,
			Calculations: calculations,
			Portfolio:    portfolio,
			Alerts:       alerts,
		}),
		controller.WithSettingsBackend(backend),
		controller.WithPriceSource(watchlistPrices),
		controller.WithWeatherService(weather.NewService(
			weather.WithAPIKey(cfg.Weather.APIKey),
			weather.WithLogger(logger),
		)),
		controller.WithTranslateService(translate.NewService(
			translate.WithEndpoint(cfg.Translate.Endpoint),
			translate.WithAPIKey(cfg.Translate.APIKey),
			translate.WithLogger(logger),
		)),
		controller.WithTabAccessor(tabs.NewChromeAccessor(cfg.Browser.DebugURL)),
		controller.WithWatchlistRefresh(watchlistRefresh),
		controller.WithPortfolioRefresh(portfolioRefresh),
	)
	if err != nil {
		log.Fatal("Failed to create controller:", err)
	}

	r := gin.Default()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h, err := handler.New(
		handler.WithEngine(r),
		handler.WithController(ctrl),
		handler.WithCryptoStream(cryptoSSECh),
		handler.WithNotificationStream(notifySSECh),
	)
	if err != nil {
		log.Fatal("Failed to create handler:", err)
	}
	h.Setup()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutting down...")
		watchlistRefresh.Stop()
		portfolioRefresh.Stop()
		cancel()
		db.Close()
		os.Exit(0)
	}()

	logger.Info("starting webland backend", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
