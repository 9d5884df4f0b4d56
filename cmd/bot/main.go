package main

import (
	"log"

	"github.com/moneywise/client-go/internal/api"
	"github.com/moneywise/client-go/internal/bot"
	"github.com/moneywise/client-go/internal/config"
	"github.com/moneywise/client-go/internal/logging"
	"github.com/moneywise/client-go/internal/service"
	"github.com/moneywise/client-go/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.Setup(cfg.LogLevel)

	storage, err := session.OpenSQLite(cfg.StatePath)
	if err != nil {
		logger.WithError(err).Fatal("open session storage")
	}
	store := session.NewStore(storage)
	defer store.Close()

	client := api.New(cfg.APIBaseURL, store,
		api.WithLogger(logger),
		api.WithUnauthorizedHook(store.Invalidate),
	)
	auth := session.NewManager(client, store)
	tracker := service.NewTracker(client)

	b, err := bot.New(cfg.TelegramToken, auth, store, tracker, logger)
	if err != nil {
		logger.WithError(err).Fatal("create bot")
	}

	logger.WithField("api_url", cfg.APIBaseURL).Info("bot started")
	if err := b.Start(); err != nil {
		logger.WithError(err).Fatal("bot stopped")
	}
}
