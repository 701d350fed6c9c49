// votelistener is an example embedding application: it publishes a server
// count once on startup, then listens for directory vote webhooks and logs
// each vote together with the voter's profile.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"botdirectory/directory"
	"botdirectory/internal/config"
	"botdirectory/internal/logging"
	"botdirectory/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting_votelistener",
		"bot_id", cfg.BotID,
		"webhook_addr", cfg.WebhookAddr,
		"token", logging.MaskToken(cfg.Token),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := directory.New(cfg.BotID, cfg.Token, directory.WithLogger(logger))

	if cfg.ServerCount != nil {
		if err := client.PostStats(ctx, directory.StatsUpdate{ServerCount: cfg.ServerCount}); err != nil {
			logger.Warn("stats_publish_failed", "error", err)
		} else {
			logger.Info("stats_published", "server_count", *cfg.ServerCount)
		}
	}

	listener := webhook.NewListener(cfg.WebhookSecret, webhook.WithLogger(logger))
	if err := listener.Start(cfg.WebhookAddr); err != nil {
		logger.Error("webhook_listen_failed", "error", err)
		os.Exit(1)
	}

	go consumeVotes(ctx, logger, client, listener)

	// graceful shutdown
	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting_down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := listener.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", "error", err)
	}
}

func consumeVotes(ctx context.Context, logger *slog.Logger, client *directory.Client, listener *webhook.Listener) {
	for vote := range listener.Votes() {
		logger.Info("vote_received",
			"bot", vote.BotID,
			"user", vote.UserID,
			"kind", vote.Kind,
			"weekend", vote.IsWeekend,
		)

		userID, err := strconv.ParseUint(vote.UserID, 10, 64)
		if err != nil {
			logger.Warn("vote_user_id_not_numeric", "user", vote.UserID)
			continue
		}

		profile, err := client.User(ctx, userID)
		if err != nil {
			logger.Warn("voter_lookup_failed", "user", vote.UserID, "error", err)
			continue
		}
		logger.Info("voter_profile", "user", vote.UserID, "username", profile.Username)
	}
}
