package main

import (
	"os"

	"github.com/truenorthmaterials/intake/internal/config"
	"github.com/truenorthmaterials/intake/internal/forms"
	"github.com/truenorthmaterials/intake/internal/logging"
	"github.com/truenorthmaterials/intake/internal/mailer"
	"github.com/truenorthmaterials/intake/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logging.Configure(&logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting intake service in %s mode", cfg.Environment)

	// Email is an optional capability: without a credential the pipeline
	// skips dispatch and submissions still succeed.
	var sender mailer.Sender
	if cfg.MailConfigured() {
		sender = mailer.NewResendSender(cfg.ResendAPIKey)
	} else {
		logger.Warn("RESEND_API_KEY not set. Notification emails are disabled")
	}

	pipeline := forms.NewPipeline(sender, mailer.Recipients{
		From: cfg.MailFrom,
		To:   cfg.MailTo,
		Cc:   cfg.MailCc,
	})

	srv := server.NewServer(cfg, pipeline)
	if err := srv.Start(); err != nil {
		logger.Error("Server exited: %v", err)
		os.Exit(1)
	}
}
