package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"alumni-trace-backend/internal/config"
	"alumni-trace-backend/internal/email"
	"alumni-trace-backend/internal/jobs"
	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/repository/firestore"
	"alumni-trace-backend/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to configuration file")
	runOnce := flag.Bool("run-once", false, "run all jobs once and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting alumni tracking cronjob")

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.Firestore.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID}, opts...)
	if err != nil {
		logger.Error("Failed to initialize Firebase app", "error", err)
		os.Exit(1)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	store := firestore.NewStore(client)
	mailer := newDispatcher(cfg)

	if cfg.Mail.RegistrarEmail == "" {
		logger.Warn("No registrar email configured; digest and reminder emails will fail to send")
	}

	runner := jobs.NewJobRunner(
		store.Alumni,
		store.Requests,
		mailer,
		email.Party{Name: cfg.Mail.SenderName, Email: cfg.Mail.SenderEmail},
		email.Party{Name: cfg.Mail.RegistrarName, Email: cfg.Mail.RegistrarEmail},
		cfg.Scheduler.StaleAfterDays,
	)

	if *runOnce {
		logger.Info("Running all jobs once")
		runner.RunAllDailyJobs()
		logger.Info("All jobs finished")
		return
	}

	sched := scheduler.New(runner, cfg.Scheduler)
	if err := sched.Start(); err != nil {
		logger.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Shutting down", "signal", sig.String())

	sched.Stop()
	logger.Info("Cronjob stopped")
}

func newDispatcher(cfg *config.Config) email.Dispatcher {
	switch cfg.Mail.Provider {
	case "brevo":
		return email.NewBrevoDispatcher(cfg.Mail.APIKey, cfg.Mail.Endpoint)
	case "sendgrid":
		return email.NewSendGridDispatcher(cfg.Mail.APIKey)
	default:
		return email.NewConsoleDispatcher()
	}
}
