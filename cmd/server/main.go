package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	apihttp "alumni-trace-backend/internal/api/http"
	"alumni-trace-backend/internal/config"
	"alumni-trace-backend/internal/email"
	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/repository/firestore"
	"alumni-trace-backend/internal/security"
	"alumni-trace-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting alumni tracking server", "address", cfg.GetServerAddress())

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
	tokens := security.NewTokenManager(cfg.Auth.TokenSecret)
	identity := service.MailIdentity{
		Sender:        email.Party{Name: cfg.Mail.SenderName, Email: cfg.Mail.SenderEmail},
		RegistrarName: cfg.Mail.RegistrarName,
	}

	alumniSvc := service.NewAlumniService(store.Alumni)
	consultationSvc := service.NewConsultationService(store.Requests, store.Alumni, store.DispatchLogs, mailer, identity)
	authSvc := service.NewAuthService(
		cfg.Auth.PasswordHash,
		cfg.Mail.RegistrarName,
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute,
		tokens,
	)
	diagSvc := service.NewDiagService(mailer, store, identity)

	router := apihttp.NewRouter(apihttp.RouterConfig{
		Auth:          apihttp.NewAuthHandler(authSvc),
		Alumni:        apihttp.NewAlumniHandler(alumniSvc),
		Consultations: apihttp.NewConsultationHandler(consultationSvc),
		Diag:          apihttp.NewDiagHandler(diagSvc),
		Tokens:        tokens,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
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
