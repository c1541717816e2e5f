package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"luxera-storefront/internal/catalog"
	"luxera-storefront/internal/checkout"
	"luxera-storefront/internal/config"
	"luxera-storefront/internal/contact"
	"luxera-storefront/internal/httpserver"
	"luxera-storefront/internal/orderapi"
)

func main() {
	cfg := config.FromEnv()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront").Logger()

	cat := catalog.NewMemory()
	orders := orderapi.New(cfg.OrderAPIURL)
	sessions := checkout.NewSessions(cfg.SessionTTL, func() *checkout.Flow {
		return checkout.NewFlow(cat, orders, logger)
	})

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:  cat,
		Sessions: sessions,
		Orders:   orders,
		NewContactForm: func() *contact.Form {
			return contact.NewForm(orders, logger)
		},
		SessionTTL:     cfg.SessionTTL,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("orderApi", cfg.OrderAPIURL).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}
