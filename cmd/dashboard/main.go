package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/forestshield/forestshield-be/internal/config"
	"github.com/forestshield/forestshield-be/internal/dashboard"
	"github.com/forestshield/forestshield-be/internal/logger"
	"github.com/forestshield/forestshield-be/internal/predict"
)

func main() {
	logger.Init()

	cfg, err := config.LoadDashboard()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client := predict.NewClient(cfg.PredictURL)
	server := dashboard.NewServer(client)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("predict_url", cfg.PredictURL).Msg("Dashboard starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down dashboard...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Dashboard forced to shutdown")
	}

	log.Info().Msg("Dashboard exiting")
}
