package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"clubops/internal/app"
	"clubops/internal/application/services"
	"clubops/internal/deployment"
	"clubops/internal/httpapi"
	"clubops/internal/sheets"
	"clubops/internal/store/postgres"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	interval := flag.Duration("interval", 5*time.Minute, "Interval between report cycles (e.g., 5m, 1h)")
	runOnce := flag.Bool("once", false, "Run one cycle and exit (don't start scheduler)")
	serve := flag.Bool("serve", false, "Also serve the HTTP API")
	flag.Parse()

	log.Info().
		Dur("interval", *interval).
		Bool("run_once", *runOnce).
		Bool("serve", *serve).
		Msg("Starting club operations application")

	// Load configuration
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.UpdateInterval = *interval

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize store and clients
	store, err := postgres.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer store.Close()

	sheetsClient, err := sheets.NewClient(ctx, config.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}
	manager := sheets.NewReportManager(sheetsClient, config.SpreadsheetID)

	var publisher services.SnapshotPublisher
	if config.DeployURL != "" {
		publisher = deployment.NewPublisher(config.DeployURL)
	}

	// Wire services
	roster := services.NewRosterService(store)
	schedule := services.NewScheduleService(store)
	reconcile := services.NewReconciliationService(store)
	report := services.NewReportService(roster, schedule, manager, publisher)

	// Define the main processing function
	runCycle := func() {
		log.Debug().Msg("Starting report cycle")

		completed, err := reconcile.Run(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to reconcile socialings")
			return
		}

		if err := report.Generate(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to generate report")
			return
		}

		log.Info().
			Int("auto_completed", completed).
			Msg("Completed report cycle")
	}

	if *serve {
		server := httpapi.NewServer(roster, schedule, reconcile, store)
		go func() {
			if err := server.ListenAndServe(ctx, config.HTTPAddr); err != nil {
				log.Fatal().Err(err).Msg("HTTP server failed")
			}
		}()
	}

	// Run initial cycle
	log.Info().Msg("Running initial report cycle")
	runCycle()

	// Exit if run-once flag is set
	if *runOnce {
		log.Info().Msg("Run-once mode: exiting after initial cycle")
		return
	}

	// Start scheduled processing
	log.Info().
		Dur("interval", *interval).
		Msg("Starting scheduled report cycles")

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutdown signal received, exiting")
			return
		case <-ticker.C:
			runCycle()
		}
	}
}
