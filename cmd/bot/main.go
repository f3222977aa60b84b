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

	"github.com/diegoclair/slack-birthday-bot/internal/config"
	"github.com/diegoclair/slack-birthday-bot/internal/database"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/service"
	"github.com/diegoclair/slack-birthday-bot/internal/gateway"
	"github.com/diegoclair/slack-birthday-bot/internal/handlers"
	"github.com/diegoclair/slack-birthday-bot/internal/logger"
	"github.com/diegoclair/slack-birthday-bot/migrator/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

func main() {
	runOnce := flag.Bool("run-once", false, "run the birthday check for all workspaces once and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	gw := gateway.New(gateway.NewSlackAPI(slackClient), gateway.Options{
		CallTimeout: cfg.GatewayCallTimeout,
		RatePerSec:  cfg.GatewayRatePerSec,
	}, log)

	svc := service.NewInstance(database.NewInstance(db), gw, service.Options{
		Location:             cfg.Location,
		TickInterval:         cfg.TickInterval,
		PageSize:             cfg.PageSize,
		RetentionDays:        cfg.LedgerRetentionDays,
		MaxConcurrentTenants: cfg.MaxConcurrentTenants,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *runOnce {
		if err := runAll(ctx, svc, log); err != nil {
			log.Errorf("Run failed: %v", err)
			db.Close()
			os.Exit(1)
		}
		return
	}

	if err := svc.Scheduler.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	handler := handlers.New(svc.Birthday, cfg.SlackSigningSecret, cfg.Location, time.Now, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/slack/events", handler.HandleEvents)
	mux.HandleFunc("/slack/interactions", handler.HandleInteractions)
	mux.HandleFunc("/health", handler.HandleHealth)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("failed to shut down http server")
	}
	if err := svc.Scheduler.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("failed to stop scheduler")
	}
}

// runAll is the operator trigger: one pass over every configured workspace
func runAll(ctx context.Context, svc *service.Instance, log logrus.FieldLogger) error {
	summary, err := svc.Birthday.RunOnce(ctx, entity.RunOptions{})
	if err != nil {
		return err
	}

	for _, outcome := range summary.Outcomes {
		fields := logrus.Fields{
			"run_id":    summary.RunID,
			"tenant_id": outcome.Result.TenantID,
			"matched":   outcome.Result.Matched,
			"sent":      outcome.Result.Sent,
			"failed":    outcome.Result.Failed,
			"revoked":   outcome.Revoked,
			"skipped":   outcome.Result.Skipped,
		}
		if outcome.Err != nil {
			log.WithFields(fields).WithError(outcome.Err).Error("workspace run failed")
			continue
		}
		log.WithFields(fields).Info("workspace run finished")
	}

	sent, failed, errored := summary.Totals()
	fmt.Printf("run %s for %s: %d workspaces, %d sent, %d failed, %d errored\n",
		summary.RunID, summary.Date, len(summary.Outcomes), sent, failed, errored)

	if !summary.Succeeded() {
		return fmt.Errorf("%d deliveries failed and %d workspaces errored", failed, errored)
	}
	return nil
}
