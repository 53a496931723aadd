package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/api"
	"github.com/arnav/studyflow/internal/config"
	"github.com/arnav/studyflow/internal/db"
	"github.com/arnav/studyflow/internal/insight"
	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/repository/sqlite"
	"github.com/arnav/studyflow/internal/services"
	"github.com/arnav/studyflow/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("StudyFlow Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("insight_url=%s", cfg.InsightURL)
	log.Debug("insight_worker_count=%d", cfg.InsightWorkerCount)
	log.Debug("insight_queue_size=%d", cfg.InsightQueueSize)
	log.Debug("streak_lookback_days=%d", cfg.StreakLookbackDays)
	log.Debug("accountability_window=%d", cfg.AccountabilityWindow)
	log.Debug("daily_question_goal=%d", cfg.DailyQuestionGoal)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	params := analytics.Params{
		StreakLookbackDays:   cfg.StreakLookbackDays,
		AccountabilityWindow: cfg.AccountabilityWindow,
		DailyQuestionGoal:    cfg.DailyQuestionGoal,
		MotivationHighPerDay: cfg.MotivationHighPerDay,
		MotivationMedPerDay:  cfg.MotivationMedPerDay,
		ReadinessWeights:     cfg.ReadinessWeights,
		StreakMilestones:     cfg.DefaultStreakMilestones,
	}

	// Repositories
	sessionRepo := sqlite.NewSessionRepository(database.DB)
	taskRepo := sqlite.NewTaskRepository(database.DB)
	targetRepo := sqlite.NewTargetRepository(database.DB)
	chapterRepo := sqlite.NewChapterRepository(database.DB)
	tagRepo := sqlite.NewTagRepository(database.DB)
	triggerRepo := sqlite.NewTriggerRepository(database.DB)
	profileRepo := sqlite.NewProfileRepository(database.DB)

	// Services
	insightClient := insight.New(cfg.InsightURL, time.Duration(cfg.InsightTimeoutSecs)*time.Second)
	insightService := services.NewInsightService(insightClient, sessionRepo, taskRepo, params, nil)
	sessionService := services.NewSessionService(sessionRepo, chapterRepo, targetRepo, triggerRepo, params, nil)
	taskService := services.NewTaskService(taskRepo, triggerRepo, params, nil)
	targetService := services.NewTargetService(targetRepo, sessionRepo, params, nil)
	tagService := services.NewTagService(tagRepo)
	triggerService := services.NewTriggerService(triggerRepo)
	profileService := services.NewProfileService(profileRepo, tagService)
	dashboardService := services.NewDashboardService(sessionRepo, chapterRepo, targetService, taskService, insightService, params, nil)

	// Worker pool for background insight generation
	insightPool := worker.NewPool(cfg.InsightWorkerCount, cfg.InsightQueueSize)
	queue := &worker.Queue{Pool: insightPool, Insights: insightService}

	srv := &api.Server{
		Profiles:  profileService,
		Sessions:  sessionService,
		Tasks:     taskService,
		Targets:   targetService,
		Tags:      tagService,
		Triggers:  triggerService,
		Dashboard: dashboardService,
		Insights:  insightService,
		Queue:     queue,
	}

	ctx, cancel := context.WithCancel(context.Background())
	insightPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping insight pool")
	insightPool.Stop()

	log.Info("===========================================")
	log.Info("StudyFlow Server Stopped")
	log.Info("===========================================")
}
