package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/aphrc/internship-tracker/api/swagger"
	"github.com/aphrc/internship-tracker/internal/handler"
	internalmiddleware "github.com/aphrc/internship-tracker/internal/middleware"
	"github.com/aphrc/internship-tracker/internal/repository"
	"github.com/aphrc/internship-tracker/internal/service"
	"github.com/aphrc/internship-tracker/pkg/cache"
	"github.com/aphrc/internship-tracker/pkg/config"
	"github.com/aphrc/internship-tracker/pkg/logger"
	corsmiddleware "github.com/aphrc/internship-tracker/pkg/middleware/cors"
	reqidmiddleware "github.com/aphrc/internship-tracker/pkg/middleware/requestid"
	"github.com/aphrc/internship-tracker/pkg/storage"
)

// @title Internship Tracker API
// @version 1.0.0
// @description Intern and supervisor dashboards of the internship tracker
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()

	var redisClient *redis.Client
	if cfg.Roster.CacheEnabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis, 3*time.Second)
		if err != nil {
			logr.Warn("redis unavailable, roster cache disabled", zap.Error(err))
			redisClient = nil
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Roster.CacheTTL, logr, redisClient != nil)

	seed := repository.DefaultSeed()
	participantRepo := repository.NewParticipantRepository(seed.Participants)
	profileRepo := repository.NewProfileRepository(seed.Profiles)
	documentRepo := repository.NewDocumentRepository(seed.Documents)
	weeklyRepo := repository.NewWeeklySummaryRepository(seed.WeeklyHistory)

	exportStorage, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Fatal("failed to prepare export storage", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

	runner := service.NewSubmissionRunner(service.SubmissionRunnerConfig{
		Workers: cfg.Submissions.Workers,
		Latency: cfg.Submissions.Latency,
	}, metrics, logr)
	// The runner outlives the signal context so requests accepted during
	// shutdown still settle; Stop fails whatever has not run.
	runner.Start(context.Background())
	defer runner.Stop()

	feed := service.NewNotificationService(0, metrics, logr)
	rosterSvc := service.NewRosterService(participantRepo, cacheSvc, service.RosterServiceConfig{
		IndexThreshold: cfg.Roster.IndexThreshold,
		CacheTTL:       cfg.Roster.CacheTTL,
	}, logr)
	exportSvc := service.NewExportService(rosterSvc, exportStorage, signer, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Exports.SignedURLTTL,
	}, logr)
	profileSvc := service.NewProfileService(profileRepo, rosterSvc, runner, feed, logr)
	weeklySvc := service.NewWeeklySummaryService(weeklyRepo, rosterSvc, runner, feed, logr)
	feedbackSvc := service.NewFeedbackService(rosterSvc, profileSvc, runner, feed, logr)
	documentSvc := service.NewDocumentService(documentRepo, cfg.Documents.CapacityBytes, validator.New(), feed, logr)

	go runExportCleanup(ctx, exportSvc, cfg.Exports.SignedURLTTL, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))
	r.Use(internalmiddleware.WithResponseMeta())

	metricsHandler := handler.NewMetricsHandler(metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.EnableDocs && cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r.Group(cfg.APIPrefix), handler.Handlers{
		Views:         handler.NewViewHandler(),
		Roster:        handler.NewRosterHandler(rosterSvc, exportSvc),
		Profile:       handler.NewProfileHandler(profileSvc),
		WeeklySummary: handler.NewWeeklySummaryHandler(weeklySvc),
		Feedback:      handler.NewFeedbackHandler(feedbackSvc),
		Documents:     handler.NewDocumentHandler(documentSvc),
		Notifications: handler.NewNotificationHandler(feed),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

func runExportCleanup(ctx context.Context, exports *service.ExportService, every time.Duration, logr *zap.Logger) {
	if every <= 0 {
		every = time.Hour
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := exports.Cleanup(); err != nil {
				logr.Warn("export cleanup failed", zap.Error(err))
			}
		}
	}
}
