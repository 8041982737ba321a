package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/config"
	"github.com/campushire/driveport-backend/internal/database"
	"github.com/campushire/driveport-backend/internal/handler"
	"github.com/campushire/driveport-backend/internal/logger"
	"github.com/campushire/driveport-backend/internal/mailer"
	"github.com/campushire/driveport-backend/internal/repository"
	"github.com/campushire/driveport-backend/internal/router"
	"github.com/campushire/driveport-backend/internal/service"
	"github.com/campushire/driveport-backend/internal/validator"
	"github.com/campushire/driveport-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting DrivePort Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	companyRepo := repository.NewCompanyRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	collegeRepo := repository.NewCollegeRepository(pool)
	groupRepo := repository.NewStudentGroupRepository(pool)
	driveRepo := repository.NewDriveRepository(pool)
	targetRepo := repository.NewDriveTargetRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	emailRepo := repository.NewEmailConfigRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	companyService := service.NewCompanyService(companyRepo, authService, log)
	adminService := service.NewAdminService(adminRepo, authService, log)
	resolver := service.NewTargetResolver(collegeRepo, groupRepo, log)
	driveService := service.NewDriveService(driveRepo, targetRepo, questionRepo, resolver, log)
	referenceService := service.NewReferenceService(collegeRepo, groupRepo, targetRepo, rdb, log)
	questionService := service.NewQuestionService(driveRepo, questionRepo, log)
	studentService := service.NewStudentService(driveRepo, studentRepo, log)
	emailService := service.NewEmailService(cfg, driveRepo, companyRepo, studentRepo, emailRepo, rdb, log)
	dashboardService := service.NewDashboardService(dashboardRepo)
	mediaService := service.NewMediaService(cfg)

	// ─── Select Mail Sender ───────────────────────────────────────────
	var sender mailer.Sender
	if cfg.SendgridAPIKey != "" {
		sender = mailer.NewSendgridSender(cfg.SendgridAPIKey, cfg.MailFromName, cfg.MailFromAddr)
		log.Info().Msg("Using SendGrid mail sender")
	} else {
		sender = mailer.NewConsoleSender(log)
		log.Warn().Msg("SENDGRID_API_KEY not set, emails go to the log")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(companyService, adminService),
		Drive:        handler.NewDriveHandler(driveService, companyService),
		Question:     handler.NewQuestionHandler(cfg, questionService),
		Student:      handler.NewStudentHandler(cfg, studentService),
		Email:        handler.NewEmailHandler(emailService),
		Reference:    handler.NewReferenceHandler(referenceService),
		AdminCompany: handler.NewAdminCompanyHandler(companyService, adminService),
		AdminDrive:   handler.NewAdminDriveHandler(driveService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Media:        handler.NewMediaHandler(mediaService, companyService),
		System:       handler.NewSystemHandler(rdb, log),
		WS:           handler.NewWSHandler(rdb, driveService, emailService, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	emailWorker := worker.NewEmailWorker(cfg, studentRepo, sender, rdb, log)
	statusWorker := worker.NewDriveStatusWorker(driveRepo, log)

	go emailWorker.Start(workerCtx)
	go statusWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and let the email queue drain.
	workerCancel()
	time.Sleep(2 * time.Second)

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
