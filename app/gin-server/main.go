package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ignitai/ignitai-backend/config"
	"github.com/ignitai/ignitai-backend/internal/api/handlers"
	"github.com/ignitai/ignitai-backend/internal/api/middleware"
	"github.com/ignitai/ignitai-backend/internal/api/routes"
	"github.com/ignitai/ignitai-backend/internal/cache"
	"github.com/ignitai/ignitai-backend/internal/interview"
	"github.com/ignitai/ignitai-backend/internal/logger"
	"github.com/ignitai/ignitai-backend/internal/providers/llm"
	"github.com/ignitai/ignitai-backend/internal/providers/mail"
	mongorepo "github.com/ignitai/ignitai-backend/internal/repositories/mongo"
	pgrepo "github.com/ignitai/ignitai-backend/internal/repositories/postgres"
	"github.com/ignitai/ignitai-backend/internal/services"
	"github.com/ignitai/ignitai-backend/internal/storage"
	"github.com/ignitai/ignitai-backend/internal/workers"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadApp()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// MongoDB holds applications, certificates and feedback.
	if err := config.InitMongo(); err != nil {
		log.WithError(err).Fatal("MongoDB init error")
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.WithError(err).Warn("MongoDB index creation failed")
	}
	log.Info("MongoDB connected")
	db := config.MongoDatabase()

	// PostgreSQL archive is optional.
	var resultRepo pgrepo.InterviewResultRepository
	if config.PostgresConfigured() {
		if err := config.InitPostgres(); err != nil {
			log.WithError(err).Fatal("PostgreSQL init error")
		}
		if err := config.EnsurePostgresSchema(); err != nil {
			log.WithError(err).Fatal("PostgreSQL schema error")
		}
		resultRepo = pgrepo.NewInterviewResultRepo(config.PostgresDB)
		log.Info("PostgreSQL connected")
	}

	var appCache cache.Cache = cache.Nop{}
	if config.RedisConfigured() {
		if err := config.InitRedis(); err != nil {
			log.WithError(err).Fatal("Redis init error")
		}
		appCache = cache.NewRedisCache(config.RedisClient, "ignitai:")
		log.Info("Redis connected")
	}

	uploader, closeUploader := newUploader(ctx, cfg, log)
	defer closeUploader()

	chain, closeLLM := newLLMChain(ctx, cfg, log)
	defer closeLLM()

	mailer := mail.NewSMTPSender(mail.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Secure:    cfg.SMTP.Secure,
		User:      cfg.SMTP.User,
		Pass:      cfg.SMTP.Pass,
		From:      cfg.SMTP.From,
		DefaultTo: cfg.SMTP.User,
	})
	if cfg.SMTP.Host == "" {
		log.Warn("SMTP_HOST not set; mail delivery will fail")
	}

	// One store serves both interview flows.
	store := interview.NewStore()
	sweeper := &workers.SessionSweeper{Store: store, Interval: cfg.SessionSweepInterval, Logger: log}
	if err := sweeper.Start(ctx); err != nil {
		log.WithError(err).Fatal("session sweeper start failed")
	}

	archive := services.NewResultArchive(resultRepo)
	responder := services.NewResponder(chain, cfg.AIResponseTimeout, log)

	interviewSvc := services.NewInterviewService(store, archive, log)
	realInterviewSvc := services.NewRealInterviewService(store, responder, archive, log)
	applicationSvc := services.NewApplicationService(mongorepo.NewApplicationRepo(db), uploader, mailer, cfg.SMTP.NotifyTo)
	certificateSvc := services.NewCertificateService(mongorepo.NewCertificateRepo(db), appCache)
	feedbackSvc := services.NewFeedbackService(mongorepo.NewFeedbackRepo(db), uploader, appCache)
	contactSvc := services.NewContactService(mailer, cfg.SMTP.NotifyTo)
	quizSvc := services.NewQuizService(chain, 0, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	deps := routes.Deps{
		Interview:     handlers.NewInterviewHandler(interviewSvc),
		RealInterview: handlers.NewRealInterviewHandler(realInterviewSvc),
		Application:   handlers.NewApplicationHandler(applicationSvc),
		Certificate:   handlers.NewCertificateHandler(certificateSvc),
		Feedback:      handlers.NewFeedbackHandler(feedbackSvc),
		Contact:       handlers.NewContactHandler(contactSvc),
		Quiz:          handlers.NewQuizHandler(quizSvc),
		Results:       handlers.NewResultHandler(archive),
	}
	if cfg.GCSBucket == "" {
		deps.UploadDir = cfg.UploadDir
	}
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown error")
	}
	if err := config.CloseMongo(shutdownCtx); err != nil {
		log.WithError(err).Warn("MongoDB close error")
	}
	if err := config.ClosePostgres(); err != nil {
		log.WithError(err).Warn("PostgreSQL close error")
	}
	if err := config.CloseRedis(); err != nil {
		log.WithError(err).Warn("Redis close error")
	}
}

// newUploader stores uploads in GCS when GCS_BUCKET is set and on local disk
// otherwise.
func newUploader(ctx context.Context, cfg config.App, log *logrus.Logger) (storage.Uploader, func()) {
	if cfg.GCSBucket != "" {
		u, err := storage.NewGCSUploader(ctx, storage.GCSConfig{
			Bucket:  cfg.GCSBucket,
			Prefix:  "uploads/",
			Public:  cfg.GCSPublic,
			BaseURL: cfg.GCSBaseURL,
		})
		if err != nil {
			log.WithError(err).Fatal("GCS init error")
		}
		log.WithField("bucket", cfg.GCSBucket).Info("uploads stored in GCS")
		return u, func() { _ = u.Close() }
	}

	u, err := storage.NewLocalUploader(cfg.UploadDir, "/uploads")
	if err != nil {
		log.WithError(err).Fatal("upload dir init error")
	}
	return u, func() {}
}

// newLLMChain builds primary and fallback Gemini models. Without a project
// the chain is empty and every AI feature uses its fallback.
func newLLMChain(ctx context.Context, cfg config.App, log *logrus.Logger) (*llm.Chain, func()) {
	if cfg.Vertex.ProjectID == "" {
		log.Warn("GOOGLE_CLOUD_PROJECT not set; AI features use fallbacks")
		return llm.NewChain(), func() {}
	}

	var (
		gens    []llm.Generator
		closers []func() error
	)
	seen := map[string]bool{}
	for _, name := range []string{cfg.Vertex.Model, cfg.Vertex.FallbackModel} {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		g, err := llm.NewVertexGemini(ctx, cfg.Vertex.ProjectID, cfg.Vertex.Location, name, llm.GeminiOptions{
			Temperature:     0.7,
			MaxOutputTokens: 1024,
		})
		if err != nil {
			log.WithError(err).WithField("model", name).Warn("Vertex AI model init failed")
			continue
		}
		gens = append(gens, g)
		closers = append(closers, g.Close)
	}

	return llm.NewChain(gens...), func() {
		for _, c := range closers {
			_ = c()
		}
	}
}
