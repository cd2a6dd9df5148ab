package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"confcentral/config"
	"confcentral/internal/adapters/auth"
	"confcentral/internal/adapters/cache"
	"confcentral/internal/adapters/email"
	"confcentral/internal/adapters/queue"
	delivery "confcentral/internal/delivery/http"
	"confcentral/internal/delivery/http/controllers"
	"confcentral/internal/delivery/http/middleware"
	"confcentral/internal/repository/postgres"
	"confcentral/internal/services"
)

// @title Conference Central API
// @version 1.0
// @description Conference management backend: conferences, sessions, speakers, registrations and wishlists.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}

	redisClient := cache.NewRedisClient(cfg.RedisURL)
	if err := cache.Ping(redisClient); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}
	defer redisClient.Close()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		log.Fatalf("mailer init failed: %v", err)
	}

	profileRepo := postgres.NewProfileRepository(db)
	confRepo := postgres.NewConferenceRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	wishlistRepo := postgres.NewWishlistRepository(db)

	signalCache := cache.NewSignalCache(redisClient, "confcentral")
	taskQueue := queue.NewTaskQueue(redisClient, queue.DefaultTaskList)

	profileSvc := services.NewProfileService(profileRepo)
	conferenceSvc := services.NewConferenceService(confRepo, profileRepo, taskQueue, logger)
	attendeeSvc := services.NewAttendeeService(registrationRepo, profileRepo)
	sessionSvc := services.NewSessionService(sessionRepo, confRepo, speakerRepo, taskQueue, logger)
	speakerSvc := services.NewSpeakerService(speakerRepo, profileRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo, sessionRepo, profileRepo)
	signalSvc := services.NewSignalService(confRepo, sessionRepo, speakerRepo, signalCache)

	worker := queue.NewWorker(redisClient, queue.DefaultTaskList, mailer, signalSvc, logger)
	go worker.Run(ctx)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	router := delivery.NewRouter(delivery.Controllers{
		Conference: controllers.NewConferenceController(logger, conferenceSvc),
		Attendee:   controllers.NewAttendeeController(logger, attendeeSvc),
		Session:    controllers.NewSessionController(logger, sessionSvc),
		Speaker:    controllers.NewSpeakerController(logger, speakerSvc),
		Wishlist:   controllers.NewWishlistController(logger, wishlistSvc),
		Profile:    controllers.NewProfileController(logger, profileSvc),
		Signal:     controllers.NewSignalController(logger, signalSvc),
	}, verifier, logger)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, router))
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
