package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorbuddy/internal/audio"
	"tutorbuddy/internal/config"
	"tutorbuddy/internal/database"
	"tutorbuddy/internal/handlers"
	"tutorbuddy/internal/repository"
	"tutorbuddy/internal/security"
	"tutorbuddy/internal/service"
	"tutorbuddy/internal/store"
	"tutorbuddy/internal/tutor"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Restore persisted session state
	stateRepo := repository.NewStateRepository(db, cfg.StateRecordName)
	sessionStore := store.New(stateRepo, cfg.DemoSeedEnabled)
	if err := sessionStore.Load(); err != nil {
		log.Fatalf("Failed to load state record: %v", err)
	}
	sessionStore.CheckTutorTime()

	// Audio cache directory
	if err := os.MkdirAll(cfg.AudioPath, 0o755); err != nil {
		log.Fatalf("Failed to create audio directory: %v", err)
	}
	speaker := audio.NewSpeaker(cfg.AudioPath)

	// Initialize services
	tokens := security.NewTokenIssuer(cfg.SessionSecret, cfg.SessionDuration)
	authService := service.NewAuthService(sessionStore, tokens)
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	tutorService := tutor.NewService(cfg.AIResponseDelay)
	chatService := service.NewChatService(sessionStore, tutorService, tutor.NewEvaluator(), emailService)
	backupService := service.NewBackupService(stateRepo)

	// Initialize handlers
	limiter := security.NewRateLimiter(30, time.Minute)
	middleware := handlers.NewMiddleware(tokens, sessionStore, limiter)
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService, sessionStore, speaker)
	settingsHandler := handlers.NewSettingsHandler(sessionStore, speaker)
	historyHandler := handlers.NewHistoryHandler(sessionStore)
	avatarHandler := handlers.NewAvatarHandler(sessionStore)
	dashboardHandler := handlers.NewDashboardHandler(sessionStore)

	mux := http.NewServeMux()

	// Synthesized speech files
	mux.Handle("GET /audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(cfg.AudioPath))))

	// Public routes
	mux.HandleFunc("POST /signup", middleware.RateLimit(authHandler.SignUp))
	mux.HandleFunc("POST /login", middleware.RateLimit(authHandler.SignIn))
	mux.HandleFunc("POST /logout", authHandler.SignOut)
	mux.HandleFunc("GET /languages", settingsHandler.Languages)

	// Session routes
	mux.HandleFunc("GET /dashboard", middleware.RequireAuth(dashboardHandler.Get))
	mux.HandleFunc("POST /chat/start", middleware.RequireAuth(chatHandler.Start))
	mux.HandleFunc("POST /chat/message", middleware.RequireAuth(middleware.RateLimit(chatHandler.Message)))
	mux.HandleFunc("GET /chat", middleware.RequireAuth(chatHandler.Current))
	mux.HandleFunc("POST /chat/commit", middleware.RequireAuth(chatHandler.Commit))
	mux.HandleFunc("POST /chat/listen", middleware.RequireAuth(chatHandler.Listen))
	mux.HandleFunc("POST /chat/transcript", middleware.RequireAuth(chatHandler.Transcript))
	mux.HandleFunc("POST /chat/speak", middleware.RequireAuth(chatHandler.Speak))
	mux.HandleFunc("GET /history", middleware.RequireAuth(historyHandler.List))
	mux.HandleFunc("GET /history/{id}", middleware.RequireAuth(historyHandler.Get))
	mux.HandleFunc("POST /history/{id}/delete", middleware.RequireAuth(historyHandler.Delete))
	mux.HandleFunc("GET /avatars", middleware.RequireAuth(avatarHandler.List))
	mux.HandleFunc("POST /avatars/select", middleware.RequireAuth(avatarHandler.Select))

	// Guardian routes
	mux.HandleFunc("GET /settings", middleware.RequireAuth(settingsHandler.Get))
	mux.HandleFunc("PUT /settings", middleware.RequireGuardian(settingsHandler.Update))
	mux.HandleFunc("POST /settings/voice-preview", middleware.RequireGuardian(settingsHandler.VoicePreview))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Background loops: tutor-time polling and guardian progress reports
	stop := make(chan struct{})
	go pollTutorTime(sessionStore, cfg.TutorPollEvery, stop)
	go sendProgressReports(sessionStore, emailService, cfg.ReportEvery, stop)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	close(stop)

	// Write a final backup before exit, best effort
	if err := os.MkdirAll(cfg.BackupPath, 0o755); err == nil {
		backupPath := cfg.BackupPath + "/state-" + time.Now().Format("20060102-150405") + ".json"
		if err := backupService.Export(backupPath); err != nil {
			log.Printf("Warning: shutdown backup failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// pollTutorTime re-evaluates the tutor-time window on a ticker so the
// cached flag flips close to the window edges even without requests
func pollTutorTime(s *store.Store, every time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.CheckTutorTime()
		}
	}
}

// sendProgressReports emails the guardian a periodic learning digest
func sendProgressReports(s *store.Store, emails *service.EmailService, every time.Duration, stop <-chan struct{}) {
	if !emails.IsEnabled() {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			user := s.User()
			if user == nil || user.Email == "" {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := emails.SendProgressEmail(ctx, user.Email, user.GuardianName, user.ChildName, s.Avatar(), len(s.Conversations()))
			cancel()
			if err != nil {
				log.Printf("Error sending progress report: %v", err)
			}
		}
	}
}
