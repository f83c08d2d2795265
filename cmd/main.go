package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/chad_bot/internal/ai"
	"github.com/Vovarama1992/chad_bot/internal/delivery"
	"github.com/Vovarama1992/chad_bot/internal/history"
	"github.com/Vovarama1992/chad_bot/internal/notify"
	"github.com/Vovarama1992/chad_bot/internal/session"
	"github.com/Vovarama1992/chad_bot/internal/settings"
	"github.com/Vovarama1992/chad_bot/internal/shop"
	"github.com/Vovarama1992/chad_bot/internal/storage"
	"github.com/Vovarama1992/chad_bot/internal/telegram"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "bot_history.db"
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("BOT_TOKEN is not set")
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// COMPLETION PROVIDERS
	// =========================================================================

	timeout := envDuration("REQUEST_TIMEOUT", 25*time.Second)

	// общий пул соединений на все провайдеры, закрывается при останове
	httpClient := &http.Client{Timeout: timeout}
	defer httpClient.CloseIdleConnections()

	registry := ai.NewRegistry()

	if url, key := os.Getenv("CHAD_API_URL"), os.Getenv("CHAD_API_KEY"); url != "" && key != "" {
		registry.Register("chadai", "ChadAI", ai.NewChadClient(url, key, httpClient))
	}
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		baseURL := os.Getenv("DEEPSEEK_API_URL")
		if baseURL == "" {
			baseURL = "https://api.deepseek.com/v1"
		}
		registry.Register("deepseek", "DeepSeek", ai.NewChatProvider(baseURL, key, "deepseek-chat", httpClient))
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		registry.Register("openai", "OpenAI GPT", ai.NewChatProvider("", key, openai.GPT3Dot5Turbo, httpClient))
	}

	if len(registry.Tags()) == 0 {
		log.Fatal("no completion providers configured")
	}

	// =========================================================================
	// REPOSITORIES / SERVICES
	// =========================================================================

	pageSize := envInt("HISTORY_PAGE_SIZE", history.DefaultPageSize)
	adminChatID, _ := strconv.ParseInt(os.Getenv("ADMIN_CHAT_ID"), 10, 64)

	settingsService := settings.NewService(settings.NewInfra(db), registry.Tags(), settings.DefaultTemperature)
	historyService := history.NewService(history.NewInfra(db), pageSize)
	shopService := shop.NewService(shop.NewInfra(db))
	wizard := shop.NewWizard(shopService)

	notifyInfra := notify.NewInfra(nil, adminChatID)
	notifyService := notify.NewService(notifyInfra)

	sessionService := session.NewService(
		settingsService,
		historyService,
		registry,
		notifyService,
		pageSize,
	)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	botApp := telegram.NewBotApp(
		sessionService,
		settingsService,
		shopService,
		wizard,
		registry,
		adminChatID,
	)

	if err := botApp.Init(token); err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	notifyInfra.SetBot(botApp.Bot())

	go botApp.Run()

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	historyHandler := delivery.NewHistoryHandler(historyService, settingsService, zl)
	shopHandler := delivery.NewShopHandler(shopService)

	delivery.RegisterRoutes(r, historyHandler, shopHandler)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START / SHUTDOWN
	// =========================================================================

	addr := ":" + port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "listening at " + addr,
			Service: "chad_bot",
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[main] shutting down")

	botApp.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[main] server shutdown: %v", err)
	}
}

func envInt(name string, def int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envDuration(name string, def time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
