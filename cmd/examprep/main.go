package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	api "github.com/Rohitkumarvora/examprep/internal/api/http"
	"github.com/Rohitkumarvora/examprep/internal/config"
	"github.com/Rohitkumarvora/examprep/internal/db"
	"github.com/Rohitkumarvora/examprep/internal/genai"
	"github.com/Rohitkumarvora/examprep/internal/quiz"
	"github.com/Rohitkumarvora/examprep/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger, err := newLogger(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	qstore := quiz.NewSQLStore(dbh)

	// Seed the built-in catalog; generated quizzes land in the same store.
	for _, q := range quiz.MockExams() {
		if err := qstore.Put(ctx, q); err != nil {
			log.Fatalf("seed quiz %s: %v", q.ID, err)
		}
	}

	// --- Session store ---
	var sstore session.Store
	switch cfg.SessionBackend {
	case "memory":
		sstore = session.NewInMemoryStore()
	case "redis":
		rs, err := session.NewRedisStore(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("redis session store: %v", err)
		}
		defer rs.Close()
		sstore = rs
	default:
		sstore = session.NewSQLStore(dbh)
	}

	gen := genai.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, sugar)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(150 * time.Second)) // generation calls are slow

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api.Mount(r, qstore, sstore, gen)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	sugar.Infow("listening", "addr", cfg.HTTPAddr, "db", cfg.DBDriver, "sessions", cfg.SessionBackend)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "prod" || mode == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
