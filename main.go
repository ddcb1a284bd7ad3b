package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"megacalc/internal/batch"
	"megacalc/internal/content"
	"megacalc/internal/importer"
	"megacalc/internal/middleware"
	"megacalc/internal/registry"
	"megacalc/internal/report"
)

var wg sync.WaitGroup

func HandleList(router *mux.Router, db *sql.DB) {
	var contentRepo content.Repository
	if db != nil {
		contentRepo = content.NewPostgresContentDB(db)
	}
	contentH := &content.ContentHandler{Repo: contentRepo}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	limiter := middleware.NewIPRateLimiter(5, 20)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/tools", registry.ListHandler).Methods("GET")
	api.HandleFunc("/tools/search", registry.SearchHandler).Methods("GET")
	api.HandleFunc("/tools/unit-convert/batch", batchH.Convert).Methods("POST")
	api.HandleFunc("/tools/unit-convert/import", importH.Convert).Methods("POST")
	api.HandleFunc("/tools/{slug}/calc", registry.CalcHandler).Methods("POST")

	api.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	api.HandleFunc("/articles", contentH.ListArticles).Methods("GET")
	api.HandleFunc("/articles/{slug}", contentH.GetArticle).Methods("GET")
	api.HandleFunc("/categories", contentH.ListCategories).Methods("GET")

	// Static hub pages; everything not under /api falls through here.
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("./static")))
}

func initDB() *sql.DB {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Println("DATABASE_URL not set, learning-hub content disabled")
		return nil
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("DB config error: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		log.Fatalf("DB not responding: %v", err)
	}
	return db
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment as-is")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db := initDB()
	if db != nil {
		defer db.Close()
	}

	router := mux.NewRouter()
	HandleList(router, db)
	handler := middleware.CORS(router)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
