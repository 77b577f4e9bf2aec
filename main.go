package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/nipia/imobiliaria-dashboard/backend"
	"github.com/nipia/imobiliaria-dashboard/config"
	"github.com/nipia/imobiliaria-dashboard/middleware"
	"github.com/nipia/imobiliaria-dashboard/routes"
	"github.com/nipia/imobiliaria-dashboard/session"
	"github.com/nipia/imobiliaria-dashboard/toast"
	"github.com/nipia/imobiliaria-dashboard/views"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
}

func setupRouter(store *backend.Store, sessions *session.Store, v *views.Views, flash *toast.Queue) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	routes.Routes(router, store, sessions, v, flash)
	return router
}

func main() {
	loadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cache := backend.NewCache(config.InitRedis(cfg))
	store := backend.NewStore(backend.NewClient(cfg.BackendURL), cache)
	sessions := session.NewStore(cfg.SessionKey)
	flash := toast.NewQueue(cfg.SessionKey)

	v, err := views.New()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	router := setupRouter(store, sessions, v, flash)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Dashboard running on port %s (backend %s)", cfg.Port, cfg.BackendURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
