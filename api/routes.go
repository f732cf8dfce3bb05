package api

import (
	"github.com/gorilla/mux"
	"github.com/netpost/stringshop/internal/config"
	"github.com/netpost/stringshop/internal/db"
	"github.com/netpost/stringshop/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(database, logger)

	// Create handlers
	systemHandler := NewSystemHandler(database)
	authHandler := NewAuthHandler(repo, cfg.SessionSecret, cfg.SessionDuration)
	racketsHandler := NewRacketsHandler(repo)
	pages := &PagesHandler{}

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/healthcheck", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/login", authHandler.LoginPage).Methods("GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/register", authHandler.RegisterPage).Methods("GET")
	r.HandleFunc("/register", authHandler.Register).Methods("POST")

	// Everything else sits behind the session gate. Registered after the
	// open routes so those match first.
	protected := r.PathPrefix("/").Subrouter()
	protected.Use(SessionMiddleware(cfg.SessionSecret))

	protected.HandleFunc("/", pages.Page("home")).Methods("GET")
	protected.HandleFunc("/logout", authHandler.Logout).Methods("GET", "POST")

	// Job store endpoints
	protected.HandleFunc("/racket", racketsHandler.List).Methods("GET")
	protected.HandleFunc("/racket", racketsHandler.Create).Methods("POST")
	protected.HandleFunc("/racket/new", racketsHandler.NewForm).Methods("GET")
	protected.HandleFunc("/racket/{id:[0-9]+}", racketsHandler.Update).Methods("POST")
	protected.HandleFunc("/racket/{id:[0-9]+}/delete", racketsHandler.ConfirmDelete).Methods("GET")
	protected.HandleFunc("/racket/{id:[0-9]+}/delete", racketsHandler.Delete).Methods("POST")

	// Placeholder views
	protected.HandleFunc("/history", pages.Page("history")).Methods("GET")
	protected.HandleFunc("/inventory", pages.Page("inventory")).Methods("GET")
	protected.HandleFunc("/stringers", pages.Page("stringers")).Methods("GET")
	protected.HandleFunc("/customers", pages.Page("customers")).Methods("GET")

	return r
}
