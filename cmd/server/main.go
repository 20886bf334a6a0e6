package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/gymms/portal/internal/auth"
	"github.com/gymms/portal/internal/db"
	"github.com/gymms/portal/internal/export"
	"github.com/gymms/portal/internal/handlers"
	"github.com/gymms/portal/internal/logging"
	"github.com/gymms/portal/internal/metrics"
	"github.com/gymms/portal/internal/middleware"
	"github.com/gymms/portal/internal/portal"
	"github.com/gymms/portal/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env: %s", err)
	}
	logging.Setup()

	// Connect to MongoDB
	uri := os.Getenv("MONGOURI")
	if uri == "" {
		slog.Error("MONGOURI environment variable not set")
		os.Exit(1)
	}
	client, err := db.Connect(context.Background(), uri)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Disconnect(ctx, client); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()
	slog.Info("Successfully connected to MongoDB")

	database := client.Database("gymportal")

	// Persist log records alongside the portal data.
	logStore := logging.SetupWithStore(database.Collection("logs"))
	defer logStore.Close()

	// Initialize services
	memberService := services.NewMemberService(database)
	billService := services.NewBillService(database)
	userService := services.NewUserService(database)
	data := portal.CombineGateways(memberService, billService)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET environment variable not set")
		os.Exit(1)
	}
	tokens := auth.NewJWTManager(jwtSecret, 24*time.Hour)

	portalMetrics := metrics.New()

	// PDF export needs a headless Chrome; skip the renderer when disabled.
	var renderer export.PDFRenderer
	if os.Getenv("PDF_EXPORT") != "disabled" {
		chromeRenderer := export.NewChromedpRenderer(30 * time.Second)
		defer chromeRenderer.Close()
		renderer = chromeRenderer
	}
	exporter := export.NewExporter(memberService, renderer, slog.Default())

	sessionDir := os.Getenv("SESSION_DIR")
	if sessionDir == "" {
		sessionDir = "./data/sessions"
	}

	hub := portal.NewHub(func(id string) *portal.Client {
		gateway := auth.NewGateway(userService, tokens)
		view := portal.NewView(portalMetrics)
		orchestrator := portal.New(portal.Config{
			Auth:     gateway,
			Data:     data,
			Sink:     view,
			Sessions: portal.NewFileSessionStore(sessionDir, id),
			Observer: portalMetrics,
		})
		return &portal.Client{
			Orchestrator: orchestrator,
			View:         view,
			Auth:         gateway,
		}
	})

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(hub)
	authHandler := handlers.NewAuthHandler(hub)
	memberHandler := handlers.NewMemberHandler(hub)
	exportHandler := handlers.NewExportHandler(hub, exporter)

	// Set up router
	router := mux.NewRouter()
	router.Use(middleware.Logging, middleware.Instrument(portalMetrics))
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET", "HEAD")
	router.Handle("/metrics", portalMetrics.Handler()).Methods("GET")

	router.HandleFunc("/api/client", clientHandler.Register).Methods("POST")
	router.HandleFunc("/api/view", clientHandler.GetView).Methods("GET")

	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	router.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")
	router.HandleFunc("/api/member-login", authHandler.MemberLogin).Methods("POST")

	router.HandleFunc("/api/members", memberHandler.List).Methods("GET")
	router.HandleFunc("/api/member", memberHandler.Create).Methods("POST")
	router.HandleFunc("/api/member/{memberID}", memberHandler.Update).Methods("PATCH")
	router.HandleFunc("/api/member/{memberID}", memberHandler.Delete).Methods("DELETE")
	router.HandleFunc("/api/bill", memberHandler.CreateBill).Methods("POST")

	router.HandleFunc("/api/export/csv", exportHandler.CSV).Methods("GET")
	router.HandleFunc("/api/export/pdf", exportHandler.PDF).Methods("GET")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	slog.Info("Server running", "port", port)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
