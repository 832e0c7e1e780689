package main

import (
	"fmt"
	"log"
	"net/http"

	"captionstudio/cmd/app"
	"captionstudio/internal/config"
	"captionstudio/internal/database"
	handlers "captionstudio/internal/handler"
	"captionstudio/internal/middleware"
	"captionstudio/internal/service"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(repo, services, cfg)

	mux := service.CreateMux()

	// setting up routes
	mux.Mux.HandleFunc("/", handlers.HomeHandler)
	mux.Mux.HandleFunc("/health", handlers.HealthHandler)
	mux.Mux.HandleFunc("/tables", handler.TablesHandler)

	mux.Mux.HandleFunc("/api/auth/register", handler.Register)
	mux.Mux.HandleFunc("/api/auth/login", handler.Login)
	mux.Mux.HandleFunc("/api/auth/refresh-token", handler.RefreshToken)

	mux.Mux.HandleFunc("/api/me", handler.GetCurrentUser)

	mux.Mux.HandleFunc("/api/sessions", handler.CreateSession)
	mux.Mux.HandleFunc("/api/sessions/{sessionId}", handler.UpdateSession)

	mux.Mux.HandleFunc("/api/sessions/{sessionId}/captions", handler.CreateCaption)
	mux.Mux.HandleFunc("/api/sessions/{sessionId}/captions/{captionId}", handler.UpdateCaption)

	mux.Mux.HandleFunc("/api/sessions/{sessionId}/media", handler.AttachMedia)
	mux.Mux.HandleFunc("/api/sessions/{sessionId}/media/{mediaId}", handler.DeleteMedia)

	mux.Mux.HandleFunc("/api/templates", handler.CreateTemplate)

	handlerChain := middleware.Chain(
		mux.Mux,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
