package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(cfg *config.Config, verifier *services.TokenVerifier,
	goalService *usecase.GoalService,
	messageService *usecase.MessageService,
	eventService *usecase.EventService,
	checkInService *usecase.CheckInService,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(cfg.Server.MaxRequestSize))
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Unauthenticated operational endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	goalHandler := handler.NewGoalHandler(goalService)
	todoHandler := handler.NewTodoHandler(goalService)
	messageHandler := handler.NewMessageHandler(messageService)
	eventHandler := handler.NewEventHandler(eventService)
	checkInHandler := handler.NewCheckInHandler(checkInService)
	statsHandler := handler.NewStatsHandler(goalService, messageService, eventService, checkInService)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(verifier))
	{
		goals := protected.Group("/goals")
		{
			goals.GET("", goalHandler.GetUserGoals)
			goals.POST("", goalHandler.CreateGoal)
			goals.PUT("/:goalId", goalHandler.UpdateGoal)
			goals.PUT("/:goalId/completion", goalHandler.UpdateGoalCompletion)
			goals.DELETE("/:goalId", goalHandler.DeleteGoal)

			// To-dos live inside their parent goal document
			goals.POST("/:goalId/todos", todoHandler.AddTodo)
			goals.PUT("/:goalId/todos/:todoId", todoHandler.UpdateTodo)
			goals.PUT("/:goalId/todos/:todoId/completion", todoHandler.UpdateTodoCompletion)
			goals.DELETE("/:goalId/todos/:todoId", todoHandler.DeleteTodo)
		}

		messages := protected.Group("/messages")
		{
			messages.GET("", messageHandler.GetUserMessages)
			messages.POST("", messageHandler.CreateMessage)
			messages.PUT("/:id", messageHandler.UpdateMessage)
			messages.DELETE("/:id", messageHandler.DeleteMessage)
		}

		events := protected.Group("/events")
		{
			events.GET("", eventHandler.GetUserEvents)
			events.POST("", eventHandler.CreateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		protected.GET("/check-in/:uid", checkInHandler.GetCheckIn)
		protected.POST("/check-in/:uid", checkInHandler.CheckIn)

		protected.GET("/stats", statsHandler.GetUserStats)
	}

	return router
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitValidator()

	ctx := context.Background()
	client, err := repository.NewMongoClient(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.Database.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	// The token cache is optional; without Redis every request verifies
	// the token signature itself.
	var tokenCache *services.TokenCache
	if cfg.Redis.URL != "" {
		tokenCache, err = services.NewTokenCache(cfg.Redis)
		if err != nil {
			log.Printf("Token cache disabled: %v", err)
			tokenCache = nil
		}
	}
	verifier := services.NewTokenVerifier(cfg.JWT, tokenCache)

	goalService := usecase.NewGoalService(repository.GetGoalsRepo(db))
	messageService := usecase.NewMessageService(repository.GetMessagesRepo(db))
	eventService := usecase.NewEventService(repository.GetEventsRepo(db))
	checkInService := usecase.NewCheckInService(repository.GetCheckInsRepo(db))

	router := setupRouter(cfg, verifier, goalService, messageService, eventService, checkInService)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server shutdown complete")
}
