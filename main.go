// File: tripflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripflow/config"
	"tripflow/cron"
	"tripflow/database"
	planRepo "tripflow/database/repository/plan"
	"tripflow/handlers"
	"tripflow/middleware"
	"tripflow/routes"
	"tripflow/services/amap"
	"tripflow/services/llm"
	"tripflow/services/planner"
	"tripflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Collaborators.
	amapClient := amap.GetClient()
	mapTools := amap.Tools(amapClient)

	planCache := planner.NewPlanCache(utils.GetCacheClient(),
		time.Duration(config.AppConfig.PlanCacheTTLMin)*time.Minute)

	// The planner degrades to fallback-only when the chat model cannot be
	// constructed; planning requests still succeed.
	var plannerSvc *planner.MultiAgentPlanner
	chatModel, err := llm.GetChatModel(context.Background())
	if err != nil {
		logger.Sugar().Warnf("main: chat model unavailable, planner will serve fallback itineraries: %v", err)
		plannerSvc = &planner.MultiAgentPlanner{Cache: planCache}
	} else {
		plannerSvc = planner.NewMultiAgentPlanner(
			chatModel,
			mapTools,
			config.AppConfig.PlannerMaxTurns,
			config.AppConfig.AgentMaxSteps,
		)
		plannerSvc.Cache = planCache
		plannerSvc.OnEvent = func(ev planner.StepEvent) {
			content := ev.Content
			if len(content) > 400 {
				content = content[:400] + "..."
			}
			logger.Debug("agent step",
				zap.String("agent", ev.Agent),
				zap.String("role", string(ev.Role)),
				zap.String("content", content))
		}
	}

	// Repositories and async queue.
	repo := planRepo.NewMongoPlanRepo()
	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queue.Close()

	cron.InitPlanWorker(plannerSvc, repo)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Trip: handlers.NewTripHandler(plannerSvc, repo, queue, logger),
		Geo:  handlers.NewGeoHandler(amapClient, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
