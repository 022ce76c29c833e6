package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tripflow/config"
	planRepo "tripflow/database/repository/plan"
	"tripflow/services/planner"
	"tripflow/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitPlanWorker runs the async planning worker in background.
func InitPlanWorker(plannerSvc planner.TripPlannerService, repo planRepo.PlanRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePlanGenerate, handlePlanGenerateTask(plannerSvc, repo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[PlanWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PlanWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PlanWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePlanGenerateTask(plannerSvc planner.TripPlannerService, repo planRepo.PlanRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.PlanGeneratePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PlanWorker] invalid payload: %v", err)
			return err
		}

		log.Printf("[PlanWorker] generating plan %s for %s (%d days)", p.PlanID, p.Request.City, p.Request.TravelDays)

		plan, fallback := plannerSvc.PlanTrip(ctx, &p.Request)
		if err := repo.SetPlan(ctx, p.PlanID, plan, fallback); err != nil {
			log.Printf("[PlanWorker] failed to store plan %s: %v", p.PlanID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[PlanWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
