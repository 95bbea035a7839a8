package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"fitratio/internal/config"
	"fitratio/internal/db"
	"fitratio/internal/store"
	"fitratio/internal/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.LoadConfig()
	if err != nil {
		sugar.Fatalf("Failed to load configuration: %v", err)
	}

	dbConn, err := db.InitDB(cfg.DatabaseFile)
	if err != nil {
		sugar.Fatalf("Failed to open database: %v", err)
	}

	comparisons := store.New(dbConn)
	if err := comparisons.Init(); err != nil {
		sugar.Fatalf("Failed to initialize database: %v", err)
	}
	sugar.Info("Worker connected to database.")

	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		sugar.Fatalf("Failed to parse Redis URL: %v", err)
	}

	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{})
	digestTask, err := tasks.NewComparisonDigestTask(nil)
	if err != nil {
		sugar.Fatalf("Failed to create comparison digest task: %v", err)
	}

	// hourly digest
	entryID, err := scheduler.Register("0 * * * *", digestTask, asynq.Queue("default"))
	if err != nil {
		sugar.Fatalf("Failed to register periodic task: %v", err)
	}
	sugar.Infof("Registered periodic task: %s (EntryID: %s)", digestTask.Type(), entryID)

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				"default": 3,
			},
			Concurrency: 10,
		},
	)

	taskProcessor := tasks.NewTaskProcessor(comparisons, sugar)

	mux := asynq.NewServeMux()
	mux.HandleFunc(
		tasks.TypeTaskComparisonDigest,
		taskProcessor.HandleComparisonDigestTask,
	)

	go func() {
		sugar.Info("Starting Asynq scheduler...")
		if err := scheduler.Run(); err != nil {
			sugar.Fatalf("Could not run Asynq scheduler: %v", err)
		}
	}()

	go func() {
		sugar.Info("Starting Asynq worker server...")
		if err := srv.Run(mux); err != nil {
			sugar.Fatalf("Could not run Asynq worker server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	sugar.Info("Shutdown signal received, shutting down gracefully...")

	scheduler.Shutdown()
	sugar.Info("Asynq scheduler shut down.")

	srv.Shutdown()
	sugar.Info("Asynq worker server shut down.")

	asynqClient.Close()
	sugar.Info("Worker process shut down complete.")
}
