package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/m-orlov/taskboard/internal/auth/http"
	authrepo "github.com/m-orlov/taskboard/internal/auth/repository"
	authservice "github.com/m-orlov/taskboard/internal/auth/service"
	"github.com/m-orlov/taskboard/internal/common/config"
	commoncrypto "github.com/m-orlov/taskboard/internal/common/crypto"
	"github.com/m-orlov/taskboard/internal/common/db"
	commonhttp "github.com/m-orlov/taskboard/internal/common/http"
	"github.com/m-orlov/taskboard/internal/common/logger"
	srv "github.com/m-orlov/taskboard/internal/common/server"
	taskhttp "github.com/m-orlov/taskboard/internal/task/http"
	taskrepo "github.com/m-orlov/taskboard/internal/task/repository"
	taskservice "github.com/m-orlov/taskboard/internal/task/service"
	"github.com/m-orlov/taskboard/internal/web"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "taskboard", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	if err := db.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("failed to ensure database schema: %v", err)
	}

	hasher := &commoncrypto.BcryptHasher{}
	idGenerator := commoncrypto.NewUUIDGenerator()

	authService := authservice.NewAuthService(authservice.AuthServiceDeps{
		Repo:        authrepo.NewPgRepository(pool),
		Hasher:      hasher,
		IDGenerator: idGenerator,
		Log:         log,
	})

	taskService := taskservice.NewTaskService(taskservice.TaskServiceDeps{
		Repo:        taskrepo.NewPgRepository(pool),
		IDGenerator: idGenerator,
		Log:         log,
	})

	authHandler := authhttp.NewHandler(authService, cfg.RequestTimeout, log)
	taskHandler := taskhttp.NewHandler(taskService, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.Handle("/api/register", authHandler)
	mux.Handle("/api/login", authHandler)
	mux.Handle("/api/tasks", taskHandler)
	mux.Handle("/api/tasks/", taskHandler)
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", web.Handler())

	rateLimiter := commonhttp.NewStrictRateLimiter()
	handler := rateLimiter.Middleware(commonhttp.BuildBaseHandler(log, mux))

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, handler)

	srv.StartWithGracefulShutdown(server, log, "taskboard")
}
