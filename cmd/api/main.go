package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/teamtodo/teamtodo-backend/internal/auth"
	"github.com/teamtodo/teamtodo-backend/internal/config"
	"github.com/teamtodo/teamtodo-backend/internal/database"
	"github.com/teamtodo/teamtodo-backend/internal/domain"
	"github.com/teamtodo/teamtodo-backend/internal/repository"
	"github.com/teamtodo/teamtodo-backend/internal/server"
	"github.com/teamtodo/teamtodo-backend/internal/service"
)

func gracefulShutdown(apiServer *http.Server, dbService database.Service, log *zap.SugaredLogger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	if err := dbService.Close(); err != nil {
		log.Errorw("closing database connection pool", "error", err)
	}

	log.Info("server exiting")
	done <- true
}

func newLogger() *zap.SugaredLogger {
	if os.Getenv("APP_ENV") == "production" {
		return zap.Must(zap.NewProduction()).Sugar()
	}
	return zap.Must(zap.NewDevelopment()).Sugar()
}

func main() {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("load config", "error", err)
	}

	dbService, err := database.New(cfg.Database, log)
	if err != nil {
		log.Fatalw("connect database", "error", err)
	}
	gormDB := dbService.GetDB()

	// Dev-only schema sync; production uses real migrations.
	if err := gormDB.AutoMigrate(
		&domain.Team{},
		&domain.User{},
		&domain.TodoList{},
		&domain.Task{},
		&domain.Invite{},
	); err != nil {
		log.Fatalw("auto-migrate database", "error", err)
	}

	userRepo := repository.NewGormUserRepository(gormDB)
	teamRepo := repository.NewGormTeamRepository(gormDB)
	listRepo := repository.NewGormListRepository(gormDB)
	taskRepo := repository.NewGormTaskRepository(gormDB)
	inviteRepo := repository.NewGormInviteRepository(gormDB)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	resolver := auth.NewResolver(tokens, userRepo)

	apiServer := server.NewServer(cfg.Server, server.Deps{
		Auth:     service.NewAuthService(userRepo, tokens, cfg.Auth.BcryptCost, log),
		Users:    service.NewUserService(userRepo, cfg.Auth.BcryptCost, log),
		Teams:    service.NewTeamService(teamRepo, log),
		Lists:    service.NewListService(listRepo, log),
		Tasks:    service.NewTaskService(taskRepo, listRepo, log),
		Invites:  service.NewInviteService(inviteRepo, log),
		Resolver: resolver,
		DB:       dbService,
		Log:      log,
	})

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, dbService, log, done)

	log.Infow("starting server", "addr", apiServer.Addr)
	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalw("http server error", "error", err)
	}

	<-done
	log.Info("graceful shutdown complete")
}
