// Package server wires the HTTP surface: routing, middleware, request
// decoding and the mapping from domain errors to status codes.
package server

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/teamtodo/teamtodo-backend/internal/auth"
	"github.com/teamtodo/teamtodo-backend/internal/config"
	"github.com/teamtodo/teamtodo-backend/internal/database"
	"github.com/teamtodo/teamtodo-backend/internal/service"
)

// Deps bundles everything the HTTP layer depends on.
type Deps struct {
	Auth     service.AuthService
	Users    service.UserService
	Teams    service.TeamService
	Lists    service.ListService
	Tasks    service.TaskService
	Invites  service.InviteService
	Resolver *auth.Resolver
	DB       database.Service
	Log      *zap.SugaredLogger
}

type Server struct {
	auth     service.AuthService
	users    service.UserService
	teams    service.TeamService
	lists    service.ListService
	tasks    service.TaskService
	invites  service.InviteService
	resolver *auth.Resolver
	db       database.Service
	log      *zap.SugaredLogger
}

// NewServer builds the configured *http.Server.
func NewServer(cfg config.ServerConfig, deps Deps) *http.Server {
	appServer := &Server{
		auth:     deps.Auth,
		users:    deps.Users,
		teams:    deps.Teams,
		lists:    deps.Lists,
		tasks:    deps.Tasks,
		invites:  deps.Invites,
		resolver: deps.Resolver,
		db:       deps.DB,
		log:      deps.Log,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      appServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
