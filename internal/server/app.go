// Package server wires the application together: configuration, storage,
// domain services and the HTTP endpoint, plus graceful shutdown on OS
// signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gourmich/gourmich/internal/logging"
	"github.com/gourmich/gourmich/internal/server/auth"
	"github.com/gourmich/gourmich/internal/server/config"
	"github.com/gourmich/gourmich/internal/server/favorites"
	gh "github.com/gourmich/gourmich/internal/server/http"
	"github.com/gourmich/gourmich/internal/server/images"
	"github.com/gourmich/gourmich/internal/server/recipes"
	"github.com/gourmich/gourmich/internal/server/shared/db"
	"github.com/gourmich/gourmich/internal/server/users"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	repos           db.RepositoryManager
	tokenService    *auth.Service
	userService     *users.Service
	recipeService   *recipes.Service
	favoriteService *favorites.Service
	imageService    *images.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	key, err := auth.KeyFromSecret(c.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("jwt key error: %w", err)
	}
	ts := auth.NewService(key, c.TokenValidityDuration)

	us := users.NewService(rm.Users(), ts)
	rs := recipes.NewService(rm.Recipes())
	fs := favorites.NewService(rm.Favorites(), rm.Recipes())
	is := images.NewService(c)

	return &App{
		config:          c,
		logger:          logger,
		repos:           rm,
		tokenService:    ts,
		userService:     us,
		recipeService:   rs,
		favoriteService: fs,
		imageService:    is,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gh.NewServer(app.config.EndpointAddr, app.logger, app.tokenService,
		app.userService, app.recipeService, app.favoriteService, app.imageService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.repos.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migration error", "error", err)
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
