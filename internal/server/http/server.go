// Package http exposes the REST API: a gin engine with a request gate
// middleware in front of the domain services.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gourmich/gourmich/internal/logging"
	"github.com/gourmich/gourmich/internal/server/auth"
	"github.com/gourmich/gourmich/internal/server/favorites"
	"github.com/gourmich/gourmich/internal/server/images"
	"github.com/gourmich/gourmich/internal/server/recipes"
	"github.com/gourmich/gourmich/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	logger    logging.Logger
	tokens    *auth.Service
	users     *users.Service
	recipes   *recipes.Service
	favorites *favorites.Service
	images    *images.Service
}

func NewServer(a string, l logging.Logger, tokens *auth.Service, us *users.Service,
	rs *recipes.Service, fs *favorites.Service, is *images.Service) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		tokens:    tokens,
		users:     us,
		recipes:   rs,
		favorites: fs,
		images:    is,
	}
}

func (s *Server) engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestGate())
	s.registerRoutes(r)
	return r
}

func (s *Server) registerRoutes(r *gin.Engine) {
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)
	authGroup.GET("/check-username", s.checkUsername)
	authGroup.GET("/check-email", s.checkEmail)

	recipeGroup := api.Group("/recipes")
	recipeGroup.GET("", s.listRecipes)
	recipeGroup.GET("/latest", s.latestRecipes)
	recipeGroup.POST("", s.createRecipe)
	recipeGroup.GET("/by-id/:id", s.getRecipe)
	recipeGroup.PUT("/by-id/:id", s.updateRecipe)
	recipeGroup.DELETE("/by-id/:id", s.deleteRecipe)

	favoriteGroup := api.Group("/favorites")
	favoriteGroup.GET("", s.listFavorites)
	favoriteGroup.POST("/toggle", s.toggleFavorite)
	favoriteGroup.GET("/is-favorite/:recipeId", s.isFavorite)

	api.GET("/categories", s.listCategories)

	imageGroup := api.Group("/images")
	imageGroup.POST("/upload-url", s.imageUploadURL)
	imageGroup.GET("/download-url", s.imageDownloadURL)
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
