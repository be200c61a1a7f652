package db

import (
	"context"
	"database/sql"

	"github.com/gourmich/gourmich/internal/server/favorites"
	"github.com/gourmich/gourmich/internal/server/recipes"
	"github.com/gourmich/gourmich/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Recipes() recipes.Repository
	Favorites() favorites.Repository
}
