package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gourmich/gourmich/internal/server/favorites"
	"github.com/gourmich/gourmich/internal/server/migrations"
	"github.com/gourmich/gourmich/internal/server/recipes"
	"github.com/gourmich/gourmich/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db        *sql.DB
	users     users.Repository
	recipes   recipes.Repository
	favorites favorites.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Recipes() recipes.Repository {
	return m.recipes
}

func (m *PostgresRepositoryManager) Favorites() favorites.Repository {
	return m.favorites
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &PostgresRepositoryManager{
		db:        db,
		users:     users.NewPostgresRepository(db),
		recipes:   recipes.NewPostgresRepository(db),
		favorites: favorites.NewPostgresRepository(db),
	}, nil
}
