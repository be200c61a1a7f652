package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gourmich/gourmich/internal/common"
	"github.com/gourmich/gourmich/internal/server/categories"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectFavoriteWithRecipe = `
	SELECT f.id, r.id, r.title, r.description, r.image_url,
	       u.username, r.cooking_time, r.category
	FROM favorites f
	JOIN recipes r ON r.id = f.recipe_id
	JOIN users u ON u.id = r.author_id
`

func (r *PostgresRepository) Find(ctx context.Context, userID, recipeID int64) (*Favorite, error) {
	query :=
		`SELECT id, user_id, recipe_id, created_at FROM favorites
		 WHERE user_id = $1 AND recipe_id = $2
		 `

	fav := &Favorite{}
	err := r.db.QueryRowContext(ctx, query, userID, recipeID).
		Scan(&fav.ID, &fav.UserID, &fav.RecipeID, &fav.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return fav, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID, recipeID int64) (*Favorite, error) {
	query :=
		`INSERT INTO favorites (user_id, recipe_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	fav := &Favorite{UserID: userID, RecipeID: recipeID}
	err := r.db.QueryRowContext(ctx, query, userID, recipeID).Scan(&fav.ID, &fav.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return fav, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListWithRecipes(ctx context.Context, userID int64) ([]*RecipeFavorite, error) {
	rows, err := r.db.QueryContext(ctx,
		selectFavoriteWithRecipe+` WHERE f.user_id = $1 ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*RecipeFavorite
	for rows.Next() {
		fav, err := scanRecipeFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning favorite: %w", err)
		}
		result = append(result, fav)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) GetWithRecipe(ctx context.Context, id int64) (*RecipeFavorite, error) {
	fav, err := scanRecipeFavorite(r.db.QueryRowContext(ctx, selectFavoriteWithRecipe+` WHERE f.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return fav, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipeFavorite(row rowScanner) (*RecipeFavorite, error) {
	fav := &RecipeFavorite{}
	var category string
	err := row.Scan(&fav.FavoriteID, &fav.RecipeID, &fav.Title, &fav.Description,
		&fav.ImageURL, &fav.AuthorUsername, &fav.CookingTime, &category)
	if err != nil {
		return nil, err
	}
	fav.Category = categories.Category(category)
	return fav, nil
}
