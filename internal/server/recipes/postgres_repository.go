package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gourmich/gourmich/internal/common"
	"github.com/gourmich/gourmich/internal/dbx"
	"github.com/gourmich/gourmich/internal/server/categories"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectRecipe = `
	SELECT r.id, r.title, r.description, r.image_url, r.category,
	       r.difficulty, r.cooking_time, r.instructions,
	       r.author_id, u.username, r.created_at
	FROM recipes r
	JOIN users u ON u.id = r.author_id
`

// Create inserts the recipe and its ingredient rows in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, recipe *Recipe) (*Recipe, error) {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `
			INSERT INTO recipes (title, description, image_url, category,
			                     difficulty, cooking_time, instructions, author_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at
		`
		if err := tx.QueryRowContext(ctx, query,
			recipe.Title, recipe.Description, recipe.ImageURL, string(recipe.Category),
			recipe.Difficulty, recipe.CookingTime, recipe.Instructions, recipe.AuthorID,
		).Scan(&recipe.ID, &recipe.CreatedAt); err != nil {
			return fmt.Errorf("error inserting recipe: %w", err)
		}

		return insertIngredients(ctx, tx, recipe.ID, recipe.Ingredients)
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, selectRecipe+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if recipe.Ingredients, err = r.loadIngredients(ctx, recipe.ID); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Recipe, error) {
	return r.queryRecipes(ctx, selectRecipe+` ORDER BY r.created_at DESC`)
}

func (r *PostgresRepository) Latest(ctx context.Context, n int) ([]*Recipe, error) {
	return r.queryRecipes(ctx, selectRecipe+` ORDER BY r.created_at DESC LIMIT $1`, n)
}

// Update rewrites the recipe row and replaces all of its ingredients in one
// transaction. The author column is deliberately not part of the statement:
// ownership never changes.
func (r *PostgresRepository) Update(ctx context.Context, recipe *Recipe) (*Recipe, error) {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `
			UPDATE recipes
			SET title = $1, description = $2, image_url = $3, category = $4,
			    difficulty = $5, cooking_time = $6, instructions = $7
			WHERE id = $8
		`
		res, err := tx.ExecContext(ctx, query,
			recipe.Title, recipe.Description, recipe.ImageURL, string(recipe.Category),
			recipe.Difficulty, recipe.CookingTime, recipe.Instructions, recipe.ID)
		if err != nil {
			return fmt.Errorf("error updating recipe: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return common.ErrorNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
			return fmt.Errorf("error clearing ingredients: %w", err)
		}
		return insertIngredients(ctx, tx, recipe.ID, recipe.Ingredients)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, recipe.ID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting recipe: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ExistsByTitleAndAuthor(ctx context.Context, title string, authorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM recipes WHERE title = $1 AND author_id = $2)`,
		title, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]*Recipe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning recipe: %w", err)
		}
		result = append(result, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, recipe := range result {
		if recipe.Ingredients, err = r.loadIngredients(ctx, recipe.ID); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *PostgresRepository) loadIngredients(ctx context.Context, recipeID int64) ([]Ingredient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, quantity, unit FROM ingredients WHERE recipe_id = $1 ORDER BY id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("error loading ingredients: %w", err)
	}
	defer rows.Close()

	var result []Ingredient
	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Quantity, &ing.Unit); err != nil {
			return nil, fmt.Errorf("error scanning ingredient: %w", err)
		}
		result = append(result, ing)
	}
	return result, rows.Err()
}

func insertIngredients(ctx context.Context, tx dbx.DBTX, recipeID int64, ingredients []Ingredient) error {
	for _, ing := range ingredients {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO ingredients (recipe_id, name, quantity, unit) VALUES ($1, $2, $3, $4)`,
			recipeID, ing.Name, ing.Quantity, ing.Unit)
		if err != nil {
			return fmt.Errorf("error inserting ingredient: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*Recipe, error) {
	recipe := &Recipe{}
	var category string
	err := row.Scan(&recipe.ID, &recipe.Title, &recipe.Description, &recipe.ImageURL,
		&category, &recipe.Difficulty, &recipe.CookingTime, &recipe.Instructions,
		&recipe.AuthorID, &recipe.AuthorUsername, &recipe.CreatedAt)
	if err != nil {
		return nil, err
	}
	recipe.Category = categories.Category(category)
	return recipe, nil
}
