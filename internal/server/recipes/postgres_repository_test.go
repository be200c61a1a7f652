package recipes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/gourmich/gourmich/internal/common"
	"github.com/gourmich/gourmich/internal/server/categories"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func recipeColumns() []string {
	return []string{"id", "title", "description", "image_url", "category",
		"difficulty", "cooking_time", "instructions", "author_id", "username", "created_at"}
}

func ingredientColumns() []string {
	return []string{"id", "name", "quantity", "unit"}
}

func TestCreate_InsertsRecipeAndIngredients(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	recipe := &Recipe{
		Title:        "Pancakes",
		Description:  "Fluffy",
		ImageURL:     "https://img.example.com/p.jpg",
		Category:     categories.Dessert,
		Difficulty:   1,
		CookingTime:  20,
		Instructions: "Mix. Fry.",
		AuthorID:     1,
		Ingredients: []Ingredient{
			{Name: "Flour", Quantity: 200, Unit: "g"},
			{Name: "Milk", Quantity: 300, Unit: "ml"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO recipes`).
		WithArgs("Pancakes", "Fluffy", "https://img.example.com/p.jpg", "DESSERT",
			1, int64(20), "Mix. Fry.", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), time.Now()))
	mock.ExpectExec(`INSERT INTO ingredients`).
		WithArgs(int64(10), "Flour", 200.0, "g").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO ingredients`).
		WithArgs(int64(10), "Milk", 300.0, "ml").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	got, err := repo.Create(context.Background(), recipe)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 10 {
		t.Fatalf("expected id 10, got %d", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_RollsBackOnIngredientError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO recipes`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), time.Now()))
	mock.ExpectExec(`INSERT INTO ingredients`).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &Recipe{
		Category:    categories.Snack,
		Ingredients: []Ingredient{{Name: "Salt", Quantity: 1, Unit: "tsp"}},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByID_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT r\.id, r\.title, .* FROM recipes r\s+JOIN users u`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(recipeColumns()).
			AddRow(int64(10), "Pancakes", "Fluffy", "", "DESSERT", 1, int64(20), "Mix.", int64(1), "alice", time.Now()))
	mock.ExpectQuery(`SELECT id, name, quantity, unit FROM ingredients`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(ingredientColumns()).
			AddRow(int64(1), "Flour", 200.0, "g"))

	got, err := repo.GetByID(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.AuthorUsername != "alice" || got.Category != categories.Dessert {
		t.Fatalf("unexpected recipe: %+v", got)
	}
	if len(got.Ingredients) != 1 || got.Ingredients[0].Name != "Flour" {
		t.Fatalf("unexpected ingredients: %+v", got.Ingredients)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT r\.id`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM recipes WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 10); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(`DELETE FROM recipes WHERE id = \$1`).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 11); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound for missing row, got %v", err)
	}
}

func TestExistsByTitleAndAuthor(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM recipes WHERE title = \$1 AND author_id = \$2\)`).
		WithArgs("Pancakes", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsByTitleAndAuthor(context.Background(), "Pancakes", 1)
	if err != nil || !ok {
		t.Fatalf("ExistsByTitleAndAuthor = %v, %v", ok, err)
	}
}

func TestLatest_PassesLimit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`ORDER BY r\.created_at DESC LIMIT \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(recipeColumns()))

	got, err := repo.Latest(context.Background(), 3)
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}
