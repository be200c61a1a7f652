package recipes

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, recipe *Recipe) (*Recipe, error)
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	List(ctx context.Context) ([]*Recipe, error)
	Latest(ctx context.Context, n int) ([]*Recipe, error)
	Update(ctx context.Context, recipe *Recipe) (*Recipe, error)
	Delete(ctx context.Context, id int64) error
	ExistsByTitleAndAuthor(ctx context.Context, title string, authorID int64) (bool, error)
}
