package favorites

import (
	"context"
)

type Repository interface {
	Find(ctx context.Context, userID, recipeID int64) (*Favorite, error)
	Create(ctx context.Context, userID, recipeID int64) (*Favorite, error)
	Delete(ctx context.Context, id int64) error
	ListWithRecipes(ctx context.Context, userID int64) ([]*RecipeFavorite, error)
	GetWithRecipe(ctx context.Context, id int64) (*RecipeFavorite, error)
}
