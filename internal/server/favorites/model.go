package favorites

import (
	"time"

	"github.com/gourmich/gourmich/internal/server/categories"
)

// Favorite links a user to a recipe; (UserID, RecipeID) is unique.
type Favorite struct {
	ID        int64
	UserID    int64
	RecipeID  int64
	CreatedAt time.Time
}

// RecipeFavorite is a favorite joined with the recipe summary the list and
// toggle endpoints return.
type RecipeFavorite struct {
	FavoriteID     int64
	RecipeID       int64
	Title          string
	Description    string
	ImageURL       string
	AuthorUsername string
	CookingTime    int64
	Category       categories.Category
}
