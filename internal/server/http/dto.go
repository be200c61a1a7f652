package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gourmich/gourmich/internal/server/categories"
	"github.com/gourmich/gourmich/internal/server/favorites"
	"github.com/gourmich/gourmich/internal/server/recipes"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *registerRequest) validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("Username is required")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return errors.New("Email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("Email must be well-formed")
	}
	if r.Password == "" {
		return errors.New("Password is required")
	}
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ingredientDTO struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type recipeRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"imageUrl"`
	Category     string          `json:"category"`
	Difficulty   int             `json:"difficulty"`
	CookingTime  int64           `json:"cookingTime"`
	Ingredients  []ingredientDTO `json:"ingredients"`
	Instructions string          `json:"instructions"`
}

func (r *recipeRequest) validate() (categories.Category, error) {
	title := strings.TrimSpace(r.Title)
	if len(title) < 4 || len(title) > 100 {
		return "", errors.New("Title must be between 4 and 100 characters")
	}
	category, err := categories.Parse(r.Category)
	if err != nil {
		return "", fmt.Errorf("Unknown category: %s", r.Category)
	}
	if r.Difficulty < 1 {
		return "", errors.New("Difficulty must be at least 1")
	}
	if r.CookingTime < 1 {
		return "", errors.New("Cooking time must be at least 1 minute")
	}
	if len(r.Ingredients) == 0 {
		return "", errors.New("At least one ingredient is required")
	}
	if strings.TrimSpace(r.Instructions) == "" {
		return "", errors.New("Instructions must not be blank")
	}
	return category, nil
}

func (r *recipeRequest) toModel(category categories.Category) *recipes.Recipe {
	ingredients := make([]recipes.Ingredient, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredients = append(ingredients, recipes.Ingredient{
			Name:     i.Name,
			Quantity: i.Quantity,
			Unit:     i.Unit,
		})
	}
	return &recipes.Recipe{
		Title:        strings.TrimSpace(r.Title),
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Category:     category,
		Difficulty:   r.Difficulty,
		CookingTime:  r.CookingTime,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
	}
}

type recipeDTO struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	ImageURL       string              `json:"imageUrl"`
	Category       categories.Category `json:"category"`
	Difficulty     int                 `json:"difficulty"`
	CookingTime    int64               `json:"cookingTime"`
	Ingredients    []ingredientDTO     `json:"ingredients"`
	Instructions   string              `json:"instructions"`
	AuthorUsername string              `json:"authorUsername"`
	CreatedAt      time.Time           `json:"createdAt"`
}

func toRecipeDTO(r *recipes.Recipe) recipeDTO {
	ingredients := make([]ingredientDTO, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredients = append(ingredients, ingredientDTO{
			ID:       i.ID,
			Name:     i.Name,
			Quantity: i.Quantity,
			Unit:     i.Unit,
		})
	}
	return recipeDTO{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		Category:       r.Category,
		Difficulty:     r.Difficulty,
		CookingTime:    r.CookingTime,
		Ingredients:    ingredients,
		Instructions:   r.Instructions,
		AuthorUsername: r.AuthorUsername,
		CreatedAt:      r.CreatedAt,
	}
}

func toRecipeDTOs(rs []*recipes.Recipe) []recipeDTO {
	out := make([]recipeDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRecipeDTO(r))
	}
	return out
}

type favoriteDTO struct {
	ID             int64               `json:"id"`
	RecipeID       int64               `json:"recipeId"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	ImageURL       string              `json:"imageUrl"`
	AuthorUsername string              `json:"authorUsername"`
	CookingTime    int64               `json:"cookingTime"`
	Category       categories.Category `json:"category"`
}

func toFavoriteDTO(f *favorites.RecipeFavorite) favoriteDTO {
	return favoriteDTO{
		ID:             f.FavoriteID,
		RecipeID:       f.RecipeID,
		Title:          f.Title,
		Description:    f.Description,
		ImageURL:       f.ImageURL,
		AuthorUsername: f.AuthorUsername,
		CookingTime:    f.CookingTime,
		Category:       f.Category,
	}
}

func toFavoriteDTOs(fs []*favorites.RecipeFavorite) []favoriteDTO {
	out := make([]favoriteDTO, 0, len(fs))
	for _, f := range fs {
		out = append(out, toFavoriteDTO(f))
	}
	return out
}
