// Package favorites implements per-user recipe bookmarks: listing, a toggle
// operation that adds or removes the mark, and a membership check.
package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/gourmich/gourmich/internal/common"
	"github.com/gourmich/gourmich/internal/server/recipes"
)

type Service struct {
	repo    Repository
	recipes recipes.Repository
}

func NewService(repo Repository, recipeRepo recipes.Repository) *Service {
	return &Service{repo: repo, recipes: recipeRepo}
}

// List returns the requesting user's favorites joined with their recipe
// summaries, most recent first.
func (s *Service) List(ctx context.Context, userID int64) ([]*RecipeFavorite, error) {
	return s.repo.ListWithRecipes(ctx, userID)
}

// Toggle flips the favorite mark for (user, recipe). When the mark existed
// it is removed and removed=true is returned with a nil view; otherwise the
// recipe must exist (common.ErrorNotFound if it doesn't) and the freshly
// created favorite is returned.
func (s *Service) Toggle(ctx context.Context, userID, recipeID int64) (view *RecipeFavorite, removed bool, err error) {
	existing, err := s.repo.Find(ctx, userID, recipeID)
	if err == nil {
		if err := s.repo.Delete(ctx, existing.ID); err != nil {
			return nil, false, fmt.Errorf("error removing favorite: %w", err)
		}
		return nil, true, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, false, fmt.Errorf("error searching favorite: %w", err)
	}

	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return nil, false, err
	}

	created, err := s.repo.Create(ctx, userID, recipeID)
	if err != nil {
		return nil, false, fmt.Errorf("error creating favorite: %w", err)
	}

	fav, err := s.repo.GetWithRecipe(ctx, created.ID)
	if err != nil {
		return nil, false, fmt.Errorf("error loading favorite: %w", err)
	}
	return fav, false, nil
}

// IsFavorite reports whether the user has marked the recipe.
func (s *Service) IsFavorite(ctx context.Context, userID, recipeID int64) (bool, error) {
	_, err := s.repo.Find(ctx, userID, recipeID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	return false, err
}
