// Package recipes implements recipe CRUD with the owner-only mutation rule:
// only the identity that created a recipe may update or delete it, and a
// missing recipe is reported before ownership is ever evaluated.
package recipes

import (
	"context"
	"fmt"

	"github.com/gourmich/gourmich/internal/common"
	"github.com/gourmich/gourmich/internal/server/users"
)

const (
	latestDefault = 3
	latestMax     = 50
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new recipe authored by the given user. A user may not
// reuse one of their own titles; other users may.
func (s *Service) Create(ctx context.Context, author *users.User, recipe *Recipe) (*Recipe, error) {
	if !recipe.Category.Valid() {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownCategory, recipe.Category)
	}
	if len(recipe.Ingredients) == 0 {
		return nil, common.ErrMissingIngredients
	}

	exists, err := s.repo.ExistsByTitleAndAuthor(ctx, recipe.Title, author.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking title: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: this user already created a recipe with the title: %s",
			common.ErrDuplicateTitle, recipe.Title)
	}

	recipe.AuthorID = author.ID
	recipe.AuthorUsername = author.Username

	return s.repo.Create(ctx, recipe)
}

func (s *Service) List(ctx context.Context) ([]*Recipe, error) {
	return s.repo.List(ctx)
}

// Latest returns the n most recently created recipes. n defaults to 3 and
// is clamped to [1, 50].
func (s *Service) Latest(ctx context.Context, n int) ([]*Recipe, error) {
	if n <= 0 {
		n = latestDefault
	}
	if n > latestMax {
		n = latestMax
	}
	return s.repo.Latest(ctx, n)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces every mutable field of the recipe, including the whole
// ingredient list. Existence is checked before ownership: a missing id is
// ErrorNotFound even when the requester would not have owned it.
func (s *Service) Update(ctx context.Context, requester string, id int64, updated *Recipe) (*Recipe, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeMutation(current.AuthorUsername, requester); err != nil {
		return nil, fmt.Errorf("%w: you're not allowed to edit a recipe that isn't yours", err)
	}

	if !updated.Category.Valid() {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownCategory, updated.Category)
	}
	if len(updated.Ingredients) == 0 {
		return nil, common.ErrMissingIngredients
	}

	current.Title = updated.Title
	current.Description = updated.Description
	current.ImageURL = updated.ImageURL
	current.Category = updated.Category
	current.Difficulty = updated.Difficulty
	current.CookingTime = updated.CookingTime
	current.Instructions = updated.Instructions
	current.Ingredients = updated.Ingredients

	return s.repo.Update(ctx, current)
}

// Delete removes the recipe after the same existence-then-ownership
// sequence as Update.
func (s *Service) Delete(ctx context.Context, requester string, id int64) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := authorizeMutation(current.AuthorUsername, requester); err != nil {
		return fmt.Errorf("%w: you are not authorized to delete this recipe", err)
	}

	return s.repo.Delete(ctx, id)
}

// authorizeMutation is the ownership check: a pure comparison between the
// resource's recorded owner and the requesting identity. No role hierarchy
// exists.
func authorizeMutation(ownerUsername, requesterUsername string) error {
	if ownerUsername != requesterUsername {
		return common.ErrNotOwner
	}
	return nil
}
