package http

import (
	"context"
	"time"

	"github.com/gourmich/gourmich/internal/common"
	"github.com/gourmich/gourmich/internal/logging"
	"github.com/gourmich/gourmich/internal/server/favorites"
	"github.com/gourmich/gourmich/internal/server/recipes"
	"github.com/gourmich/gourmich/internal/server/users"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// ---- users ----

type fakeUserRepo struct {
	byUsername map[string]*users.User
	nextID     int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*users.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	if _, ok := f.byUsername[user.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u := *user
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.nextID++
	f.byUsername[u.Username] = &u
	return &u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range f.byUsername {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ---- recipes ----

type fakeRecipeRepo struct {
	byID   map[int64]*recipes.Recipe
	order  []int64
	nextID int64
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{byID: map[int64]*recipes.Recipe{}, nextID: 1}
}

func (f *fakeRecipeRepo) Create(ctx context.Context, recipe *recipes.Recipe) (*recipes.Recipe, error) {
	r := *recipe
	r.ID = f.nextID
	r.CreatedAt = time.Now()
	for i := range r.Ingredients {
		r.Ingredients[i].ID = int64(i + 1)
	}
	f.nextID++
	f.byID[r.ID] = &r
	f.order = append(f.order, r.ID)
	return &r, nil
}

func (f *fakeRecipeRepo) GetByID(ctx context.Context, id int64) (*recipes.Recipe, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r, nil
}

func (f *fakeRecipeRepo) List(ctx context.Context) ([]*recipes.Recipe, error) {
	out := make([]*recipes.Recipe, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeRecipeRepo) Latest(ctx context.Context, n int) ([]*recipes.Recipe, error) {
	out := []*recipes.Recipe{}
	for i := len(f.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.byID[f.order[i]])
	}
	return out, nil
}

func (f *fakeRecipeRepo) Update(ctx context.Context, recipe *recipes.Recipe) (*recipes.Recipe, error) {
	if _, ok := f.byID[recipe.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	r := *recipe
	f.byID[r.ID] = &r
	return &r, nil
}

func (f *fakeRecipeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRecipeRepo) ExistsByTitleAndAuthor(ctx context.Context, title string, authorID int64) (bool, error) {
	for _, r := range f.byID {
		if r.Title == title && r.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

// ---- favorites ----

type fakeFavoriteRepo struct {
	byID    map[int64]*favorites.Favorite
	recipes *fakeRecipeRepo
	nextID  int64
}

func newFakeFavoriteRepo(recipes *fakeRecipeRepo) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{byID: map[int64]*favorites.Favorite{}, recipes: recipes, nextID: 1}
}

func (f *fakeFavoriteRepo) Find(ctx context.Context, userID, recipeID int64) (*favorites.Favorite, error) {
	for _, fav := range f.byID {
		if fav.UserID == userID && fav.RecipeID == recipeID {
			return fav, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeFavoriteRepo) Create(ctx context.Context, userID, recipeID int64) (*favorites.Favorite, error) {
	fav := &favorites.Favorite{ID: f.nextID, UserID: userID, RecipeID: recipeID, CreatedAt: time.Now()}
	f.nextID++
	f.byID[fav.ID] = fav
	return fav, nil
}

func (f *fakeFavoriteRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeFavoriteRepo) view(fav *favorites.Favorite) (*favorites.RecipeFavorite, error) {
	r, ok := f.recipes.byID[fav.RecipeID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &favorites.RecipeFavorite{
		FavoriteID:     fav.ID,
		RecipeID:       r.ID,
		Title:          r.Title,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		AuthorUsername: r.AuthorUsername,
		CookingTime:    r.CookingTime,
		Category:       r.Category,
	}, nil
}

func (f *fakeFavoriteRepo) ListWithRecipes(ctx context.Context, userID int64) ([]*favorites.RecipeFavorite, error) {
	out := []*favorites.RecipeFavorite{}
	for _, fav := range f.byID {
		if fav.UserID != userID {
			continue
		}
		v, err := f.view(fav)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeFavoriteRepo) GetWithRecipe(ctx context.Context, id int64) (*favorites.RecipeFavorite, error) {
	fav, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return f.view(fav)
}
