package recipes

import (
	"time"

	"github.com/gourmich/gourmich/internal/server/categories"
)

// Recipe is the central domain entity. AuthorID/AuthorUsername record the
// creator; the relation is set once at creation time and never reassigned.
type Recipe struct {
	ID           int64
	Title        string
	Description  string
	ImageURL     string
	Category     categories.Category
	Difficulty   int
	CookingTime  int64 // minutes
	Ingredients  []Ingredient
	Instructions string
	AuthorID     int64
	AuthorUsername string
	CreatedAt    time.Time
}

// Ingredient belongs to exactly one recipe and is replaced wholesale on
// update.
type Ingredient struct {
	ID       int64
	Name     string
	Quantity float64
	Unit     string
}
