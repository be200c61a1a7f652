// Package categories defines the fixed set of recipe categories. The JSON
// form of a category is its display label ("Main Course"); parsing accepts
// either the label or the constant name, case-insensitively.
package categories

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gourmich/gourmich/internal/common"
)

type Category string

const (
	MainCourse Category = "MAIN_COURSE"
	SideDish   Category = "SIDE_DISH"
	Dessert    Category = "DESSERT"
	Drink      Category = "DRINK"
	Snack      Category = "SNACK"
	Starter    Category = "STARTER"
)

var labels = map[Category]string{
	MainCourse: "Main Course",
	SideDish:   "Side Dish",
	Dessert:    "Dessert",
	Drink:      "Drink",
	Snack:      "Snack",
	Starter:    "Starter",
}

// All returns every category in declaration order.
func All() []Category {
	return []Category{MainCourse, SideDish, Dessert, Drink, Snack, Starter}
}

// Names returns the constant names, the payload of GET /api/categories.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = string(c)
	}
	return names
}

// Label returns the display label for the category.
func (c Category) Label() string {
	return labels[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Parse resolves a string to a Category, accepting the label or the name,
// trimmed and case-insensitive.
func Parse(value string) (Category, error) {
	trimmed := strings.TrimSpace(value)
	for c, label := range labels {
		if strings.EqualFold(trimmed, label) || strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", common.ErrUnknownCategory, value)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Label())
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
