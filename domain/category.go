package domain

import (
	"fmt"
	"strings"
)

// Category is a curated grouping that maps to one or more subreddits.
type Category string

const (
	CategoryPopular     Category = "popular"
	CategoryAll         Category = "all"
	CategoryGaming      Category = "gaming"
	CategorySports      Category = "sports"
	CategoryNews        Category = "news"
	CategoryTechnology  Category = "technology"
	CategoryProgramming Category = "programming"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPopular,
	CategoryAll,
	CategoryGaming,
	CategorySports,
	CategoryNews,
	CategoryTechnology,
	CategoryProgramming,
}

var categorySources = map[Category][]string{
	CategoryGaming:      {"gaming", "Games", "pcgaming", "GameDeals", "Steam", "videogames", "esports", "gamernews"},
	CategorySports:      {"sports", "nba", "soccer", "nfl", "baseball", "hockey", "formula1", "MMA", "tennis"},
	CategoryNews:        {"news", "worldnews", "politics", "technews", "UpliftingNews", "science", "business"},
	CategoryTechnology:  {"technology", "tech", "gadgets", "hardware", "artificial", "Futurology", "cybersecurity"},
	CategoryProgramming: {"programming", "coding", "webdev", "learnprogramming", "javascript", "reactjs", "python"},
	CategoryPopular:     {"popular"},
	CategoryAll:         {"all"},
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categorySources[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Sources returns a copy of the subreddits the category spans.
func (c Category) Sources() []string {
	return append([]string(nil), categorySources[c]...)
}

// IsBlanket reports whether the category is one of reddit's pseudo-subreddits
// that already span the whole site.
func (c Category) IsBlanket() bool {
	return c == CategoryPopular || c == CategoryAll
}

// Title is the heading shown above the category's list.
func (c Category) Title() string {
	switch c {
	case CategoryPopular:
		return "Popular Posts"
	case CategoryAll:
		return "All Posts"
	}
	return c.Label() + " Posts"
}

// Label is the capitalized category name.
func (c Category) Label() string {
	s := string(c)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
