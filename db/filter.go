package db

import (
	"net/url"
	"strconv"
	"strings"

	"library/models"
)

// Query parameters understood by ParseFilter
const (
	AuthorParam       = "author"
	PriceAtLeastParam = "price-at-least"
	PriceAtMostParam  = "price-at-most"
	YearAtLeastParam  = "year-at-least"
	YearAtMostParam   = "year-at-most"
	GenresParam       = "genres"
)

// older clients send the bounds under these names
var boundAliases = map[string]string{
	PriceAtLeastParam: "price-bigger-than",
	PriceAtMostParam:  "price-less-than",
	YearAtLeastParam:  "year-bigger-than",
	YearAtMostParam:   "year-less-than",
}

// Filter holds the predicates of a list or count request. A nil bound, an empty
// author or an empty genre list places no restriction on that dimension.
type Filter struct {
	Author       string
	PriceAtLeast *int
	PriceAtMost  *int
	YearAtLeast  *int
	YearAtMost   *int
	Genres       []models.Genre
}

// ParseFilter reads the predicates from a query string.
// An unknown genre or a bound that is not an integer is rejected.
func ParseFilter(query url.Values) (Filter, error) {
	var (
		filter Filter
		err    error
	)

	filter.Author = query.Get(AuthorParam)

	bounds := []struct {
		param  string
		target **int
	}{
		{PriceAtLeastParam, &filter.PriceAtLeast},
		{PriceAtMostParam, &filter.PriceAtMost},
		{YearAtLeastParam, &filter.YearAtLeast},
		{YearAtMostParam, &filter.YearAtMost},
	}

	for _, bound := range bounds {
		if *bound.target, err = parseBound(query, bound.param); err != nil {
			return Filter{}, err
		}
	}

	if raw := query.Get(GenresParam); raw != "" {
		if filter.Genres, err = models.ParseGenres(raw); err != nil {
			return Filter{}, err
		}
	}

	return filter, nil
}

func parseBound(query url.Values, param string) (*int, error) {
	name := param
	raw := query.Get(param)
	if raw == "" {
		name = boundAliases[param]
		raw = query.Get(name)
	}

	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, models.InvalidParamError(name, raw)
	}

	return &value, nil
}

// Matches reports whether the book satisfies every predicate
func (f Filter) Matches(book models.Book) bool {
	if f.Author != "" && !strings.EqualFold(book.Author, f.Author) {
		return false
	}

	if f.PriceAtLeast != nil && book.Price < *f.PriceAtLeast {
		return false
	}

	if f.PriceAtMost != nil && book.Price > *f.PriceAtMost {
		return false
	}

	if f.YearAtLeast != nil && book.Year < *f.YearAtLeast {
		return false
	}

	if f.YearAtMost != nil && book.Year > *f.YearAtMost {
		return false
	}

	if len(f.Genres) > 0 && !book.HasAnyGenre(f.Genres) {
		return false
	}

	return true
}

// Apply returns the matching books in their stored order
func (f Filter) Apply(books []models.Book) []models.Book {
	matched := make([]models.Book, 0, len(books))
	for _, book := range books {
		if f.Matches(book) {
			matched = append(matched, book)
		}
	}

	return matched
}
