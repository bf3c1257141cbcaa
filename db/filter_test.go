package db

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/models"
)

func intPtr(v int) *int { return &v }

func Test_ParseFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Filter
	}{
		{name: "Empty", query: "", expected: Filter{}},
		{name: "Author", query: "author=Herbert", expected: Filter{Author: "Herbert"}},
		{
			name:  "Bounds",
			query: "price-at-least=5&price-at-most=20&year-at-least=1950&year-at-most=1999",
			expected: Filter{
				PriceAtLeast: intPtr(5),
				PriceAtMost:  intPtr(20),
				YearAtLeast:  intPtr(1950),
				YearAtMost:   intPtr(1999),
			},
		},
		{
			name:  "Legacy bound names",
			query: "price-bigger-than=5&price-less-than=20&year-bigger-than=1950&year-less-than=1999",
			expected: Filter{
				PriceAtLeast: intPtr(5),
				PriceAtMost:  intPtr(20),
				YearAtLeast:  intPtr(1950),
				YearAtMost:   intPtr(1999),
			},
		},
		{name: "Canonical name wins", query: "price-at-least=7&price-bigger-than=5", expected: Filter{PriceAtLeast: intPtr(7)}},
		{name: "Genres", query: "genres=SCI_FI,NOVEL", expected: Filter{Genres: []models.Genre{models.SciFi, models.Novel}}},
		{name: "Empty values are ignored", query: "author=&genres=&price-at-least=", expected: Filter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			filter, err := ParseFilter(query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filter)
		})
	}
}

func Test_ParseFilter_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected error
	}{
		{name: "Unknown genre", query: "genres=INVALID_TOKEN", expected: models.ErrInvalidGenre},
		{name: "Genre is case sensitive", query: "genres=sci_fi", expected: models.ErrInvalidGenre},
		{name: "One bad genre among good", query: "genres=NOVEL,POETRY", expected: models.ErrInvalidGenre},
		{name: "Non numeric bound", query: "price-at-least=cheap", expected: models.ErrInvalidRequest},
		{name: "Non numeric legacy bound", query: "year-less-than=soon", expected: models.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = ParseFilter(query)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func Test_Filter_Apply(t *testing.T) {
	books := []models.Book{
		{Id: 1, Title: "Dune", Author: "Herbert", Year: 1965, Price: 10, Genres: []models.Genre{models.SciFi}},
		{Id: 2, Title: "Akira", Author: "Otomo", Year: 1982, Price: 30, Genres: []models.Genre{models.Manga, models.SciFi}},
		{Id: 3, Title: "SPQR", Author: "Beard", Year: 2015, Price: 25, Genres: []models.Genre{models.History}},
		{Id: 4, Title: "Emma", Author: "Austen", Year: 1940, Price: 0, Genres: []models.Genre{models.Novel, models.Romance}},
	}

	ids := func(books []models.Book) []int {
		result := make([]int, len(books))
		for i, b := range books {
			result[i] = b.Id
		}
		return result
	}

	tests := []struct {
		name     string
		filter   Filter
		expected []int
	}{
		{name: "No predicates", filter: Filter{}, expected: []int{1, 2, 3, 4}},
		{name: "Author ignores case", filter: Filter{Author: "herbert"}, expected: []int{1}},
		{name: "Author is exact", filter: Filter{Author: "Herb"}, expected: []int{}},
		{name: "Price lower bound inclusive", filter: Filter{PriceAtLeast: intPtr(25)}, expected: []int{2, 3}},
		{name: "Price upper bound inclusive", filter: Filter{PriceAtMost: intPtr(10)}, expected: []int{1, 4}},
		{name: "Year range", filter: Filter{YearAtLeast: intPtr(1940), YearAtMost: intPtr(1965)}, expected: []int{1, 4}},
		{name: "Any genre matches", filter: Filter{Genres: []models.Genre{models.History, models.Romance}}, expected: []int{3, 4}},
		{
			name:     "Predicates combine with AND",
			filter:   Filter{Genres: []models.Genre{models.SciFi}, PriceAtLeast: intPtr(20)},
			expected: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(tt.filter.Apply(books)))
		})
	}
}
