package models

import (
	"slices"
	"strings"
)

const (
	MinYear = 1940
	MaxYear = 2100
)

type Genre string

const (
	SciFi        Genre = "SCI_FI"
	Novel        Genre = "NOVEL"
	History      Genre = "HISTORY"
	Manga        Genre = "MANGA"
	Romance      Genre = "ROMANCE"
	Professional Genre = "PROFESSIONAL"
)

// Genres lists every accepted genre in display order.
var Genres = []Genre{SciFi, Novel, History, Manga, Romance, Professional}

// Valid reports whether g is one of the accepted genres. The match is case sensitive.
func (g Genre) Valid() bool {
	return slices.Contains(Genres, g)
}

// Book is a persisted inventory record. Field order is the on-disk order.
type Book struct {
	Id     int     `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Year   int     `json:"year"`
	Price  int     `json:"price"`
	Genres []Genre `json:"genres"`
}

// BookDetails is the single-book response shape.
type BookDetails struct {
	Id     int     `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  int     `json:"price"`
	Year   int     `json:"year"`
	Genres []Genre `json:"genres"`
}

func (b Book) Details() BookDetails {
	return BookDetails{
		Id:     b.Id,
		Title:  b.Title,
		Author: b.Author,
		Price:  b.Price,
		Year:   b.Year,
		Genres: b.Genres,
	}
}

// HasAnyGenre reports whether the book carries at least one of the given genres.
func (b Book) HasAnyGenre(genres []Genre) bool {
	for _, g := range b.Genres {
		if slices.Contains(genres, g) {
			return true
		}
	}
	return false
}

// SameTitle compares titles case-insensitively.
func (b Book) SameTitle(title string) bool {
	return strings.EqualFold(b.Title, title)
}

// BookRequest is the body accepted when creating a book.
type BookRequest struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Year   int     `json:"year"`
	Price  int     `json:"price"`
	Genres []Genre `json:"genres"`
}

// Validate checks the rules that do not depend on other books.
// Duplicate titles are checked by the library, before this runs.
func (r BookRequest) Validate() error {
	if r.Year < MinYear || r.Year > MaxYear {
		return YearOutOfRangeError(r.Year)
	}

	if r.Price < 0 {
		return NegativePriceError()
	}

	for _, g := range r.Genres {
		if !g.Valid() {
			return InvalidGenresError(string(g))
		}
	}

	return nil
}

// ParseGenres splits a comma separated list and rejects any token outside the enumeration.
func ParseGenres(raw string) ([]Genre, error) {
	tokens := strings.Split(raw, ",")
	genres := make([]Genre, 0, len(tokens))

	for _, token := range tokens {
		g := Genre(token)
		if !g.Valid() {
			return nil, InvalidGenresError(raw)
		}
		genres = append(genres, g)
	}

	return genres, nil
}
