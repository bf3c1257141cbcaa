package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"library/models"
)

// JSONLibraryManager keeps the whole inventory in memory and rewrites the
// backing JSON file after every successful mutation.
type JSONLibraryManager struct {
	Path string

	mu    sync.RWMutex
	books []models.Book
}

// CreateJSONLibrary loads the inventory from path, creating an empty file when missing
func CreateJSONLibrary(path string) (*JSONLibraryManager, error) {
	books, err := load(path)
	if err != nil {
		return nil, err
	}

	return &JSONLibraryManager{Path: path, books: books}, nil
}

func load(path string) ([]models.Book, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := save(path, []models.Book{}); err != nil {
			return nil, err
		}
		return []models.Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var books []models.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if books == nil {
		books = []models.Book{}
	}

	return books, nil
}

// save replaces the file through a rename so readers never see a partial write
func save(path string, books []models.Book) error {
	data, err := json.Marshal(books)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to save books: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to save books: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to save books: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save books: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save books: %w", err)
	}

	return nil
}

func nextId(books []models.Book) int {
	maxId := 0
	for _, book := range books {
		maxId = max(maxId, book.Id)
	}

	return maxId + 1
}

func (library *JSONLibraryManager) indexOf(id int) int {
	return slices.IndexFunc(library.books, func(book models.Book) bool {
		return book.Id == id
	})
}

// commit persists the new state and only then makes it visible
func (library *JSONLibraryManager) commit(books []models.Book) error {
	if err := save(library.Path, books); err != nil {
		return err
	}

	library.books = books

	return nil
}

func (library *JSONLibraryManager) Create(ctx context.Context, request *models.BookRequest) (models.Book, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	if strings.TrimSpace(request.Title) == "" {
		return models.Book{}, models.EmptyTitleError()
	}

	for _, book := range library.books {
		if book.SameTitle(request.Title) {
			return models.Book{}, models.DuplicateTitleError(request.Title)
		}
	}

	if err := request.Validate(); err != nil {
		return models.Book{}, err
	}

	book := models.Book{
		Id:     nextId(library.books),
		Title:  request.Title,
		Author: request.Author,
		Year:   request.Year,
		Price:  request.Price,
		Genres: slices.Clone(request.Genres),
	}
	if book.Genres == nil {
		book.Genres = []models.Genre{}
	}

	if err := library.commit(append(slices.Clone(library.books), book)); err != nil {
		return models.Book{}, err
	}

	return book, nil
}

// UpdatePrice sets a new price and returns the previous one. Zero is a valid price.
func (library *JSONLibraryManager) UpdatePrice(ctx context.Context, id int, price int) (int, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	i := library.indexOf(id)
	if i < 0 {
		return 0, models.BookNotFoundError(id)
	}

	if price < 0 {
		return 0, models.InvalidNewPriceError()
	}

	oldPrice := library.books[i].Price

	books := slices.Clone(library.books)
	books[i].Price = price

	if err := library.commit(books); err != nil {
		return 0, err
	}

	return oldPrice, nil
}

// Delete removes a book and returns it together with the number of books left
func (library *JSONLibraryManager) Delete(ctx context.Context, id int) (models.Book, int, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	i := library.indexOf(id)
	if i < 0 {
		return models.Book{}, len(library.books), models.BookNotFoundError(id)
	}

	removed := library.books[i]

	books := make([]models.Book, 0, len(library.books)-1)
	for _, book := range library.books {
		if book.Id != id {
			books = append(books, book)
		}
	}

	if err := library.commit(books); err != nil {
		return models.Book{}, len(library.books), err
	}

	return removed, len(books), nil
}

func (library *JSONLibraryManager) GetById(ctx context.Context, id int) (models.Book, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	i := library.indexOf(id)
	if i < 0 {
		return models.Book{}, models.BookNotFoundError(id)
	}

	return library.books[i], nil
}

// Search returns the matching books sorted by title, ignoring case
func (library *JSONLibraryManager) Search(ctx context.Context, filter Filter) ([]models.Book, error) {
	library.mu.RLock()
	books := filter.Apply(library.books)
	library.mu.RUnlock()

	sort.SliceStable(books, func(i, j int) bool {
		return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
	})

	return books, nil
}

func (library *JSONLibraryManager) Count(ctx context.Context, filter Filter) (int, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	count := 0
	for _, book := range library.books {
		if filter.Matches(book) {
			count++
		}
	}

	return count, nil
}

// All returns a snapshot of every book in insertion order
func (library *JSONLibraryManager) All() []models.Book {
	library.mu.RLock()
	defer library.mu.RUnlock()

	return slices.Clone(library.books)
}
