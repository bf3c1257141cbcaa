//go:generate mockgen -source=library_manager.go -destination=library_manager_mock.go -package=db
package db

import (
	"context"

	"library/models"
)

// LibraryManager is the book inventory used by the HTTP handlers
type LibraryManager interface {
	Create(ctx context.Context, book *models.BookRequest) (models.Book, error)
	UpdatePrice(ctx context.Context, id int, price int) (int, error)
	Delete(ctx context.Context, id int) (models.Book, int, error)
	GetById(ctx context.Context, id int) (models.Book, error)
	Search(ctx context.Context, filter Filter) ([]models.Book, error)
	Count(ctx context.Context, filter Filter) (int, error)
}
