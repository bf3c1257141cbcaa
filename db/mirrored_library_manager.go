package db

import (
	"context"

	"library/logger"
	"library/models"
)

// MirroredLibraryManager forwards every successful mutation to an Indexer.
// The JSON file stays authoritative, so mirror failures are logged and never returned.
type MirroredLibraryManager struct {
	LibraryManager
	indexer Indexer
	log     logger.Logger
}

func CreateMirroredLibrary(library LibraryManager, indexer Indexer, log logger.Logger) *MirroredLibraryManager {
	return &MirroredLibraryManager{LibraryManager: library, indexer: indexer, log: log}
}

func (library *MirroredLibraryManager) Create(ctx context.Context, request *models.BookRequest) (models.Book, error) {
	book, err := library.LibraryManager.Create(ctx, request)
	if err != nil {
		return book, err
	}

	if err := library.indexer.Index(ctx, book); err != nil {
		library.log.Warn().Err(err).Int("id", book.Id).Msg("Failed to index new book")
	}

	return book, nil
}

func (library *MirroredLibraryManager) UpdatePrice(ctx context.Context, id int, price int) (int, error) {
	oldPrice, err := library.LibraryManager.UpdatePrice(ctx, id, price)
	if err != nil {
		return oldPrice, err
	}

	book, err := library.LibraryManager.GetById(ctx, id)
	if err == nil {
		err = library.indexer.Index(ctx, book)
	}
	if err != nil {
		library.log.Warn().Err(err).Int("id", id).Msg("Failed to index price change")
	}

	return oldPrice, nil
}

func (library *MirroredLibraryManager) Delete(ctx context.Context, id int) (models.Book, int, error) {
	book, remaining, err := library.LibraryManager.Delete(ctx, id)
	if err != nil {
		return book, remaining, err
	}

	if err := library.indexer.Remove(ctx, id); err != nil {
		library.log.Warn().Err(err).Int("id", id).Msg("Failed to remove book from index")
	}

	return book, remaining, nil
}
