package db

import (
	"context"

	"go.uber.org/fx"

	"library/config"
	"library/logger"
)

// Module provides the fx dependency injection options for the db package
var Module = fx.Options(
	fx.Provide(NewIndexer),
	fx.Provide(NewLibrary),
)

// NewLibrary loads the JSON inventory and, when an indexer is available,
// seeds it with the loaded books and wraps the library so it stays in sync.
func NewLibrary(cfg *config.Config, indexer Indexer, registry *logger.Registry) (LibraryManager, error) {
	library, err := CreateJSONLibrary(cfg.Data.File)
	if err != nil {
		return nil, err
	}

	log := registry.Books()
	log.Info().Int("books", len(library.All())).Str("file", cfg.Data.File).Msg("Loaded books")

	if indexer == nil {
		return library, nil
	}

	if err := indexer.Reindex(context.Background(), library.All()); err != nil {
		log.Warn().Err(err).Msg("Failed to seed search index")
	}

	return CreateMirroredLibrary(library, indexer, log), nil
}
