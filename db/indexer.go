package db

import (
	"context"
	"strconv"

	"github.com/olivere/elastic/v7"

	"library/config"
	"library/models"
)

// Indexer mirrors the inventory into a search backend
type Indexer interface {
	Index(ctx context.Context, book models.Book) error
	Remove(ctx context.Context, id int) error
	Reindex(ctx context.Context, books []models.Book) error
}

// NewIndexer returns an Elasticsearch indexer, or nil when no cluster is configured
func NewIndexer(cfg *config.Config) (Indexer, error) {
	if cfg.Elastic.URL == "" {
		return nil, nil
	}

	client, err := config.SetupElasticSearch(cfg)
	if err != nil {
		return nil, err
	}

	return CreateElasticIndexer(cfg.Elastic.Index, client), nil
}

type ElasticIndexer struct {
	IndexName     string
	ElasticClient *elastic.Client
}

func CreateElasticIndexer(indexName string, client *elastic.Client) *ElasticIndexer {
	return &ElasticIndexer{IndexName: indexName, ElasticClient: client}
}

func (indexer *ElasticIndexer) Index(ctx context.Context, book models.Book) error {
	_, err := indexer.ElasticClient.
		Index().
		Index(indexer.IndexName).
		Id(strconv.Itoa(book.Id)).
		BodyJson(book).
		Do(ctx)

	return err
}

func (indexer *ElasticIndexer) Remove(ctx context.Context, id int) error {
	_, err := indexer.ElasticClient.
		Delete().
		Index(indexer.IndexName).
		Id(strconv.Itoa(id)).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil
	}

	return err
}

// Reindex pushes every book in one bulk request
func (indexer *ElasticIndexer) Reindex(ctx context.Context, books []models.Book) error {
	if len(books) == 0 {
		return nil
	}

	bulk := indexer.ElasticClient.Bulk().Index(indexer.IndexName)
	for _, book := range books {
		bulk.Add(elastic.NewBulkIndexRequest().Id(strconv.Itoa(book.Id)).Doc(book))
	}

	result, err := bulk.Do(ctx)
	if err != nil {
		return err
	}

	if failed := result.Failed(); len(failed) > 0 {
		return &elastic.Error{Status: failed[0].Status, Details: failed[0].Error}
	}

	return nil
}
