package db

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/config"
	"library/logger"
	"library/models"
)

type elasticCall struct {
	method string
	path   string
	body   string
}

type fakeElastic struct {
	mu    sync.Mutex
	calls []elasticCall
}

func (f *fakeElastic) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path == "/" {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"version":{"number":"7.17.0"}}`))
		return
	}

	f.mu.Lock()
	f.calls = append(f.calls, elasticCall{method: r.Method, path: r.URL.Path, body: string(body)})
	f.mu.Unlock()

	switch {
	case strings.HasSuffix(r.URL.Path, "/_bulk"):
		w.Write([]byte(`{"took":1,"errors":false,"items":[{"index":{"_index":"books","_id":"1","status":201}}]}`))
	case r.Method == http.MethodPut:
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_index":"books","_id":"1","_version":1,"result":"created"}`))
	case r.Method == http.MethodDelete && strings.HasSuffix(r.URL.Path, "/404"):
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"_index":"books","_id":"404","result":"not_found"}`))
	case r.Method == http.MethodDelete:
		w.Write([]byte(`{"_index":"books","_id":"1","result":"deleted"}`))
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (f *fakeElastic) Calls() []elasticCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]elasticCall(nil), f.calls...)
}

func newElasticIndexer(t *testing.T) (Indexer, *fakeElastic) {
	t.Helper()

	fake := &fakeElastic{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.Elastic.URL = server.URL

	indexer, err := NewIndexer(cfg)
	require.NoError(t, err)
	require.NotNil(t, indexer)

	return indexer, fake
}

func Test_NewIndexer_Disabled(t *testing.T) {
	indexer, err := NewIndexer(config.DefaultConfig())

	require.NoError(t, err)
	assert.Nil(t, indexer)
}

func Test_ElasticIndexer_Requests(t *testing.T) {
	ctx := context.Background()
	indexer, fake := newElasticIndexer(t)

	book := models.Book{Id: 1, Title: "Dune", Author: "Herbert", Year: 1965, Price: 10, Genres: []models.Genre{models.SciFi}}

	require.NoError(t, indexer.Index(ctx, book))
	require.NoError(t, indexer.Remove(ctx, 1))
	require.NoError(t, indexer.Remove(ctx, 404))
	require.NoError(t, indexer.Reindex(ctx, []models.Book{book}))
	require.NoError(t, indexer.Reindex(ctx, nil))

	calls := fake.Calls()
	require.Len(t, calls, 4)

	assert.Equal(t, http.MethodPut, calls[0].method)
	assert.Equal(t, "/books/_doc/1", calls[0].path)
	assert.Contains(t, calls[0].body, `"title":"Dune"`)

	assert.Equal(t, http.MethodDelete, calls[1].method)
	assert.Equal(t, "/books/_doc/1", calls[1].path)

	assert.Equal(t, http.MethodDelete, calls[2].method)

	assert.True(t, strings.HasSuffix(calls[3].path, "/_bulk"))
	assert.Contains(t, calls[3].body, `"title":"Dune"`)
}

type recordingIndexer struct {
	indexed []models.Book
	removed []int
	err     error
}

func (r *recordingIndexer) Index(ctx context.Context, book models.Book) error {
	r.indexed = append(r.indexed, book)
	return r.err
}

func (r *recordingIndexer) Remove(ctx context.Context, id int) error {
	r.removed = append(r.removed, id)
	return r.err
}

func (r *recordingIndexer) Reindex(ctx context.Context, books []models.Book) error {
	r.indexed = append(r.indexed, books...)
	return r.err
}

func Test_MirroredLibrary_ForwardsMutations(t *testing.T) {
	ctx := context.Background()
	indexer := &recordingIndexer{}
	registry := logger.NewRegistryWithOutput(config.DefaultConfig(), io.Discard)
	library := CreateMirroredLibrary(newTestLibrary(t), indexer, registry.Books())

	_, err := library.Create(ctx, dune())
	require.NoError(t, err)
	_, err = library.Create(ctx, dune())
	assert.ErrorIs(t, err, models.ErrDuplicateTitle)

	_, err = library.UpdatePrice(ctx, 1, 12)
	require.NoError(t, err)
	_, err = library.UpdatePrice(ctx, 2, 12)
	assert.ErrorIs(t, err, models.ErrBookNotFound)

	_, _, err = library.Delete(ctx, 1)
	require.NoError(t, err)

	require.Len(t, indexer.indexed, 2)
	assert.Equal(t, 10, indexer.indexed[0].Price)
	assert.Equal(t, 12, indexer.indexed[1].Price)
	assert.Equal(t, []int{1}, indexer.removed)
}

func Test_MirroredLibrary_IgnoresIndexFailures(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	indexer := &recordingIndexer{err: errors.New("cluster down")}
	registry := logger.NewRegistryWithOutput(config.DefaultConfig(), &logs)
	library := CreateMirroredLibrary(newTestLibrary(t), indexer, registry.Books())

	book, err := library.Create(ctx, dune())
	require.NoError(t, err)
	assert.Equal(t, 1, book.Id)

	_, remaining, err := library.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	assert.Contains(t, logs.String(), "Failed to index new book")
	assert.Contains(t, logs.String(), "cluster down")
}

func Test_NewLibrary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Data.File = t.TempDir() + "/books.json"
	registry := logger.NewRegistryWithOutput(cfg, io.Discard)

	library, err := NewLibrary(cfg, nil, registry)
	require.NoError(t, err)
	_, ok := library.(*JSONLibraryManager)
	assert.True(t, ok)

	indexer := &recordingIndexer{}
	library, err = NewLibrary(cfg, indexer, registry)
	require.NoError(t, err)
	_, ok = library.(*MirroredLibraryManager)
	assert.True(t, ok)
}
