package service

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"library/cache"
	"library/db"
	"library/logger"
	"library/models"
)

const (
	IdParam          = "id"
	PriceParam       = "price"
	LoggerNameParam  = "logger-name"
	LoggerLevelParam = "logger-level"
)

type Handlers struct {
	library  db.LibraryManager
	registry *logger.Registry
	books    logger.Logger
	activity cache.RequestCacher
}

func NewHandlers(library db.LibraryManager, registry *logger.Registry, activity cache.RequestCacher) *Handlers {
	return &Handlers{
		library:  library,
		registry: registry,
		books:    registry.Books(),
		activity: activity,
	}
}

// tag attaches the request number and id set by RequestTracker
func tag(c *gin.Context, event *zerolog.Event) *zerolog.Event {
	return event.
		Int64(logger.RequestField, c.GetInt64(RequestNumberKey)).
		Str(logger.RequestIdField, c.GetString(RequestIdKey))
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.InvalidParamError(name, raw)
	}

	return value, nil
}

func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handlers) CreateBook(c *gin.Context) {
	var request models.BookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errorMessage": err.Error()})
		return
	}

	book, err := h.library.Create(c.Request.Context(), &request)
	if err != nil {
		tag(c, h.books.Error()).Msg(err.Error())
		abortWithError(c, err)
		return
	}

	tag(c, h.books.Info()).Msgf("Creating new Book with Title [%s]", book.Title)
	tag(c, h.books.Debug()).Msgf("New Book with Title [%s] was assigned with id %d", book.Title, book.Id)

	respond(c, book.Id)
}

func (h *Handlers) CountBooks(c *gin.Context) {
	filter, err := db.ParseFilter(c.Request.URL.Query())
	if err != nil {
		tag(c, h.books.Error()).Msg(err.Error())
		abortWithError(c, err)
		return
	}

	count, err := h.library.Count(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	tag(c, h.books.Info()).Msgf("Total Books found for requested filters is %d", count)

	respond(c, count)
}

func (h *Handlers) SearchBooks(c *gin.Context) {
	filter, err := db.ParseFilter(c.Request.URL.Query())
	if err != nil {
		tag(c, h.books.Error()).Msg(err.Error())
		abortWithError(c, err)
		return
	}

	books, err := h.library.Search(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	tag(c, h.books.Info()).Msgf("Total Books found for requested filters is %d", len(books))

	respond(c, books)
}

func (h *Handlers) GetBookById(c *gin.Context) {
	id, err := intQuery(c, IdParam)
	if err != nil {
		abortWithError(c, err)
		return
	}

	book, err := h.library.GetById(c.Request.Context(), id)
	if err != nil {
		tag(c, h.books.Error()).Msg(err.Error())
		abortWithError(c, err)
		return
	}

	tag(c, h.books.Debug()).Msgf("Fetching book id %d details", id)

	respond(c, book.Details())
}

func (h *Handlers) UpdateBookPrice(c *gin.Context) {
	id, err := intQuery(c, IdParam)
	if err != nil {
		abortWithError(c, err)
		return
	}

	price, err := intQuery(c, PriceParam)
	if err != nil {
		abortWithError(c, err)
		return
	}

	oldPrice, err := h.library.UpdatePrice(c.Request.Context(), id, price)
	if err != nil {
		tag(c, h.books.Error()).Msg(err.Error())
		abortWithError(c, err)
		return
	}

	tag(c, h.books.Info()).Msgf("Update Book id [%d] price to %d", id, price)
	tag(c, h.books.Debug()).Msgf("Book id [%d] price change: %d --> %d", id, oldPrice, price)

	respond(c, oldPrice)
}

func (h *Handlers) DeleteBookById(c *gin.Context) {
	id, err := intQuery(c, IdParam)
	if err != nil {
		abortWithError(c, err)
		return
	}

	book, remaining, err := h.library.Delete(c.Request.Context(), id)
	if err != nil {
		tag(c, h.books.Error()).Msg(err.Error())
		abortWithError(c, err)
		return
	}

	tag(c, h.books.Info()).Msgf("Removing book [%s]", book.Title)
	tag(c, h.books.Debug()).Msgf("After removing book [%s] id: [%d] there are %d books in the system", book.Title, id, remaining)

	respond(c, remaining)
}

func (h *Handlers) GetLoggerLevel(c *gin.Context) {
	level, err := h.registry.LevelOf(c.Query(LoggerNameParam))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.String(http.StatusOK, level)
}

func (h *Handlers) SetLoggerLevel(c *gin.Context) {
	level, err := h.registry.SetLevel(c.Query(LoggerNameParam), c.Query(LoggerLevelParam))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.String(http.StatusOK, level)
}

func (h *Handlers) Activity(c *gin.Context) {
	records, err := h.activity.Read()
	if err != nil {
		abortWithError(c, err)
		return
	}

	respond(c, records)
}
