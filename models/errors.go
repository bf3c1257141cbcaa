package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidGenre   = errors.New("invalid genre")
	ErrEmptyTitle     = errors.New("empty title")

	ErrDuplicateTitle  = errors.New("duplicate title")
	ErrYearOutOfRange  = errors.New("year out of range")
	ErrNegativePrice   = errors.New("negative price")
	ErrInvalidNewPrice = errors.New("invalid new price")

	ErrBookNotFound   = errors.New("book not found")
	ErrLoggerNotFound = errors.New("logger not found")
	ErrInvalidLevel   = errors.New("invalid log level")
)

var (
	Is = errors.Is
	As = errors.As
)

// Error carries a client facing message next to the sentinel used for classification.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func DuplicateTitleError(title string) error {
	return newError(ErrDuplicateTitle, "Error: Book with the title [%s] already exists in the system", title)
}

func YearOutOfRangeError(year int) error {
	return newError(ErrYearOutOfRange,
		"Error: Can't create new Book that its year [%d] is not in the accepted range [%d -> %d]", year, MinYear, MaxYear)
}

func NegativePriceError() error {
	return newError(ErrNegativePrice, "Error: Can't create new Book with negative price")
}

func InvalidNewPriceError() error {
	return newError(ErrInvalidNewPrice, "Error: Can't update Book price to be negative")
}

func BookNotFoundError(id int) error {
	return newError(ErrBookNotFound, "Error: no such Book with id %d", id)
}

func EmptyTitleError() error {
	return newError(ErrEmptyTitle, "Error: Book title must not be empty")
}

func InvalidGenresError(raw string) error {
	names := make([]string, len(Genres))
	for i, g := range Genres {
		names[i] = string(g)
	}
	return newError(ErrInvalidGenre, "Invalid genres [%s], accepted genres are %s", raw, strings.Join(names, ", "))
}

// InvalidParamError reports a query parameter that could not be parsed.
func InvalidParamError(name, value string) error {
	return newError(ErrInvalidRequest, "Error: query parameter [%s] has invalid value [%s]", name, value)
}

func LoggerNotFoundError(name string) error {
	return newError(ErrLoggerNotFound, "Logger %s not found", name)
}

func InvalidLevelError(level string) error {
	return newError(ErrInvalidLevel, "Invalid log level: %s", level)
}
