package dispatch

import (
	"errors"
	"fmt"
	"net/http"
)

// Таксономия ошибок удаленного API. Cancelled сюда не входит:
// context.Canceled фильтруется на границе каждой операции.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("resource already claimed")
	ErrValidation = errors.New("request validation failed")
	ErrTransport  = errors.New("dispatch api transport failure")
)

// statusError сохраняет HTTP-код ответа для ретраев,
// Unwrap отображает код в таксономию выше.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("dispatch api: status %d", e.code)
	}
	return fmt.Sprintf("dispatch api: status %d: %s", e.code, e.body)
}

func (e *statusError) Unwrap() error {
	switch e.code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	default:
		return ErrTransport
	}
}
