package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error es un fallo con código HTTP equivalente; nunca expone
// detalles internos en Message
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(what string) *Error {
	return &Error{Code: http.StatusNotFound, Message: what + " dont exist"}
}

func Conflict(what string) *Error {
	return &Error{Code: http.StatusConflict, Message: what + " already exists"}
}

func UploadFailure(err error) *Error {
	return &Error{Code: http.StatusBadGateway, Message: fmt.Sprintf("image upload failed: %v", err)}
}

func Validation(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

func NotImplemented(op string) *Error {
	return &Error{Code: http.StatusNotImplemented, Message: op + " not implemented"}
}

// IsKind reporta si err es un *Error con el código dado
func IsKind(err error, code int) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// StatusOf devuelve el código HTTP del error, o 500 si no es un *Error
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
