package constants

import "net/http"

// CodedError несёт HTTP-код вместе с сообщением; httpErrorHandler
// разворачивает цепочку ошибок до первого CodedError.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound = NewCodedError(http.StatusNotFound, "not found in db")
	ErrDBQuery    = NewCodedError(http.StatusInternalServerError, "db query failed")
	ErrBadRequest = NewCodedError(http.StatusBadRequest, "bad request")
)
