package xhttp

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"oss.terrastruct.com/cmdlog"
)

// Error carries the status code and the message written to the client.
// Everything else about the wrapped error stays in the server log only.
type Error struct {
	Code int
	Msg  string
	Err  error
}

var _ interface {
	Is(error) bool
	Unwrap() error
} = Error{}

// Errorf creates an error that a HandlerFuncAdapter writes to the client as
// plain text with the given status code.
func Errorf(code int, msg string, v ...interface{}) error {
	return Error{Code: code, Msg: fmt.Sprintf(msg, v...), Err: fmt.Errorf(msg, v...)}
}

// ErrorWrap attaches a status code and client message to err.
func ErrorWrap(code int, msg string, err error) error {
	return Error{Code: code, Msg: msg, Err: err}
}

func (e Error) Unwrap() error {
	return e.Err
}

func (e Error) Is(err error) bool {
	e2, ok := err.(Error)
	if !ok {
		return false
	}
	return e.Code == e2.Code && e.Msg == e2.Msg && errors.Is(e.Err, e2.Err)
}

func (e Error) Error() string {
	return fmt.Sprintf("http error with code %v: %v", e.Code, e.Err)
}

// HandlerFunc is like http.HandlerFunc but returns an error.
// See Errorf and ErrorWrap.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// HandlerFuncAdapter adapts a HandlerFunc into an http.Handler.
//
// Errors created with Errorf or ErrorWrap are written to the client with
// their code and message; anything else becomes a plain 500. 4xx errors log
// as warnings and everything else as errors.
type HandlerFuncAdapter struct {
	Log  *cmdlog.Logger
	Func HandlerFunc
}

func (a HandlerFuncAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := a.Func(w, r)
	if err != nil {
		handleError(a.Log, w, err)
	}
}

func handleError(clog *cmdlog.Logger, w http.ResponseWriter, err error) {
	var herr Error
	if !errors.As(err, &herr) {
		herr = ErrorWrap(http.StatusInternalServerError, "", err).(Error)
	}
	if herr.Code < 400 || herr.Code >= 600 {
		clog.Error.Printf("unexpected http error status code %d for: %v", herr.Code, herr.Err)
		herr.Code = http.StatusInternalServerError
		herr.Msg = ""
	}
	if herr.Msg == "" {
		herr.Msg = http.StatusText(herr.Code)
	}

	var logger *log.Logger
	if herr.Code < 500 {
		logger = clog.Warn
	} else {
		logger = clog.Error
	}
	logger.Printf("error handling http request: %v", err)

	if ww, ok := w.(writtenResponseWriter); ok && ww.Written() {
		// The handler failed midway through its response. Too late for a
		// status code.
		return
	}
	http.Error(w, herr.Msg, herr.Code)
}

type writtenResponseWriter interface {
	Written() bool
}
