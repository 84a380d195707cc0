package exceptions

import (
	"clinic-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies a failure independent of its transport status code.
type Kind string

const (
	KindConflict        Kind = "Conflict"
	KindNotFound        Kind = "NotFound"
	KindInvalidArgument Kind = "InvalidArgument"
	KindUnauthorized    Kind = "Unauthorized"
	KindStoreFailure    Kind = "StoreFailure"
	KindInternal        Kind = "Internal"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Kind          Kind       `json:"-"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError wraps err with the caller location. When err is already
// a CustomError its locations are carried over so the full path gets logged.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		Kind:          kindFromStatus(statusCode),
		Err:           err,
	}

	var inner *CustomError
	if errors.As(err, &inner) {
		customErr.Locations = append(customErr.Locations, inner.Locations...)
	} else if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	return customErr
}

func buildWithKind(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := BuildNewCustomError(err, statusCode, clientMessage, devMessage)
	customErr.Locations[0] = getLocation(3)
	customErr.Kind = kind
	return customErr
}

// KindOf reports the taxonomy kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindInternal
}

func kindFromStatus(statusCode int) Kind {
	switch statusCode {
	case constvars.StatusNotFound:
		return KindNotFound
	case constvars.StatusConflict:
		return KindConflict
	case constvars.StatusBadRequest:
		return KindInvalidArgument
	case constvars.StatusUnauthorized, constvars.StatusForbidden:
		return KindUnauthorized
	default:
		return KindInternal
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
