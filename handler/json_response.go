package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexkarev/authgate/binder"
	"github.com/alexkarev/authgate/pkg/validator"
)

// ErrorDetail contains error information rendered to clients.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// errorBody is the error response envelope: {"error": {...}}.
type errorBody struct {
	Error *ErrorDetail `json:"error"`
}

// jsonResponse implements Response for JSON rendering.
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets a custom HTTP status code.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON creates a JSON response rendering v as the body. Defaults to 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// JSONError creates a JSON error response. The status code is derived from
// the error (HTTPError carries its own, validation errors map to 400,
// anything else is 500) unless overridden with WithStatus.
func JSONError(err error, opts ...JSONOption) Response {
	status := http.StatusInternalServerError
	detail := errorToDetail(err, &status)

	r := &jsonResponse{
		status: status,
		body:   errorBody{Error: detail},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// errorToDetail converts an error to ErrorDetail and sets the status code.
func errorToDetail(err error, status *int) *ErrorDetail {
	var verr validator.ValidationError
	if errors.As(err, &verr) {
		*status = http.StatusBadRequest
		return &ErrorDetail{
			Code:    "invalid_input",
			Message: verr.Error(),
		}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		*status = http.StatusBadRequest
		return &ErrorDetail{
			Code:    "invalid_input",
			Message: verrs.Error(),
		}
	}

	if errors.Is(err, binder.ErrInvalidJSON) ||
		errors.Is(err, binder.ErrMissingContentType) ||
		errors.Is(err, binder.ErrUnsupportedMediaType) {
		*status = http.StatusBadRequest
		return &ErrorDetail{
			Code:    "bad_request",
			Message: err.Error(),
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		msg := httpErr.Message
		if msg == "" {
			msg = http.StatusText(httpErr.Code)
		}
		return &ErrorDetail{
			Code:    httpErr.Key,
			Message: msg,
		}
	}

	return &ErrorDetail{
		Code:    "internal_error",
		Message: err.Error(),
	}
}
