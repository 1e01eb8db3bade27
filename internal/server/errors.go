package server

import (
	"errors"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeDeckMalformed   = "DECK_MALFORMED"
	codeDeckInvalid     = "DECK_INVALID"
	codeDeckEmpty       = "DECK_EMPTY"
	codeUploadMissing   = "UPLOAD_MISSING"
	codeUploadTooLarge  = "UPLOAD_TOO_LARGE"
	codeRequestInvalid  = "REQUEST_INVALID"
	codeSessionNotFound = "SESSION_NOT_FOUND"
	codeInternal        = "INTERNAL_ERROR"
)

var errSessionNotFound = errors.New("session not found")

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func validationError(err error, message, code string, status int) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, message).
		WithTextCode(code).
		WithCode(status)
}

func notFoundError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryNotFound, "session not found").
		WithTextCode(codeSessionNotFound).
		WithCode(http.StatusNotFound)
}

func internalError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "request failed").
		WithTextCode(codeInternal).
		WithCode(http.StatusInternalServerError)
}

// classify maps an error to an HTTP status and response body.
func classify(err error) (int, errorResponse) {
	var wrapped *goerrors.Error
	if errors.As(err, &wrapped) {
		status := wrapped.Code
		if status == 0 {
			status = statusForCategory(err)
		}
		message := wrapped.Message
		if wrapped.Source != nil {
			message = wrapped.Source.Error()
		}
		return status, errorResponse{Error: message, Code: wrapped.TextCode}
	}
	return http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: codeInternal}
}

func statusForCategory(err error) int {
	switch {
	case goerrors.IsCategory(err, goerrors.CategoryValidation):
		return http.StatusBadRequest
	case goerrors.IsCategory(err, goerrors.CategoryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
