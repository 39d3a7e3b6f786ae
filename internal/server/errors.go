package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/jobportal/internal/extraction"
	"github.com/jonathan/jobportal/internal/jobsource"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var parseErr *extraction.ParseError
	var fetchErr *jobsource.FetchError

	switch {
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
