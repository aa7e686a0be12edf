package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
)

// Sentinel errors for the failure modes callers are expected to branch on.
// Everything else is wrapped and surfaced as-is.
var (
	// ErrAuthentication indicates an invalid, missing, or under-scoped token.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound indicates the named repository does not exist.
	ErrNotFound = errors.New("repository not found")

	// ErrPermission indicates the identity lacks admin rights on the repository.
	ErrPermission = errors.New("insufficient permissions")
)

// classify maps a go-github error onto the sentinel taxonomy. Errors that
// carry no recognised status code pass through wrapped only by the caller.
func classify(err error) error {
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) || ghErr.Response == nil {
		return err
	}
	switch ghErr.Response.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %v", ErrAuthentication, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrPermission, err)
	}
	return err
}

// isEmptyRepository reports whether err is the platform's "repository is
// empty" signal on a commit listing (HTTP 409). It is a distinct outcome,
// not a failure: the repository simply has no commits yet.
func isEmptyRepository(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil &&
		ghErr.Response.StatusCode == http.StatusConflict
}
