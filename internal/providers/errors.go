package providers

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
)

// ErrDocumentNotFound is wrapped when a source has no document for a view.
var ErrDocumentNotFound = errors.New("document not found")

// FetchError describes a failed document fetch.
type FetchError struct {
	Source     string
	View       picks.View
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: fetch %s", e.Source, e.View)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
