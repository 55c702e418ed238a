package httpx

import "net/http"

// Client abstracts the HTTP transport so callers can be tested against
// a mock.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
