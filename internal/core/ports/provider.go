package ports

import (
	"net/http"

	"github.com/nulzo/unified-router/internal/core/domain"
)

// ClientOptions are the construction parameters every provider client accepts.
// BaseURL and APIKey already have any endpoint override applied.
type ClientOptions struct {
	Provider domain.Provider
	Model    string
	BaseURL  string
	APIKey   string
}

// Client is a constructed provider client bound to one endpoint.
type Client interface {
	Provider() domain.Provider
	BaseURL() string
	Model() string
	// ChatURL is the URL a chat completion request for Model is sent to.
	ChatURL() string
	// Header returns the authentication headers for the endpoint.
	Header() http.Header
}

// ClientFactory builds the client for a provider type.
type ClientFactory interface {
	Create(opts ClientOptions) (Client, error)
}
