package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrConfigParse       = errors.New("endpoint config could not be parsed")
	ErrMissingCredential = errors.New("missing credential")
	ErrUnresolvedModel   = errors.New("no provider serves model")
	ErrInvalidEndpoint   = errors.New("invalid endpoint")
)

// ConfigParseError describes an endpoint config file that was skipped.
// It is never fatal: resolution treats the file as absent.
type ConfigParseError struct {
	Provider Provider
	Path     string
	Err      error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("%s endpoints config %s: %v", e.Provider, e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() []error { return []error{ErrConfigParse, e.Err} }

// MissingCredentialError is returned at request time when a provider that
// requires an API key has none, either from an override or from its defaults.
type MissingCredentialError struct {
	Provider Provider
	Model    string
	// Vars lists the environment variables that could have supplied the key.
	Vars []string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: no API key configured for model %q", e.Provider, e.Model)
}

func (e *MissingCredentialError) Is(target error) bool { return target == ErrMissingCredential }

// UnresolvedModelError is returned when no provider in the dispatch order claims a model.
type UnresolvedModelError struct {
	Model string
}

func (e *UnresolvedModelError) Error() string {
	return fmt.Sprintf("no provider found for model: %s", e.Model)
}

func (e *UnresolvedModelError) Is(target error) bool { return target == ErrUnresolvedModel }

// InvalidEndpointError is returned at request time when the base URL a model
// resolved to cannot be used. Origin names the variable or file it came from.
type InvalidEndpointError struct {
	Provider Provider
	Model    string
	BaseURL  string
	Origin   string
	Err      error
}

func (e *InvalidEndpointError) Error() string {
	return fmt.Sprintf("%s: endpoint %q for model %q (from %s) is invalid: %v",
		e.Provider, e.BaseURL, e.Model, e.Origin, e.Err)
}

func (e *InvalidEndpointError) Unwrap() error { return e.Err }

func (e *InvalidEndpointError) Is(target error) bool { return target == ErrInvalidEndpoint }

// Problem implements RFC 9457
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	Extensions map[string]interface{} `json:"-"`

	Log error `json:"-"`
}

func (p *Problem) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

func (p *Problem) MarshalJSON() ([]byte, error) {
	type Alias Problem

	data := make(map[string]interface{})

	for k, v := range p.Extensions {
		data[k] = v
	}

	stdJSON, _ := json.Marshal(Alias(*p))
	_ = json.Unmarshal(stdJSON, &data)

	return json.Marshal(data)
}

type ProblemOption func(*Problem)

// New creates a generic Problem
func New(status int, title, detail string, opts ...ProblemOption) *Problem {
	p := &Problem{
		Type:       "about:blank",
		Title:      title,
		Status:     status,
		Detail:     detail,
		Extensions: make(map[string]interface{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithExtension adds a custom key-value pair to the response
func WithExtension(key string, value interface{}) ProblemOption {
	return func(p *Problem) {
		p.Extensions[key] = value
	}
}

// WithLog attaches an internal error for server-side logging
func WithLog(err error) ProblemOption {
	return func(p *Problem) {
		p.Log = err
	}
}

// WithInstance sets the RFC "instance" URI, usually the request path
func WithInstance(uri string) ProblemOption {
	return func(p *Problem) {
		p.Instance = uri
	}
}

// ValidationError creates a rich validation error
func ValidationError(validationErrors map[string]string) *Problem {
	return New(
		http.StatusBadRequest,
		"Validation Error",
		"One or more fields failed validation",
		WithExtension("errors", validationErrors),
	)
}

// BadRequestError creates a standard error for a bad request
func BadRequestError(detail string, opts ...ProblemOption) *Problem {
	return New(http.StatusBadRequest, "Bad Request", detail, opts...)
}

// InternalError creates a standard error for any internal server error
func InternalError(detail string, err error) *Problem {
	return New(http.StatusInternalServerError, "Internal Server Error", detail, WithLog(err))
}

// UnauthorizedError creates a 401 unauthed error
func UnauthorizedError(detail string) *Problem {
	return New(http.StatusUnauthorized, "Unauthorized", detail)
}

// RateLimitError creates standard 429 rate limit error
func RateLimitError(detail string) *Problem {
	return New(http.StatusTooManyRequests, "Too Many Requests", detail)
}

// AsProblem maps domain errors onto their HTTP problem shape.
func AsProblem(err error) *Problem {
	if err == nil {
		return nil
	}

	var problem *Problem
	if errors.As(err, &problem) {
		return problem
	}

	var missing *MissingCredentialError
	if errors.As(err, &missing) {
		return New(http.StatusFailedDependency, "Missing Credential", missing.Error(),
			WithExtension("provider", missing.Provider),
			WithExtension("env", missing.Vars),
		)
	}

	var invalid *InvalidEndpointError
	if errors.As(err, &invalid) {
		return New(http.StatusFailedDependency, "Invalid Endpoint", invalid.Error(),
			WithExtension("provider", invalid.Provider),
			WithExtension("origin", invalid.Origin),
		)
	}

	var unresolved *UnresolvedModelError
	if errors.As(err, &unresolved) {
		return New(http.StatusNotFound, "Unresolved Model", unresolved.Error(),
			WithExtension("model", unresolved.Model),
		)
	}

	return InternalError("An unexpected error occurred.", err)
}
