package endpoint

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/nulzo/unified-router/internal/core/domain"
)

// EndpointSpec is one model entry in an endpoints config file.
type EndpointSpec struct {
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key"`
}

// fileEndpoints holds the entries of one provider namespace, keyed by the raw
// model name exactly as written in the file.
type fileEndpoints struct {
	path    string
	entries map[string]EndpointSpec
	names   []string
}

// loadFile reads path and decodes the provider's namespace. Other top-level
// keys are ignored, so a single file may serve several providers.
func loadFile(p domain.Provider, path string) (*fileEndpoints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigParseError{Provider: p, Path: path, Err: err}
	}
	return parseFile(p, path, data)
}

func parseFile(p domain.Provider, path string, data []byte) (*fileEndpoints, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ConfigParseError{Provider: p, Path: path, Err: err}
	}

	f := &fileEndpoints{path: path, entries: map[string]EndpointSpec{}}

	raw, ok := doc[Namespace(p)]
	if !ok || string(raw) == "null" {
		return f, nil
	}

	if err := json.Unmarshal(raw, &f.entries); err != nil {
		return nil, &domain.ConfigParseError{
			Provider: p,
			Path:     path,
			Err:      fmt.Errorf("%s: %w", Namespace(p), err),
		}
	}

	for name, spec := range f.entries {
		if strings.TrimSpace(spec.BaseURL) == "" {
			delete(f.entries, name)
			continue
		}
		f.names = append(f.names, name)
	}
	sort.Strings(f.names)

	return f, nil
}

// lookup finds the entry for model: exact raw name first, then a
// case-insensitive match, then a separator-insensitive one.
func (f *fileEndpoints) lookup(model string) (string, EndpointSpec, bool) {
	if f == nil {
		return "", EndpointSpec{}, false
	}
	if spec, ok := f.entries[model]; ok {
		return model, spec, true
	}
	for _, name := range f.names {
		if strings.EqualFold(name, model) {
			return name, f.entries[name], true
		}
	}
	compact := CompactKey(model)
	if compact == "" {
		return "", EndpointSpec{}, false
	}
	for _, name := range f.names {
		if CompactKey(name) == compact {
			return name, f.entries[name], true
		}
	}
	return "", EndpointSpec{}, false
}

func (f *fileEndpoints) len() int {
	if f == nil {
		return 0
	}
	return len(f.entries)
}
