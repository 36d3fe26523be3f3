package services

import (
	"sort"
	"strings"

	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/core/ports"
)

// InMemoryModelRegistry indexes model definitions by provider and by
// lower-cased name or alias. It is built once and never mutated.
type InMemoryModelRegistry struct {
	models map[domain.Provider][]domain.ModelDefinition
	index  map[domain.Provider]map[string]string
}

func NewInMemoryModelRegistry(models []domain.ModelDefinition) ports.ModelCatalog {
	r := &InMemoryModelRegistry{
		models: make(map[domain.Provider][]domain.ModelDefinition),
		index:  make(map[domain.Provider]map[string]string),
	}

	for _, m := range models {
		if m.Name == "" {
			continue
		}
		r.models[m.Provider] = append(r.models[m.Provider], m)

		idx, ok := r.index[m.Provider]
		if !ok {
			idx = make(map[string]string)
			r.index[m.Provider] = idx
		}
		idx[strings.ToLower(m.Name)] = m.Name
		for _, alias := range m.Aliases {
			key := strings.ToLower(alias)
			// a canonical name always wins over another model's alias
			if _, taken := idx[key]; !taken {
				idx[key] = m.Name
			}
		}
	}

	return r
}

func (r *InMemoryModelRegistry) Lookup(p domain.Provider, model string) (string, bool) {
	name, ok := r.index[p][strings.ToLower(strings.TrimSpace(model))]
	return name, ok
}

func (r *InMemoryModelRegistry) ListModels(p domain.Provider) []domain.ModelDefinition {
	var list []domain.ModelDefinition
	if p != "" {
		list = append(list, r.models[p]...)
	} else {
		for _, defs := range r.models {
			list = append(list, defs...)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Provider != list[j].Provider {
			return list[i].Provider < list[j].Provider
		}
		return list[i].Name < list[j].Name
	})
	return list
}
