package services

import (
	"testing"

	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryModelRegistry_Lookup(t *testing.T) {
	registry := NewInMemoryModelRegistry([]domain.ModelDefinition{
		{Provider: domain.OpenAI, Name: "o3", Aliases: []string{"reasoner"}},
		{Provider: domain.OpenAI, Name: "o3-mini", Aliases: []string{"o3", "Mini"}},
		{Provider: domain.XAI, Name: "grok-3", Aliases: []string{"grok"}},
		{Provider: domain.XAI, Name: ""},
	})

	name, ok := registry.Lookup(domain.OpenAI, "REASONER")
	assert.True(t, ok)
	assert.Equal(t, "o3", name)

	name, ok = registry.Lookup(domain.OpenAI, "o3")
	assert.True(t, ok)
	assert.Equal(t, "o3", name, "canonical name wins over an alias")

	name, ok = registry.Lookup(domain.OpenAI, " mini ")
	assert.True(t, ok)
	assert.Equal(t, "o3-mini", name)

	_, ok = registry.Lookup(domain.Google, "grok")
	assert.False(t, ok, "lookups are scoped to one provider")
}

func TestInMemoryModelRegistry_ListModels(t *testing.T) {
	registry := NewInMemoryModelRegistry([]domain.ModelDefinition{
		{Provider: domain.XAI, Name: "grok-3-fast"},
		{Provider: domain.OpenAI, Name: "o3"},
		{Provider: domain.XAI, Name: "grok-3"},
	})

	all := registry.ListModels("")
	assert.Len(t, all, 3)
	assert.Equal(t, domain.OpenAI, all[0].Provider)
	assert.Equal(t, "grok-3", all[1].Name)

	assert.Len(t, registry.ListModels(domain.XAI), 2)
	assert.Empty(t, registry.ListModels(domain.DIAL))
}
