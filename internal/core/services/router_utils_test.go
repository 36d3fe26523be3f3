package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLocalModel(t *testing.T) {
	tests := map[string]bool{
		"llama3.2":               true,
		"llama3.2:latest":        true,
		"Mistral-7B":             true,
		"qwen2.5-coder":          true,
		"custom:tag":             true,
		"meta-llama/llama-3-70b": false,
		"gpt-4o":                 false,
		"claude-3-opus":          false,
	}

	for model, want := range tests {
		assert.Equal(t, want, isLocalModel(model), model)
	}
}
