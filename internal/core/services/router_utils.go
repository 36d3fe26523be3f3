package services

import "strings"

// localModelPrefixes are model families usually served by self-hosted
// OpenAI-compatible servers (Ollama, vLLM, LM Studio).
var localModelPrefixes = []string{"llama", "mistral", "mixtral", "qwen", "phi", "gemma", "codellama", "tinydolphin"}

// isLocalModel guesses whether model is meant for the custom endpoint.
// Ollama-style tags ("llama3.2:latest") always are.
func isLocalModel(model string) bool {
	lowered := strings.ToLower(model)
	if strings.Contains(lowered, ":") {
		return true
	}
	// "vendor/model" names belong to aggregators
	if strings.Contains(lowered, "/") {
		return false
	}
	for _, prefix := range localModelPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}
