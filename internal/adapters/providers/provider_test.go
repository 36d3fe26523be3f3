package providers

import (
	"testing"

	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBaseURL(t *testing.T) {
	assert.Equal(t, "https://openrouter.ai/api/v1", DefaultBaseURL(domain.OpenRouter))
	assert.Empty(t, DefaultBaseURL(domain.Custom))
	assert.Empty(t, DefaultBaseURL(domain.Unified))
}

func TestNormalizeBaseURL(t *testing.T) {
	u, err := NormalizeBaseURL("  http://localhost:8000/v1/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/v1", u)

	for _, bad := range []string{"", "localhost:8000", "ftp://x", "http://"} {
		_, err := NormalizeBaseURL(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidEndpoint, bad)
	}
}
