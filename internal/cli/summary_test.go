package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/core/ports"
	"github.com/stretchr/testify/assert"
)

func TestPrintProviders(t *testing.T) {
	prev := SetEnabled(false)
	t.Cleanup(func() { SetEnabled(prev) })

	var buf bytes.Buffer
	PrintProviders(&buf, []ports.ProviderStatus{
		{Provider: domain.Unified, Priority: 1},
		{Provider: domain.DIAL, Priority: 5, Enabled: true, BaseURL: "https://core.dialx.ai", Overrides: 2},
		{Provider: domain.Custom, Priority: 6, Enabled: true, BaseURL: "http://localhost:11434/v1"},
	})

	out := buf.String()
	assert.Contains(t, out, "✘ 1. unified")
	assert.Contains(t, out, "✔ 5. dial")
	assert.Contains(t, out, "2 override(s)")
	assert.Contains(t, out, "overrides only, no default key")
	assert.Equal(t, 1, strings.Count(out, "no default key"), "only dial, custom needs no key")
}

func TestHighlightJSON_NoColor(t *testing.T) {
	prev := SetEnabled(false)
	t.Cleanup(func() { SetEnabled(prev) })

	assert.Equal(t, `{"a": 1}`, HighlightJSON(`{"a": 1}`))
	assert.Contains(t, PrettyFormat(map[string]int{"a": 1}), `"a": 1`)
}

func TestPrintProviders_GradientCoversLabel(t *testing.T) {
	prev := SetEnabled(true)
	t.Cleanup(func() { SetEnabled(prev) })

	var buf bytes.Buffer
	PrintProviders(&buf, []ports.ProviderStatus{{Provider: domain.Google, Priority: 2, Enabled: true}})

	out := buf.String()
	label := Gradient("2. google    ", BrandBlue, BrandPurple, 0)
	assert.Contains(t, out, Mark(true)+" "+label)
}

func TestBlend(t *testing.T) {
	assert.Equal(t, BrandBlue, BrandBlue.Blend(BrandPurple, -1))
	assert.Equal(t, BrandPurple, BrandBlue.Blend(BrandPurple, 2))
	assert.Equal(t, RGB{50, 100, 150}, RGB{0, 0, 100}.Blend(RGB{100, 200, 200}, 0.5))
}

func TestColorAllowed(t *testing.T) {
	env := func(vars map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
	}

	assert.True(t, colorAllowed(env(map[string]string{"TERM": "xterm-256color"})))
	assert.False(t, colorAllowed(env(map[string]string{"NO_COLOR": ""})))
	assert.False(t, colorAllowed(env(map[string]string{"TERM": "dumb"})))
}

func TestStyle(t *testing.T) {
	prev := SetEnabled(true)
	t.Cleanup(func() { SetEnabled(prev) })

	assert.Equal(t, "\033[31mx\033[0m", Style("x", Red))

	SetEnabled(false)
	assert.Equal(t, "x", Style("x", Red))
}
