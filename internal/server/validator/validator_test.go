package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type providerQuery struct {
	Provider string `form:"provider" binding:"omitempty,provider"`
	Format   string `form:"format" binding:"omitempty,oneof=json text"`
}

func TestVar(t *testing.T) {
	v := New()

	assert.Nil(t, v.Var("model", "gpt-4", "required,max=8"))

	errs := v.Var("model", "", "required")
	assert.Equal(t, map[string]string{"model": "model is a required field"}, errs)
}

func TestCustomProviderTag(t *testing.T) {
	v := New()

	assert.Nil(t, v.Var("provider", "gemini", "provider"))

	errs := v.Var("provider", "bedrock", "provider")
	assert.Contains(t, errs["provider"], "must be a known provider")
}

func TestParseError_Struct(t *testing.T) {
	v := New()

	err := v.validate.Struct(providerQuery{Provider: "nope", Format: "xml"})
	errs := v.ParseError(err)

	assert.Equal(t, "provider must be a known provider", errs["provider"])
	assert.Equal(t, "must be one of [json, text]", errs["format"])
}

func TestParseError_NotValidation(t *testing.T) {
	errs := New().ParseError(assert.AnError)
	assert.Contains(t, errs, "request")
}
