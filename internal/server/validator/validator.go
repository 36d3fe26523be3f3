package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/nulzo/unified-router/internal/core/domain"
)

// Validator wraps gin's validation engine with English messages and the
// custom tags used by the admin API.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New configures gin's default validator engine and returns a wrapper around it.
func New() *Validator {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		v = validator.New()
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	_ = v.RegisterValidation("provider", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseProvider(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterTranslation("provider", trans,
		func(ut ut.Translator) error {
			return ut.Add("provider", "{0} must be a known provider", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("provider", fe.Field())
			return msg
		},
	)

	return &Validator{validate: v, trans: trans}
}

// Var validates a single value against tag, reporting failures under field.
func (v *Validator) Var(field string, value interface{}, tag string) map[string]string {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	errs := v.ParseError(err)
	// Var reports an empty namespace; rename it for the caller
	if msg, ok := errs[""]; ok {
		delete(errs, "")
		errs[field] = field + " " + strings.TrimSpace(msg)
	}
	return errs
}

// ParseError converts raw validation errors into a field to message map.
func (v *Validator) ParseError(err error) map[string]string {
	errMap := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errMap["request"] = "Invalid request format."
		return errMap
	}

	for _, e := range validationErrors {
		ns := e.Namespace()
		if i := strings.Index(ns, "."); i != -1 {
			ns = ns[i+1:]
		}

		msg := e.Translate(v.trans)
		if e.Tag() == "oneof" {
			msg = fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(e.Param(), " ", ", "))
		}
		errMap[ns] = msg
	}
	return errMap
}
