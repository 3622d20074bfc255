// Package validation exposes the document engine to request binding and to the service
// layer's field checks.
package validation

import (
	"errors"
	"net/mail"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	pt_BR_locale "github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_BR_translations "github.com/go-playground/validator/v10/translations/pt_BR"

	"imovel-api/internal/document"
)

func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

type customTag struct {
	name    string
	message string
	valid   func(string) bool
}

var customTags = []customTag{
	{
		name:    "cpf",
		message: "{0} deve ser um CPF válido",
		valid:   func(s string) bool { return document.ValidateCPF(s).IsValid() },
	},
	{
		name:    "cnpj",
		message: "{0} deve ser um CNPJ válido",
		valid:   func(s string) bool { return document.ValidateCNPJ(s).IsValid() },
	},
	{
		name:    "document",
		message: "{0} deve ser um CPF ou CNPJ válido",
		valid:   func(s string) bool { return document.ValidateDocument(s).IsValid() },
	},
	{
		name:    "cep",
		message: "{0} deve ser um CEP com 8 dígitos",
		valid:   document.IsValidCEPFormat,
	},
	{
		name:    "phone",
		message: "{0} deve ser um telefone com DDD",
		valid:   document.IsValidPhone,
	},
}

// Register installs the document tags on v, names fields after their json tags and
// returns a pt_BR translator for the resulting errors.
func Register(v *validator.Validate) (ut.Translator, error) {
	locale := pt_BR_locale.New()
	trans, _ := ut.New(locale, locale).GetTranslator(locale.Locale())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := pt_BR_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	for _, tag := range customTags {
		valid := tag.valid
		err := v.RegisterValidation(tag.name, func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.String {
				return false
			}
			return valid(field.String())
		})
		if err != nil {
			return nil, err
		}

		name, message := tag.name, tag.message
		err = v.RegisterTranslation(name, trans,
			func(t ut.Translator) error {
				return t.Add(name, message, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(name, fe.Field())
				return msg
			},
		)
		if err != nil {
			return nil, err
		}
	}

	return trans, nil
}

var (
	ginOnce       sync.Once
	ginTranslator ut.Translator
	ginErr        error
)

// RegisterGin registers the document tags on gin's binding validator. It is safe to call
// more than once.
func RegisterGin() (ut.Translator, error) {
	ginOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			ginErr = errors.New("gin binding engine is not a go-playground validator")
			return
		}
		ginTranslator, ginErr = Register(v)
	})
	return ginTranslator, ginErr
}

// Message returns the first translated field error in err, or err's own text when it is
// not a validation failure (malformed JSON, for instance).
func Message(err error, trans ut.Translator) string {
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if trans != nil && errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Translate(trans)
	}
	return err.Error()
}
