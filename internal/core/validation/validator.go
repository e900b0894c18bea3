package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"tdm/internal/core/domain"
)

var (
	Validator  *validator.Validate
	Translator ut.Translator

	// Belarus and Russia phone formats, e.g. +375 (29) 123-45-67 or
	// 8 (999) 999-99-99.
	phoneRegex = regexp.MustCompile(`^(\+?(375|7)|8)?[\s-]?\(?\d{2,3}\)?[\s-]?\d{3}[\s-]?\d{2}[\s-]?\d{2}$`)
)

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the wire name, e.g. contactId, not ContactID.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)

	var found bool
	Translator, found = uni.GetTranslator("en")

	if !found {
		panic("translator en not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Translator); err != nil {
		panic(err)
	}

	registerCustomRules()
}

func registerCustomRules() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(Validator.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}))

	must(Validator.RegisterValidation("todostatus", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTodoStatus(fl.Field().String())
		return err == nil
	}))

	must(Validator.RegisterValidation("todopriority", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePriority(fl.Field().String())
		return err == nil
	}))

	must(Validator.RegisterTranslation("phone", Translator, func(ut ut.Translator) error {
		return ut.Add("phone", "{0} is not a valid phone number", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("phone", fe.Field())
		return t
	}))

	must(Validator.RegisterTranslation("todostatus", Translator, func(ut ut.Translator) error {
		return ut.Add("todostatus", "{0} is not a valid status", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("todostatus", fe.Field())
		return t
	}))

	must(Validator.RegisterTranslation("todopriority", Translator, func(ut ut.Translator) error {
		return ut.Add("todopriority", "{0} is not a valid priority", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("todopriority", fe.Field())
		return t
	}))
}

// Struct validates a command or query record eagerly, collecting every broken
// rule into a domain.ValidationError keyed by the JSON property name.
func Struct(s any) error {
	err := Validator.Struct(s)

	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)

	if !ok {
		return err
	}

	violations := make([]domain.FieldViolation, 0, len(validationErrors))

	for _, fe := range validationErrors {
		violations = append(violations, domain.FieldViolation{
			PropertyName: fe.Field(),
			ErrorMessage: fe.Translate(Translator),
		})
	}

	return domain.NewValidationError(violations...)
}

// IDs validates a delete-range id list: non-empty, every id positive.
func IDs(ids []int64) error {
	if len(ids) == 0 {
		return domain.NewValidationError(domain.FieldViolation{
			PropertyName: "ids",
			ErrorMessage: "at least one id is required",
		})
	}

	for _, id := range ids {
		if id <= 0 {
			return domain.NewValidationError(domain.FieldViolation{
				PropertyName: "ids",
				ErrorMessage: "ids must be positive",
			})
		}
	}

	return nil
}
