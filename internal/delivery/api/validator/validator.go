// Package validator adapts go-playground/validator to echo and to the domain ValidationError.
package validator

import (
	"math"
	"reflect"
	"strings"
	"time"

	"courseadmin/internal/delivery/api/request"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// custom validation tags
const (
	presentTag  = "present"
	notBlankTag = "notblank"
	integerTag  = "integer"
	dateTag     = "date"
)

var timeType = reflect.TypeOf(time.Time{})

// CrossFieldChecker is implemented by requests with rules spanning several fields.
// It runs after the tag rules.
type CrossFieldChecker interface {
	CheckCrossFields(verr *domainerrors.ValidationError)
}

// Validator implements echo.Validator.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New builds a validator that names fields after their json, form or query tag.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(fieldName)
	validate.RegisterCustomTypeFunc(scalarValue, request.Number{}, request.Bool{}, request.Date{}, request.Text{})

	_ = validate.RegisterValidation(presentTag, isPresent)
	_ = validate.RegisterValidation(notBlankTag, notBlank)
	_ = validate.RegisterValidation(integerTag, isInteger)
	_ = validate.RegisterValidation(dateTag, isDate)

	v := &Validator{validate: validate, translator: translator}
	v.registerMessages("required", presentTag, notBlankTag, integerTag, dateTag, "numeric", "boolean", "oneof", "url")

	return v
}

// Validate checks i and returns a *domainerrors.ValidationError listing every failed rule.
func (v *Validator) Validate(i any) error {
	verr := domainerrors.NewValidationError()

	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.WithStack(err)
		}
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), v.message(i, fe))
		}
	}

	if checker, ok := i.(CrossFieldChecker); ok {
		checker.CheckCrossFields(verr)
	}

	return verr.OrNil()
}

// message prefers the field's label for presence rules so clients get
// "Section name is required." rather than a generic sentence.
func (v *Validator) message(i any, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", presentTag, notBlankTag:
		if label := fieldLabel(i, fe.StructField()); label != "" {
			return label + " is required."
		}
	}

	return fe.Translate(v.translator)
}

func (v *Validator) registerMessages(tags ...string) {
	noop := func(ut.Translator) error { return nil }
	for _, tag := range tags {
		_ = v.validate.RegisterTranslation(tag, v.translator, noop, translate)
	}
}

func translate(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", presentTag, notBlankTag:
		return fe.Field() + " is required"
	case "numeric":
		return fe.Field() + " must be a number"
	case integerTag:
		return fe.Field() + " must be a whole number"
	case "boolean":
		return fe.Field() + " must be true or false"
	case dateTag:
		return fe.Field() + " must be a date (YYYY-MM-DD or RFC 3339)"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "url":
		return fe.Field() + " must be an absolute URL"
	default:
		return fe.Field() + " is invalid"
	}
}

func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form", "query"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return fld.Name
}

func fieldLabel(i any, structField string) string {
	t := reflect.TypeOf(i)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	fld, ok := t.FieldByName(structField)
	if !ok {
		return ""
	}

	return fld.Tag.Get("label")
}

// scalarValue exposes a loosely typed input to the tag rules: nil when absent,
// the parsed value when valid, the raw string otherwise so numeric/boolean/date fail.
func scalarValue(field reflect.Value) any {
	switch val := field.Interface().(type) {
	case request.Number:
		if !val.IsSet() {
			return nil
		}
		if !val.Valid() {
			return val.Raw()
		}

		return val.Float()
	case request.Bool:
		if !val.IsSet() {
			return nil
		}
		if !val.Valid() {
			return val.Raw()
		}

		return val.Value()
	case request.Text:
		if !val.IsSet() {
			return nil
		}

		return val.Value()
	case request.Date:
		if !val.IsSet() {
			return nil
		}
		if !val.Valid() {
			return val.Raw()
		}

		return val.Time()
	}

	return nil
}

// isPresent only fails for absent loosely typed values, which the validator
// reports before calling it; a present zero passes where "required" would not.
func isPresent(validator.FieldLevel) bool {
	return true
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}

	return false
}

// isInteger accepts whole numbers that fit in an int32 column.
func isInteger(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	case reflect.Float32, reflect.Float64:
		v := field.Float()

		return v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32
	default:
		return false
	}
}

func isDate(fl validator.FieldLevel) bool {
	return fl.Field().Type() == timeType
}
