// Package bind decodes JSON request bodies and validates them with
// go-playground/validator, translating failures into perr validation errors
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "tallybook/internal/platform/errors"
	"tallybook/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// Validator bundles the validator and its english translator
type Validator struct {
	V  *validator.Validate
	UT ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *Validator
)

// Get returns the process validator, building it on first use
func Get() *Validator {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = entrans.RegisterDefaultTranslations(v, trans)

		translate(v, trans, "min", "{0} must be at least {1}")
		translate(v, trans, "max", "{0} must be at most {1}")

		vSvc = &Validator{V: v, UT: trans}
	})
	return vSvc
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// FieldLevel is what a custom rule receives
type FieldLevel = validator.FieldLevel

// RegisterRule adds a custom tag with its english message ({0} is the field,
// {1} the tag param). Call it from package init, before any request is bound
func RegisterRule(tag, msg string, fn func(FieldLevel) bool) {
	s := Get()
	if err := s.V.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
	translate(s.V, s.UT, tag, msg)
}

func translate(v *validator.Validate, trans ut.Translator, tag, msg string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// JSONOptions tunes ParseJSON
type JSONOptions struct {
	MaxBytes        int64 // 0 means no limit
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// DefaultJSONOptions caps bodies at 1MB and rejects unknown fields and empty bodies
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes the request body into T and validates it
// decode problems are ErrorCodeJSON, rule violations ErrorCodeValidation with the field set
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("closing request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}
	first := make([]byte, 1)
	n, _ := io.ReadFull(body, first)
	if n == 0 && !o.AllowEmptyBody {
		return zero, perr.JSONErrf("empty body")
	}
	body = io.MultiReader(bytes.NewReader(first[:n]), body)

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	var dst T
	if err := dec.Decode(&dst); err != nil {
		if n == 0 && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs the struct rules on v
func Validate(v any) error {
	err := Get().V.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Named("bind").Error().Err(inv).Msg("validator misuse")
		return perr.Internalf("validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// FieldAndMessage returns the first failing field and its english message
func FieldAndMessage(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().UT)
	}
	if err == nil {
		return "", ""
	}
	return "", err.Error()
}
