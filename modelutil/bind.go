package modelutil

import (
	"encoding/json"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldProblem is one failed validation rule.
type FieldProblem struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

var (
	validate = newValidator()
	patterns sync.Map
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("pattern", validatePattern); err != nil {
		panic(err)
	}

	return v
}

// validatePattern implements the "pattern=<regexp>" rule for strings.
func validatePattern(fl validator.FieldLevel) bool {
	re, err := compilePattern(fl.Param())
	if err != nil {
		return false
	}

	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return re.MatchString(field.String())
}

func compilePattern(expr string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	patterns.Store(expr, re)

	return re, nil
}

// Validate checks v against its validate tags.
func Validate(v interface{}) ([]FieldProblem, error) {
	err := validate.Struct(v)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	problems := make([]FieldProblem, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, FieldProblem{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}

	return problems, nil
}

// Bind decodes the JSON request body into dst and validates it. When it
// returns false the response has already been written.
func Bind(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}

	problems, err := Validate(dst)
	if err != nil {
		InternalError(w, err)
		return false
	}
	if len(problems) > 0 {
		ValidationError(w, "Validation failed", problems)
		return false
	}

	return true
}
