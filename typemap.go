package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	defaultStringLength     = 255
	defaultDecimalPrecision = 10
	defaultDecimalScale     = 2
)

func isTimestampMarker(f Field) bool {
	return f.timestampMarker || f.Name == "createdAt" || f.Name == "updatedAt"
}

// ToStorageColumn renders the gorm tag value declaring f's column.
// Modifiers always come in the same order: primaryKey, not null, unique,
// default.
func ToStorageColumn(f Field) string {
	column := "column:" + snakeCase(f.Name)

	if f.AutoIncrement && f.Type == FieldTypeInteger {
		return column + ";primaryKey;autoIncrement"
	}

	parts := []string{column}

	switch f.Type {
	case FieldTypeString:
		n := f.Length
		if n <= 0 {
			n = defaultStringLength
		}
		parts = append(parts, fmt.Sprintf("type:varchar(%d)", n))
	case FieldTypeEmail:
		parts = append(parts, fmt.Sprintf("type:varchar(%d)", defaultStringLength))
	case FieldTypeText:
		parts = append(parts, "type:text")
	case FieldTypeInteger:
		parts = append(parts, "type:integer")
	case FieldTypeBoolean:
		parts = append(parts, "type:boolean")
	case FieldTypeTimestamp:
		parts = append(parts, "type:timestamp")
	case FieldTypeDecimal:
		parts = append(parts, fmt.Sprintf("type:decimal(%d,%d)", decimalPrecision(f), decimalScale(f)))
	case FieldTypeJSON:
		parts = append(parts, "type:jsonb")
	case FieldTypeUUID:
		parts = append(parts, "type:uuid")
	default:
		logrus.WithFields(logrus.Fields{"field": f.Name, "type": f.Type.String()}).Warn("unknown field type; using a text column")
		parts = append(parts, "type:text")
	}

	if f.PrimaryKey {
		parts = append(parts, "primaryKey")
	}
	if f.Required && !f.PrimaryKey {
		parts = append(parts, "not null")
	}
	if f.Unique {
		parts = append(parts, "unique")
	}
	if f.Default != nil {
		parts = append(parts, "default:"+formatDefault(f.Default))
	} else if f.Type == FieldTypeTimestamp && isTimestampMarker(f) {
		parts = append(parts, "default:CURRENT_TIMESTAMP")
	}

	return strings.Join(parts, ";")
}

func decimalPrecision(f Field) int {
	if f.Precision > 0 {
		return f.Precision
	}
	return defaultDecimalPrecision
}

func decimalScale(f Field) int {
	if f.Scale != nil {
		return *f.Scale
	}
	return defaultDecimalScale
}

// decimalPattern accepts non-negative numbers with at most the column's
// scale of fractional digits.
func decimalPattern(f Field) string {
	scale := decimalScale(f)
	if scale == 0 {
		return `^\d+$`
	}
	return fmt.Sprintf(`^\d+(\.\d{1,%d})?$`, scale)
}

// formatDefault renders a literal default for a gorm tag. Strings are
// single quoted; ';' is escaped because it separates gorm tag settings.
func formatDefault(v interface{}) string {
	var s string

	switch v := v.(type) {
	case string:
		s = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case bool:
		s = strconv.FormatBool(v)
	case float64:
		s = formatNumber(v)
	case int:
		s = strconv.Itoa(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			s = fmt.Sprint(v)
		} else {
			s = "'" + strings.ReplaceAll(string(b), "'", "''") + "'"
		}
	}

	return strings.ReplaceAll(s, ";", `\;`)
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Rule is a go-playground/validator tag for one field.
type Rule struct {
	Optional    bool
	Constraints []string
}

func (r Rule) String() string {
	head := "required"
	if r.Optional {
		head = "omitempty"
	}
	return strings.Join(append([]string{head}, r.Constraints...), ",")
}

// WrapOptional marks r optional. Wrapping an optional rule returns it
// unchanged.
func WrapOptional(r Rule) Rule {
	if r.Optional {
		return r
	}
	return Rule{Optional: true, Constraints: r.Constraints}
}

// ToValidationRule maps f to its validator rule. For the string family
// only the strongest hint is used: email, then url, then enum, then
// pattern, then length bounds.
func ToValidationRule(f Field) Rule {
	var (
		c []string
		v = f.Validation
	)
	if v == nil {
		v = &Validation{}
	}

	switch f.Type {
	case FieldTypeString, FieldTypeText, FieldTypeEmail:
		switch {
		case f.Type == FieldTypeEmail || v.Email:
			c = append(c, "email")
		case v.URL:
			c = append(c, "url")
		case len(v.Enum) > 0:
			c = append(c, "oneof="+oneOfParam(v.Enum))
		case v.Regex != "" || v.Pattern != "":
			re := v.Regex
			if re == "" {
				re = v.Pattern
			}
			c = append(c, "pattern="+escapeParam(re))
		case v.Min != nil || v.Max != nil:
			c = append(c, boundRules(v)...)
		}
	case FieldTypeInteger:
		c = append(c, boundRules(v)...)
	case FieldTypeDecimal:
		c = append(c, "pattern="+escapeParam(decimalPattern(f)))
	case FieldTypeUUID:
		c = append(c, "uuid")
	case FieldTypeBoolean, FieldTypeTimestamp, FieldTypeJSON:
	default:
		logrus.WithFields(logrus.Fields{"field": f.Name, "type": f.Type.String()}).Warn("unknown field type; accepting any value")
	}

	return Rule{Optional: !f.Required, Constraints: c}
}

func boundRules(v *Validation) []string {
	var out []string
	if v.Min != nil {
		out = append(out, "min="+formatNumber(*v.Min))
	}
	if v.Max != nil {
		out = append(out, "max="+formatNumber(*v.Max))
	}
	return out
}

// escapeParam hides the characters go-playground/validator treats as tag
// separators.
func escapeParam(s string) string {
	return strings.NewReplacer(",", "0x2C", "|", "0x7C").Replace(s)
}

func oneOfParam(values []interface{}) string {
	parts := make([]string, len(values))
	for i, v := range values {
		s := fmt.Sprint(v)
		if f, ok := v.(float64); ok {
			s = formatNumber(f)
		}
		if strings.ContainsAny(s, " '") {
			s = "'" + strings.ReplaceAll(s, "'", "") + "'"
		}
		parts[i] = escapeParam(s)
	}
	return strings.Join(parts, " ")
}

// goType is the Go type a column of type t is held in.
func goType(t FieldType) string {
	switch t {
	case FieldTypeString, FieldTypeText, FieldTypeEmail, FieldTypeDecimal, FieldTypeUUID:
		return "string"
	case FieldTypeInteger:
		return "int64"
	case FieldTypeBoolean:
		return "bool"
	case FieldTypeTimestamp:
		return "time.Time"
	case FieldTypeJSON:
		return "json.RawMessage"
	default:
		return "string"
	}
}

// entityType is the type of f on the schema struct. Nullable columns are
// pointers; json columns are already nullable. Columns with a literal
// default are pointers too: gorm skips zero values of such fields on
// insert, so an explicit false or 0 would otherwise become the default.
func entityType(f Field) string {
	t := goType(f.Type)
	if f.Type == FieldTypeJSON || f.PrimaryKey || f.AutoIncrement {
		return t
	}
	if f.Required && f.Default == nil {
		return t
	}
	return "*" + t
}

// inputType is the type of f on a validator input, where absence must be
// distinguishable from the zero value.
func inputType(f Field) string {
	t := goType(f.Type)
	if f.Type == FieldTypeJSON {
		return t
	}
	return "*" + t
}

// structTag renders key/value pairs as a Go struct tag literal.
func structTag(pairs ...[2]string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p[0]+":"+strconv.Quote(p[1]))
	}

	tag := strings.Join(parts, " ")
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}
