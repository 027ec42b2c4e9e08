package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestToStorageColumn(t *testing.T) {
	for _, testCase := range []struct {
		name   string
		field  Field
		output string
	}{
		{"bounded string", Field{Name: "label", Type: FieldTypeString, Required: true}, "column:label;type:varchar(255);not null"},
		{"sized unique string", Field{Name: "code", Type: FieldTypeString, Length: 12, Required: true, Unique: true}, "column:code;type:varchar(12);not null;unique"},
		{"email", Field{Name: "email", Type: FieldTypeEmail, Length: 40}, "column:email;type:varchar(255)"},
		{"text", Field{Name: "body", Type: FieldTypeText}, "column:body;type:text"},
		{"integer", Field{Name: "stock", Type: FieldTypeInteger, Default: float64(3)}, "column:stock;type:integer;default:3"},
		{"auto increment", Field{Name: "id", Type: FieldTypeInteger, PrimaryKey: true, AutoIncrement: true, Required: true, Unique: true}, "column:id;primaryKey;autoIncrement"},
		{"boolean", Field{Name: "active", Type: FieldTypeBoolean, Default: true}, "column:active;type:boolean;default:true"},
		{"default decimal", Field{Name: "price", Type: FieldTypeDecimal, Required: true}, "column:price;type:decimal(10,2);not null"},
		{"sized decimal", Field{Name: "rate", Type: FieldTypeDecimal, Precision: 12, Scale: intPtr(4)}, "column:rate;type:decimal(12,4)"},
		{"zero scale", Field{Name: "units", Type: FieldTypeDecimal, Scale: intPtr(0)}, "column:units;type:decimal(10,0)"},
		{"json", Field{Name: "attributes", Type: FieldTypeJSON}, "column:attributes;type:jsonb"},
		{"uuid key", Field{Name: "id", Type: FieldTypeUUID, PrimaryKey: true, Required: true}, "column:id;type:uuid;primaryKey"},
		{"timestamp marker", Field{Name: "createdAt", Type: FieldTypeTimestamp, Required: true}, "column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP"},
		{"custom timestamp marker", Field{Name: "modifiedAt", Type: FieldTypeTimestamp, Required: true, timestampMarker: true}, "column:modified_at;type:timestamp;not null;default:CURRENT_TIMESTAMP"},
		{"plain timestamp", Field{Name: "publishedAt", Type: FieldTypeTimestamp}, "column:published_at;type:timestamp"},
		{"literal beats marker", Field{Name: "createdAt", Type: FieldTypeTimestamp, Default: "2020-01-01"}, "column:created_at;type:timestamp;default:'2020-01-01'"},
		{"quoted default", Field{Name: "status", Type: FieldTypeString, Default: "it's"}, "column:status;type:varchar(255);default:'it''s'"},
		{"separator in default", Field{Name: "status", Type: FieldTypeString, Default: "a;b"}, `column:status;type:varchar(255);default:'a\;b'`},
		{"unknown type", Field{Name: "blob", Type: FieldTypeUnknown, Required: true}, "column:blob;type:text;not null"},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.output, ToStorageColumn(testCase.field))
		})
	}
}

func TestToValidationRule(t *testing.T) {
	for _, testCase := range []struct {
		name   string
		field  Field
		output string
	}{
		{"required string", Field{Name: "label", Type: FieldTypeString, Required: true}, "required"},
		{"optional string", Field{Name: "label", Type: FieldTypeString}, "omitempty"},
		{"email type", Field{Name: "email", Type: FieldTypeEmail, Required: true}, "required,email"},
		{"email beats everything", Field{Name: "contact", Type: FieldTypeString, Validation: &Validation{Email: true, URL: true, Enum: []interface{}{"a"}, Regex: "x", Min: floatPtr(1)}}, "omitempty,email"},
		{"url beats enum", Field{Name: "site", Type: FieldTypeString, Validation: &Validation{URL: true, Enum: []interface{}{"a"}}}, "omitempty,url"},
		{"enum beats regex", Field{Name: "status", Type: FieldTypeString, Required: true, Validation: &Validation{Enum: []interface{}{"draft", "published"}, Regex: "^[a-z]+$"}}, "required,oneof=draft published"},
		{"quoted enum values", Field{Name: "stock", Type: FieldTypeString, Validation: &Validation{Enum: []interface{}{"in stock", "sold"}}}, "omitempty,oneof='in stock' sold"},
		{"numeric enum values", Field{Name: "size", Type: FieldTypeText, Validation: &Validation{Enum: []interface{}{float64(1), float64(2.5)}}}, "omitempty,oneof=1 2.5"},
		{"regex beats bounds", Field{Name: "slug", Type: FieldTypeString, Validation: &Validation{Regex: "^[a-z]{1,3}$", Max: floatPtr(3)}}, "omitempty,pattern=^[a-z]{10x2C3}$"},
		{"pattern alias", Field{Name: "slug", Type: FieldTypeString, Validation: &Validation{Pattern: "a|b"}}, "omitempty,pattern=a0x7Cb"},
		{"length bounds", Field{Name: "label", Type: FieldTypeString, Required: true, Validation: &Validation{Min: floatPtr(2), Max: floatPtr(40)}}, "required,min=2,max=40"},
		{"integer bounds", Field{Name: "stock", Type: FieldTypeInteger, Validation: &Validation{Min: floatPtr(0)}}, "omitempty,min=0"},
		{"integer ignores regex", Field{Name: "stock", Type: FieldTypeInteger, Required: true, Validation: &Validation{Regex: "x"}}, "required"},
		{"decimal", Field{Name: "price", Type: FieldTypeDecimal, Required: true}, `required,pattern=^\d+(\.\d{10x2C2})?$`},
		{"decimal scale", Field{Name: "rate", Type: FieldTypeDecimal, Scale: intPtr(4)}, `omitempty,pattern=^\d+(\.\d{10x2C4})?$`},
		{"decimal zero scale", Field{Name: "units", Type: FieldTypeDecimal, Required: true, Scale: intPtr(0)}, `required,pattern=^\d+$`},
		{"uuid", Field{Name: "ref", Type: FieldTypeUUID}, "omitempty,uuid"},
		{"boolean", Field{Name: "active", Type: FieldTypeBoolean, Required: true}, "required"},
		{"json", Field{Name: "attributes", Type: FieldTypeJSON}, "omitempty"},
		{"unknown type", Field{Name: "blob", Type: FieldTypeUnknown, Required: true}, "required"},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			rule := ToValidationRule(testCase.field)
			assert.Equal(t, testCase.output, rule.String())
			assert.NotContains(t, rule.String(), ",,")

			wrapped := WrapOptional(rule)
			assert.True(t, wrapped.Optional)
			assert.True(t, strings.HasPrefix(wrapped.String(), "omitempty"))
			assert.Equal(t, wrapped, WrapOptional(wrapped))
			assert.Equal(t, rule.Constraints, wrapped.Constraints)
		})
	}
}

func TestDecimalPatternCompiles(t *testing.T) {
	for _, scale := range []int{0, 1, 2, 6} {
		re := regexp.MustCompile(decimalPattern(Field{Name: "amount", Type: FieldTypeDecimal, Scale: intPtr(scale)}))
		assert.True(t, re.MatchString("5"), "scale %d", scale)
		assert.Equal(t, scale > 0, re.MatchString("5.5"), "scale %d", scale)
		assert.False(t, re.MatchString("-5"), "scale %d", scale)
	}
}

func TestEnumNeverEmitsPattern(t *testing.T) {
	rule := ToValidationRule(Field{
		Name: "status",
		Type: FieldTypeString,
		Validation: &Validation{
			Enum:  []interface{}{"draft", "published"},
			Regex: "^(draft|published)$",
		},
	})

	assert.Equal(t, []string{"oneof=draft published"}, rule.Constraints)
	assert.NotContains(t, rule.String(), "pattern")
}

func TestWrapOptionalKeepsOptionalRule(t *testing.T) {
	rule := Rule{Optional: true, Constraints: []string{"min=1"}}
	assert.Equal(t, rule, WrapOptional(rule))
	assert.Equal(t, "omitempty,min=1", WrapOptional(rule).String())
}

func TestStructTag(t *testing.T) {
	assert.Equal(t, "`json:\"label\" gorm:\"column:label\"`", structTag([2]string{"json", "label"}, [2]string{"gorm", "column:label"}))
	assert.Equal(t, "`validate:\"pattern=^\\\\d+$\"`", structTag([2]string{"validate", `pattern=^\d+$`}))
	assert.Equal(t, `"json:\"a`+"`"+`b\""`, structTag([2]string{"json", "a`b"}))
}

func TestGoTypes(t *testing.T) {
	for _, testCase := range []struct {
		field  Field
		entity string
		input  string
	}{
		{Field{Name: "label", Type: FieldTypeString, Required: true}, "string", "*string"},
		{Field{Name: "label", Type: FieldTypeString}, "*string", "*string"},
		{Field{Name: "id", Type: FieldTypeInteger, PrimaryKey: true, AutoIncrement: true}, "int64", "*int64"},
		{Field{Name: "active", Type: FieldTypeBoolean}, "*bool", "*bool"},
		{Field{Name: "at", Type: FieldTypeTimestamp, Required: true}, "time.Time", "*time.Time"},
		{Field{Name: "attributes", Type: FieldTypeJSON}, "json.RawMessage", "json.RawMessage"},
		{Field{Name: "price", Type: FieldTypeDecimal}, "*string", "*string"},
		{Field{Name: "enabled", Type: FieldTypeBoolean, Required: true, Default: true}, "*bool", "*bool"},
		{Field{Name: "weight", Type: FieldTypeInteger, Required: true, Default: float64(5)}, "*int64", "*int64"},
	} {
		t.Run(testCase.field.Name, func(t *testing.T) {
			assert.Equal(t, testCase.entity, entityType(testCase.field))
			assert.Equal(t, testCase.input, inputType(testCase.field))
		})
	}
}
