package main

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// FieldType is the closed set of column types a model field can declare.
type FieldType int

const (
	FieldTypeUnknown FieldType = iota
	FieldTypeString
	FieldTypeText
	FieldTypeInteger
	FieldTypeBoolean
	FieldTypeTimestamp
	FieldTypeDecimal
	FieldTypeJSON
	FieldTypeUUID
	FieldTypeEmail
)

var fieldTypeNames = map[FieldType]string{
	FieldTypeString:    "string",
	FieldTypeText:      "text",
	FieldTypeInteger:   "integer",
	FieldTypeBoolean:   "boolean",
	FieldTypeTimestamp: "timestamp",
	FieldTypeDecimal:   "decimal",
	FieldTypeJSON:      "json",
	FieldTypeUUID:      "uuid",
	FieldTypeEmail:     "email",
}

func (t FieldType) String() string {
	if s, ok := fieldTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseFieldType returns FieldTypeUnknown for anything outside the set.
func ParseFieldType(s string) FieldType {
	for t, name := range fieldTypeNames {
		if name == s {
			return t
		}
	}
	return FieldTypeUnknown
}

// Toggle is an optional, optionally renamed, synthesized field. A document
// may write false, true or a custom field name.
type Toggle struct {
	Enabled bool
	Name    string
}

// FieldName is the name of the synthesized field, falling back to
// canonical when no custom name was given.
func (t Toggle) FieldName(canonical string) string {
	if !t.Enabled {
		return ""
	}
	if t.Name != "" {
		return t.Name
	}
	return canonical
}

type Endpoint struct {
	Enabled bool     `mapstructure:"enabled"`
	Auth    bool     `mapstructure:"auth"`
	Roles   []string `mapstructure:"roles"`
}

type APIConfig struct {
	List   Endpoint `mapstructure:"list"`
	Get    Endpoint `mapstructure:"get"`
	Create Endpoint `mapstructure:"create"`
	Update Endpoint `mapstructure:"update"`
	Delete Endpoint `mapstructure:"delete"`
}

type GenerateConfig struct {
	Schema     bool `mapstructure:"schema"`
	Validator  bool `mapstructure:"validator"`
	Repository bool `mapstructure:"repository"`
	Service    bool `mapstructure:"service"`
	Route      bool `mapstructure:"route"`
}

type Timestamps struct {
	CreatedAt Toggle `mapstructure:"createdAt"`
	UpdatedAt Toggle `mapstructure:"updatedAt"`
}

type Validation struct {
	Min     *float64      `mapstructure:"min"`
	Max     *float64      `mapstructure:"max"`
	Regex   string        `mapstructure:"regex"`
	Pattern string        `mapstructure:"pattern"`
	Enum    []interface{} `mapstructure:"enum"`
	Email   bool          `mapstructure:"email"`
	URL     bool          `mapstructure:"url"`
}

type Reference struct {
	Table    string `mapstructure:"table"`
	Field    string `mapstructure:"field"`
	OnDelete string `mapstructure:"onDelete"`
}

type Index struct {
	Name   string   `mapstructure:"name"`
	Fields []string `mapstructure:"fields"`
	Unique bool     `mapstructure:"unique"`
}

type Field struct {
	Name          string      `mapstructure:"name"`
	Type          FieldType   `mapstructure:"type"`
	Required      bool        `mapstructure:"required"`
	Unique        bool        `mapstructure:"unique"`
	Default       interface{} `mapstructure:"default"`
	PrimaryKey    bool        `mapstructure:"primaryKey"`
	AutoIncrement bool        `mapstructure:"autoIncrement"`
	Length        int         `mapstructure:"length"`
	Precision     int         `mapstructure:"precision"`
	Scale         *int        `mapstructure:"scale"`
	Validation    *Validation `mapstructure:"validation"`
	Description   string      `mapstructure:"description"`
	Reference     *Reference  `mapstructure:"reference"`

	// timestampMarker is set on synthesized createdAt/updatedAt fields so
	// that custom names still default to the current time.
	timestampMarker bool
}

type Model struct {
	Name        string         `mapstructure:"name"`
	TableName   string         `mapstructure:"tableName"`
	Description string         `mapstructure:"description"`
	Fields      []Field        `mapstructure:"fields"`
	Indexes     []Index        `mapstructure:"indexes"`
	API         APIConfig      `mapstructure:"api"`
	Timestamps  Timestamps     `mapstructure:"timestamps"`
	SoftDelete  Toggle         `mapstructure:"softDelete"`
	Generate    GenerateConfig `mapstructure:"generate"`

	// Source is the document the model was loaded from, if any.
	Source string `mapstructure:"-"`
}

// Key is the case-insensitive lookup key of the model.
func (m *Model) Key() string {
	return strings.ToLower(m.Name)
}

// Table is the storage table name: the explicit override, or the singular
// snake_case form of the model name.
func (m *Model) Table() string {
	if m.TableName != "" {
		return m.TableName
	}
	return singularFor(m.Name)
}

func (m *Model) CreatedAtField() string { return m.Timestamps.CreatedAt.FieldName("createdAt") }
func (m *Model) UpdatedAtField() string { return m.Timestamps.UpdatedAt.FieldName("updatedAt") }
func (m *Model) SoftDeleteField() string { return m.SoftDelete.FieldName("deletedAt") }

func (m *Model) hasField(name string) bool {
	for _, f := range m.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// AllFields returns the declared fields followed by the synthesized
// timestamp and soft-delete fields. A synthesized field is skipped when a
// field of the same name is already declared.
func (m *Model) AllFields() []Field {
	fields := make([]Field, 0, len(m.Fields)+4)
	if id, ok := m.implicitID(); ok {
		fields = append(fields, id)
	}
	fields = append(fields, m.Fields...)

	if name := m.CreatedAtField(); name != "" && !m.hasField(name) {
		fields = append(fields, Field{Name: name, Type: FieldTypeTimestamp, Required: true, timestampMarker: true})
	}
	if name := m.UpdatedAtField(); name != "" && !m.hasField(name) {
		fields = append(fields, Field{Name: name, Type: FieldTypeTimestamp, Required: true, timestampMarker: true})
	}
	if name := m.SoftDeleteField(); name != "" && !m.hasField(name) {
		fields = append(fields, Field{Name: name, Type: FieldTypeTimestamp})
	}

	return fields
}

// IsSystemManaged reports whether f is excluded from the generated input
// validators because its value is derived.
func (m *Model) IsSystemManaged(f Field) bool {
	switch f.Name {
	case "id", "createdAt", "updatedAt":
		return true
	}

	if f.PrimaryKey && f.AutoIncrement {
		return true
	}

	for _, name := range []string{m.CreatedAtField(), m.UpdatedAtField(), m.SoftDeleteField()} {
		if name != "" && f.Name == name {
			return true
		}
	}

	return false
}

// implicitID is the auto-increment key given to models that declare
// neither a primary key nor an id field.
func (m *Model) implicitID() (Field, bool) {
	for _, f := range m.Fields {
		if f.PrimaryKey || f.Name == "id" {
			return Field{}, false
		}
	}
	return Field{Name: "id", Type: FieldTypeInteger, PrimaryKey: true, AutoIncrement: true}, true
}

// IDField returns the primary key field, the field named "id" when no
// field is marked as primary key, or the implicit key.
func (m *Model) IDField() (Field, bool) {
	for _, f := range m.Fields {
		if f.PrimaryKey {
			return f, true
		}
	}
	for _, f := range m.Fields {
		if f.Name == "id" {
			return f, true
		}
	}
	return m.implicitID()
}

// References lists the tables referenced by the model's fields in field
// order, without duplicates and without the model's own table.
func (m *Model) References() []string {
	var (
		out  []string
		seen = map[string]bool{m.Table(): true}
	)

	for _, f := range m.Fields {
		if f.Reference == nil || f.Reference.Table == "" || seen[f.Reference.Table] {
			continue
		}
		seen[f.Reference.Table] = true
		out = append(out, f.Reference.Table)
	}

	return out
}

func fieldTypeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(FieldTypeUnknown) || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseFieldType(data.(string)), nil
}

func toggleHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(Toggle{}) {
		return data, nil
	}

	switch v := data.(type) {
	case nil:
		return Toggle{}, nil
	case bool:
		return Toggle{Enabled: v}, nil
	case string:
		return Toggle{Enabled: v != "", Name: v}, nil
	}

	return nil, errors.Errorf("expected a boolean or a field name, got %T", data)
}

// decodeModel turns a defaulted, schema-valid document into a Model.
func decodeModel(doc map[string]interface{}) (*Model, error) {
	var m Model

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(fieldTypeHook, toggleHook),
		WeaklyTypedInput: false,
		Result:           &m,
	})
	if err != nil {
		return nil, errors.Wrap(err, "decodeModel: could not construct decoder")
	}

	if err := dec.Decode(doc); err != nil {
		return nil, errors.Wrap(err, "decodeModel")
	}

	return &m, nil
}
