// Package schema derives the JSON Schema sent to model backends from the
// assessment record types, so the wire contract and the Go types cannot drift.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
)

var (
	scoreType = reflect.TypeOf(assessment.Score(0))
	timeType  = reflect.TypeOf(time.Time{})
	enumType  = reflect.TypeOf((*assessment.Enum)(nil)).Elem()
)

// Document is a named JSON Schema for one assessment variant.
type Document struct {
	Name    string
	Variant assessment.Variant
	Schema  map[string]any
}

// For builds the schema document of a variant.
func For(v assessment.Variant) (Document, error) {
	switch v {
	case assessment.VariantNested:
		return Document{Name: "autism_assessment", Variant: v, Schema: objectOf(reflect.TypeOf(assessment.Assessment{}))}, nil
	case assessment.VariantFlat:
		return Document{Name: "flat_autism_assessment", Variant: v, Schema: objectOf(reflect.TypeOf(assessment.Flat{}))}, nil
	}
	return Document{}, fmt.Errorf("%w: variant %q", assessment.ErrInvalidEnum, v)
}

// MustFor is For for the two known variants; it panics on anything else.
func MustFor(v assessment.Variant) Document {
	d, err := For(v)
	if err != nil {
		panic(err)
	}
	return d
}

// JSON returns the schema serialized, as go-openai and prompt embedding expect.
func (d Document) JSON() json.RawMessage {
	b, _ := json.Marshal(d.Schema)
	return b
}

// Indented is used when the schema is written into a prompt or printed by the CLI.
func (d Document) Indented() string {
	b, _ := json.MarshalIndent(d.Schema, "", "  ")
	return string(b)
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}

func objectOf(t reflect.Type) map[string]any {
	props := map[string]any{}
	required := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "-" {
			continue
		}
		props[name] = withBounds(nodeOf(f.Type), f.Tag.Get("validate"))
		required = append(required, name)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func nodeOf(t reflect.Type) map[string]any {
	switch {
	case t == scoreType:
		return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
	case t == timeType:
		return map[string]any{"type": "string", "format": "date-time"}
	case t.Kind() == reflect.String && t.Implements(enumType):
		e := reflect.Zero(t).Interface().(assessment.Enum)
		return map[string]any{"type": "string", "enum": e.Values()}
	}
	switch t.Kind() {
	case reflect.Struct:
		return objectOf(t)
	case reflect.Slice:
		return map[string]any{"type": "array", "items": nodeOf(t.Elem())}
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Int, reflect.Int32, reflect.Int64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	}
	panic(fmt.Sprintf("schema: unsupported field type %s", t))
}

// withBounds copies gte/lte rules from a validate tag onto numeric nodes so
// backends see the same limits assessment.Validate enforces.
func withBounds(node map[string]any, rules string) map[string]any {
	if node["type"] != "integer" && node["type"] != "number" {
		return node
	}
	for _, rule := range strings.Split(rules, ",") {
		key, val, ok := strings.Cut(rule, "=")
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			continue
		}
		switch key {
		case "gte":
			node["minimum"] = n
		case "lte":
			node["maximum"] = n
		}
	}
	return node
}

// CheckRequired reports every required key that is absent or null in raw.
// encoding/json zero-fills missing fields, so this runs before decoding.
func (d Document) CheckRequired(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	var missing []string
	checkObject(d.Schema, v, "", &missing)
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s", assessment.ErrMissingField, strings.Join(missing, ", "))
}

func checkObject(node map[string]any, v any, prefix string, missing *[]string) {
	if node["type"] != "object" {
		return
	}
	obj, ok := v.(map[string]any)
	if !ok {
		*missing = append(*missing, strings.TrimPrefix(prefix, "."))
		return
	}
	props, _ := node["properties"].(map[string]any)
	required, _ := node["required"].([]string)
	for _, key := range required {
		child, present := obj[key]
		path := prefix + "." + key
		if !present || child == nil {
			*missing = append(*missing, strings.TrimPrefix(path, "."))
			continue
		}
		if sub, ok := props[key].(map[string]any); ok {
			checkObject(sub, child, path, missing)
		}
	}
}

// ErrUnsupported is returned by converters that cannot express a schema node.
var ErrUnsupported = errors.New("unsupported schema node")
