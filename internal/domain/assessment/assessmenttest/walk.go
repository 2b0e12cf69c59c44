package assessmenttest

import (
	"reflect"
	"strings"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
)

var (
	scoreType = reflect.TypeOf(assessment.Score(0))
	enumType  = reflect.TypeOf((*assessment.Enum)(nil)).Elem()
)

// Scores collects every Score field of a record keyed by its dotted JSON path.
func Scores(record any) map[string]float64 {
	out := map[string]float64{}
	walk(reflect.ValueOf(record), "", func(path string, v reflect.Value) {
		if v.Type() == scoreType {
			out[path] = v.Float()
		}
	})
	return out
}

// Enums collects every categorical field of a record keyed by its dotted JSON path.
func Enums(record any) map[string]assessment.Enum {
	out := map[string]assessment.Enum{}
	walk(reflect.ValueOf(record), "", func(path string, v reflect.Value) {
		if v.Type().Implements(enumType) && v.Kind() == reflect.String {
			out[path] = v.Interface().(assessment.Enum)
		}
	})
	return out
}

// Paths lists every leaf path of a record; two records with equal paths have the same shape.
func Paths(record any) []string {
	var out []string
	walk(reflect.ValueOf(record), "", func(path string, _ reflect.Value) {
		out = append(out, path)
	})
	return out
}

func walk(v reflect.Value, prefix string, fn func(string, reflect.Value)) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct || v.Type().PkgPath() == "time" {
		fn(prefix, v)
		return
	}
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" {
			name = f.Name
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		walk(v.Field(i), name, fn)
	}
}
