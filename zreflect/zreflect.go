package zreflect

import (
	"reflect"
	"strings"
)

// Deref follows pointers and interfaces to the value they hold.
// It returns false for an invalid value or a nil along the way.
func Deref(val reflect.Value) (reflect.Value, bool) {
	for {
		if !val.IsValid() {
			return val, false
		}
		switch val.Kind() {
		case reflect.Ptr, reflect.Interface:
			if val.IsNil() {
				return val, false
			}
			val = val.Elem()
		default:
			return val, true
		}
	}
}

// GetTagAsMap splits a struct tag value like `json:"name,omitempty"` into name -> parts.
func GetTagAsMap(stag string) map[string][]string {
	m := map[string][]string{}
	for _, field := range strings.Fields(stag) {
		key, val, got := strings.Cut(field, ":")
		if !got {
			continue
		}
		val = strings.Trim(val, `"`)
		m[key] = strings.Split(val, ",")
	}
	return m
}

// FieldForName returns the exported field of struct val called name.
// It matches the Go field name first, then a json tag name, then the field name ignoring case.
// Fields of embedded structs are found too.
func FieldForName(val reflect.Value, name string) (reflect.Value, bool) {
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	vtype := val.Type()
	if f, got := vtype.FieldByName(name); got && f.IsExported() {
		return fieldByIndex(val, f.Index)
	}
	var folded []int
	for i := 0; i < vtype.NumField(); i++ {
		f := vtype.Field(i)
		if !f.IsExported() {
			continue
		}
		tags := GetTagAsMap(string(f.Tag))
		if j := tags["json"]; len(j) > 0 && j[0] == name {
			return val.Field(i), true
		}
		if folded == nil && strings.EqualFold(f.Name, name) {
			folded = f.Index
		}
	}
	if folded != nil {
		return fieldByIndex(val, folded)
	}
	return reflect.Value{}, false
}

func fieldByIndex(val reflect.Value, index []int) (reflect.Value, bool) {
	v, err := val.FieldByIndexErr(index)
	if err != nil {
		return reflect.Value{}, false
	}
	return v, true
}
