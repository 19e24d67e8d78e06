// Package zaccess resolves values in records by dotted property paths.
//
// A path like "stats.price" walks map keys, exported struct fields (by name, json tag
// or case-insensitive name), slice indexes and pointers. An empty path means the record itself.
// Lookups never panic: anything missing resolves to absent.
package zaccess

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/torlangballe/zstats/zfloat"
	"github.com/torlangballe/zstats/zlog"
	"github.com/torlangballe/zstats/zreflect"
	"github.com/torlangballe/zstats/zstr"
)

// Separator divides the segments of a property path.
const Separator = "."

// Getter resolves path in item, returning false if anything along the path is missing.
type Getter interface {
	Get(item any, path string) (any, bool)
}

// GetterFunc lets a plain function be used as a Getter.
type GetterFunc func(item any, path string) (any, bool)

func (f GetterFunc) Get(item any, path string) (any, bool) {
	return f(item, path)
}

// PathGetter is the reflection-based default Getter.
type PathGetter struct{}

var Default Getter = PathGetter{}

// OrDefault returns g, or Default if g is nil.
func OrDefault(g Getter) Getter {
	if g == nil {
		return Default
	}
	return g
}

func (PathGetter) Get(item any, path string) (any, bool) {
	if zstr.IsBlank(path) {
		return item, item != nil
	}
	val := reflect.ValueOf(item)
	for _, seg := range strings.Split(strings.TrimSpace(path), Separator) {
		var got bool
		val, got = step(val, seg)
		if !got {
			return nil, false
		}
	}
	val, got := zreflect.Deref(val)
	if !got {
		return nil, false
	}
	return valueInterface(val)
}

func step(val reflect.Value, seg string) (reflect.Value, bool) {
	val, got := zreflect.Deref(val)
	if !got {
		return reflect.Value{}, false
	}
	switch val.Kind() {
	case reflect.Map:
		ktype := val.Type().Key()
		if ktype.Kind() != reflect.String {
			zlog.Debug("zaccess: map key not string:", ktype, seg)
			return reflect.Value{}, false
		}
		v := val.MapIndex(reflect.ValueOf(seg).Convert(ktype))
		return v, v.IsValid()
	case reflect.Struct:
		return zreflect.FieldForName(val, seg)
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= val.Len() {
			return reflect.Value{}, false
		}
		return val.Index(i), true
	}
	zlog.Debug("zaccess: can't get", seg, "in", val.Kind())
	return reflect.Value{}, false
}

// valueInterface returns val as an any. Numbers reached through unexported embedded
// structs can't be interfaced, so they are read by kind instead.
func valueInterface(val reflect.Value) (any, bool) {
	if val.CanInterface() {
		return val.Interface(), true
	}
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return val.Uint(), true
	case reflect.Float32, reflect.Float64:
		return val.Float(), true
	case reflect.String:
		return val.String(), true
	case reflect.Bool:
		return val.Bool(), true
	}
	return nil, false
}

// Number resolves path in item and returns it if it is a valid number.
// Pointers to numbers are followed.
func Number(item any, path string, g Getter) (float64, bool) {
	v, got := OrDefault(g).Get(item, path)
	if !got {
		return 0, false
	}
	f, got := zfloat.GetNumber(v)
	if got {
		return f, true
	}
	rv, got := zreflect.Deref(reflect.ValueOf(v))
	if !got || rv.Kind() == reflect.Ptr {
		return 0, false
	}
	v, got = valueInterface(rv)
	if !got {
		return 0, false
	}
	return zfloat.GetNumber(v)
}

// SimpleSlice maps items to the values at path, keeping order and length; absent values are nil.
// With an empty path items itself is returned.
func SimpleSlice(items []any, path string, g Getter) []any {
	if zstr.IsBlank(path) {
		return items
	}
	g = OrDefault(g)
	out := make([]any, len(items))
	for i, item := range items {
		out[i], _ = g.Get(item, path)
	}
	return out
}

// Numbers returns the valid numbers at path in items, in input order.
// Absent, nil, NaN, infinite and non-numeric values are left out.
func Numbers(items []any, path string, g Getter) []float64 {
	g = OrDefault(g)
	out := make([]float64, 0, len(items))
	for _, item := range items {
		if f, got := Number(item, path, g); got {
			out = append(out, f)
		}
	}
	return out
}

// Anys converts a typed slice to []any, for use with the []any based functions.
func Anys[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
