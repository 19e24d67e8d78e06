package zfloat

import (
	"math"
	"reflect"
)

// GetNumber returns i as a float64 if it is of an integer or float kind and finite.
// Strings, bools and other kinds are not numbers here.
func GetNumber(i any) (float64, bool) {
	var f float64
	switch n := i.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		val := reflect.ValueOf(i)
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(val.Int()), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return float64(val.Uint()), true
		case reflect.Float32, reflect.Float64:
			f = val.Float()
		default:
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// MixedValueAtT returns the mix beween the values t lies within using MixedValueAtIndex
// t is 0-1, corresponding to 0 as 100% of [0] and 1 as 100% the last slice element.
func MixedValueAtT(slice []float64, t float64) float64 {
	return MixedValueAtIndex(slice, float64(len(slice)-1)*t)
}

// MixedValueAtIndex returns a mix of the value before and after index;
// So if index is 4.25, it will return a mix of 75% [4] and 25% [5]
func MixedValueAtIndex(slice []float64, index float64) float64 {
	if len(slice) == 0 {
		return 0
	}
	if index <= 0 {
		return slice[0]
	}
	if index >= float64(len(slice)-1) {
		return slice[len(slice)-1]
	}
	n := math.Floor(index)
	f := index - n
	i := int(n)
	if f == 0 {
		return slice[i]
	}
	return slice[i] + (slice[i+1]-slice[i])*f
}
