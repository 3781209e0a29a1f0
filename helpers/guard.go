package helpers

import "reflect"

// StrPanic panics with panicMessage if p is empty; otherwise returns p.
// Used for fail-fast validation of required constructor strings.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil, including typed nil pointers, maps, slices,
// channels, funcs and interfaces; otherwise returns v.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
