package types

import (
	"fmt"
	"reflect"
)

// isNil reports whether v is nil or a nil reference held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// mustNotBeNil panics when v is nil. A nil payload is a programming error, not a Failure.
func mustNotBeNil(v any, what string) {
	if isNil(v) {
		panic(fmt.Sprintf("types: %s must not be nil", what))
	}
}
