// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package is provides simple checks on the state of values.
package is

import (
	"reflect"
)

// Nil checks if the given value is nil. It detects both an untyped nil
// and an interface holding a typed nil, which compares unequal to nil but
// cannot be used.
func Nil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
