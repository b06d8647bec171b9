package utils

import (
	"github.com/gostonefire/collections/internal/conf"
	"reflect"
)

// IsNil - Returns true if v is a nil pointer, interface, map, slice, channel or func.
// Values of any other kind are never nil.
func IsNil[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}

	return false
}

// IsNillable - Returns true if values of type T can be nil
func IsNillable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}

	return false
}

// GrowCapacity - Returns the capacity a full resizing array should be reallocated to
func GrowCapacity(capacity int) int {
	return capacity * conf.GrowFactor
}

// ShrinkCapacity - Returns the capacity a resizing array holding count elements should be reallocated to
// after a removal, and whether it should be reallocated at all.
// It shrinks by half when 0 < count == capacity / 4, but never below conf.MinArrayCapacity.
func ShrinkCapacity(count, capacity int) (newCapacity int, shrink bool) {
	if count == 0 || count != capacity/conf.ArrayShrinkDivisor {
		return capacity, false
	}

	newCapacity = capacity / conf.GrowFactor
	if newCapacity < conf.MinArrayCapacity {
		return capacity, false
	}

	return newCapacity, true
}
