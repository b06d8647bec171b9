package hashfunc

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
	"math"
	"reflect"
)

// Hasher - Produces a 64 bit hash value for a key. Equal keys must produce equal hash values.
type Hasher[K any] func(key K) uint64

// String - Hashes a string with xxhash
func String(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Integer - Hashes an integer to its own value, which is what most integer hash codes do.
// Key distribution is then entirely up to the caller, which makes collisions easy to arrange in tests.
func Integer[K constraints.Integer](key K) uint64 {
	return uint64(key)
}

// Float - Hashes a float by its IEEE 754 bits, folding -0 into +0 so that equal keys hash equally
func Float[K constraints.Float](key K) uint64 {
	f := float64(key)
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

// Default - Returns a Hasher for K chosen by the type of K.
// Strings, integers, floats and booleans get a dedicated hasher. Any other comparable type, interface types
// included, is hashed by Value.
func Default[K comparable]() Hasher[K] {
	var zero K
	switch any(zero).(type) {
	case string:
		return func(key K) uint64 { return String(any(key).(string)) }
	case int:
		return func(key K) uint64 { return Integer(any(key).(int)) }
	case int8:
		return func(key K) uint64 { return Integer(any(key).(int8)) }
	case int16:
		return func(key K) uint64 { return Integer(any(key).(int16)) }
	case int32:
		return func(key K) uint64 { return Integer(any(key).(int32)) }
	case int64:
		return func(key K) uint64 { return Integer(any(key).(int64)) }
	case uint:
		return func(key K) uint64 { return Integer(any(key).(uint)) }
	case uint8:
		return func(key K) uint64 { return Integer(any(key).(uint8)) }
	case uint16:
		return func(key K) uint64 { return Integer(any(key).(uint16)) }
	case uint32:
		return func(key K) uint64 { return Integer(any(key).(uint32)) }
	case uint64:
		return func(key K) uint64 { return Integer(any(key).(uint64)) }
	case uintptr:
		return func(key K) uint64 { return Integer(any(key).(uintptr)) }
	case float32:
		return func(key K) uint64 { return Float(any(key).(float32)) }
	case float64:
		return func(key K) uint64 { return Float(any(key).(float64)) }
	case bool:
		return func(key K) uint64 { return Bool(any(key).(bool)) }
	}

	return func(key K) uint64 { return Value(any(key)) }
}

// Bool - Hashes false to 0 and true to 1
func Bool(key bool) uint64 {
	if key {
		return 1
	}
	return 0
}

// Value - Hashes any comparable value so that values equal under == hash equally.
// The dynamic type of key selects String, Integer, Float or Bool where one applies. Other values are hashed with
// xxhash over their structure: struct fields and array elements in order, interfaces by their dynamic value,
// pointers and channels by address, floats and complex parts with -0 folded into +0.
func Value(key any) uint64 {
	switch k := key.(type) {
	case string:
		return String(k)
	case int:
		return Integer(k)
	case int8:
		return Integer(k)
	case int16:
		return Integer(k)
	case int32:
		return Integer(k)
	case int64:
		return Integer(k)
	case uint:
		return Integer(k)
	case uint8:
		return Integer(k)
	case uint16:
		return Integer(k)
	case uint32:
		return Integer(k)
	case uint64:
		return Integer(k)
	case uintptr:
		return Integer(k)
	case float32:
		return Float(k)
	case float64:
		return Float(k)
	case bool:
		return Bool(k)
	}

	d := xxhash.New()
	writeValue(d, reflect.ValueOf(key))

	return d.Sum64()
}

// writeValue - Feeds the structure of v into d
func writeValue(d *xxhash.Digest, v reflect.Value) {
	if !v.IsValid() {
		writeUint64(d, 0)
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		writeUint64(d, Bool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint64(d, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint64(d, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeUint64(d, Float(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeUint64(d, Float(real(c)))
		writeUint64(d, Float(imag(c)))
	case reflect.String:
		s := v.String()
		writeUint64(d, uint64(len(s)))
		_, _ = d.Write([]byte(s))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		writeUint64(d, uint64(v.Pointer()))
	case reflect.Interface:
		writeValue(d, v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			writeValue(d, v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			writeValue(d, v.Field(i))
		}
	}
}

// writeUint64 - Feeds u into d as 8 little endian bytes
func writeUint64(d *xxhash.Digest, u uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	_, _ = d.Write(b[:])
}
