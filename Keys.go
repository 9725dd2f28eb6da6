package Go_Trees

import (
	"errors"
	"reflect"
)

// ErrInvalidArgument is matched by errors.Is for every argument validation error in this module.
var ErrInvalidArgument = errors.New("invalid argument")

// NilKeyError is returned when a nil key is passed to a keyed operation. The container is left untouched.
type NilKeyError struct {
	Op string
}

func (e *NilKeyError) Error() string {
	return "nil key passed to " + e.Op
}

func (e *NilKeyError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// KeyCheck validates keys of type K. Its zero value accepts everything, use NewKeyCheck.
type KeyCheck[K any] struct {
	nilable bool
}

// NewKeyCheck inspects K once. Keys of kinds that can't hold nil are never checked again.
func NewKeyCheck[K any]() KeyCheck[K] {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return KeyCheck[K]{true}
	}
	return KeyCheck[K]{}
}

// Check k, returns a *NilKeyError naming op if k is nil.
func (u KeyCheck[K]) Check(op string, k K) error {
	if u.nilable && IsNil(k) {
		return &NilKeyError{op}
	}
	return nil
}

// IsNil reports whether k is nil, including a non-nil interface holding a nil pointer.
func IsNil[K any](k K) bool {
	v := reflect.ValueOf(any(k))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
