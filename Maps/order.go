package Maps

import (
	"cmp"
	"reflect"
	"strings"
)

// keyOrder of a and b sharing the same hash, ok is false if they are tied.
// Keys of the same dynamic type are ordered naturally when they have a Compare(K) int method or are
// of an integer, float, or string kind. Keys of different dynamic types are ordered by type name.
// Everything else, including keys whose natural order says equal, is a tie.
func keyOrder[K comparable](a, b K) (c int, ok bool) {
	x, y := any(a), any(b)
	ta, tb := reflect.TypeOf(x), reflect.TypeOf(y)
	if ta != tb {
		if c = strings.Compare(typeName(ta), typeName(tb)); c != 0 {
			return c, true
		}
		return 0, false
	}
	if o, is := x.(interface{ Compare(K) int }); is {
		c = o.Compare(b)
		return c, c != 0
	}
	va, vb := reflect.ValueOf(x), reflect.ValueOf(y)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		c = cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		c = cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		c = cmp.Compare(va.Float(), vb.Float())
	case reflect.String:
		c = strings.Compare(va.String(), vb.String())
	}
	return c, c != 0
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.PkgPath() + "." + t.String()
}

// compareNodes by the order of the bucket trees.
func compareNodes[K comparable, V any](a, b *hnode[K, V]) int {
	if a.hash != b.hash {
		return cmp.Compare(a.hash, b.hash)
	}
	if c, ok := keyOrder(a.k, b.k); ok {
		return c
	}
	return cmp.Compare(a.serial, b.serial)
}
