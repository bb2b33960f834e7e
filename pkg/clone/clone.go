// Package clone implements a cycle-safe deep clone over dynamic values.
package clone

import (
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrRecursion is returned when a value contains itself,
// directly or transitively, within the path currently being descended.
const ErrRecursion errorkit.Error = "recursion detected"

// Deep returns a deep clone of the passed value.
//
// Clone is identity on scalars.
// Maps, slices, arrays, pointers and structs are cloned recursively,
// map keys included.
// A shared reference appearing in sibling branches clones into independent
// copies; only a true cycle fails with ErrRecursion.
func Deep[T any](v T) (T, error) {
	out, err := Value(v)
	if err != nil {
		var zero T
		return zero, err
	}
	if out == nil {
		var zero T
		return zero, nil
	}
	return out.(T), nil
}

// Value is the untyped variant of Deep.
func Value(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	visited := make(map[uintptr]struct{})
	rv, err := deepValue(reflect.ValueOf(v), visited)
	if err != nil {
		return nil, err
	}
	return rv.Interface(), nil
}

// deepValue walks the value the same way reflectkit's visitor does,
// keyed on the referent identity of each container currently in flight.
func deepValue(rv reflect.Value, visited map[uintptr]struct{}) (reflect.Value, error) {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return rv, nil
		}
		release, err := enter(rv, visited)
		if err != nil {
			return reflect.Value{}, err
		}
		defer release()
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, err := deepValue(iter.Key(), visited)
			if err != nil {
				return reflect.Value{}, err
			}
			v, err := deepValue(iter.Value(), visited)
			if err != nil {
				return reflect.Value{}, err
			}
			out.SetMapIndex(k, v)
		}
		return out, nil

	case reflect.Slice:
		if rv.IsNil() {
			return rv, nil
		}
		release, err := enter(rv, visited)
		if err != nil {
			return reflect.Value{}, err
		}
		defer release()
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := deepValue(rv.Index(i), visited)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(v)
		}
		return out, nil

	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			v, err := deepValue(rv.Index(i), visited)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(v)
		}
		return out, nil

	case reflect.Pointer:
		if rv.IsNil() {
			return rv, nil
		}
		release, err := enter(rv, visited)
		if err != nil {
			return reflect.Value{}, err
		}
		defer release()
		out := reflect.New(rv.Type().Elem())
		v, err := deepValue(rv.Elem(), visited)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Elem().Set(v)
		return out, nil

	case reflect.Interface:
		if rv.IsNil() {
			return rv, nil
		}
		v, err := deepValue(rv.Elem(), visited)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(v)
		return out, nil

	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		// unexported fields keep their shallow copied value
		out.Set(rv)
		for i := 0; i < rv.NumField(); i++ {
			if !out.Field(i).CanSet() {
				continue
			}
			v, err := deepValue(rv.Field(i), visited)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Field(i).Set(v)
		}
		return out, nil

	default:
		return rv, nil
	}
}

// enter registers a container referent as in flight for the current subtree.
// The returned release makes the registration scoped to the descent path,
// so the same referent may appear again in a sibling branch without error.
func enter(rv reflect.Value, visited map[uintptr]struct{}) (release func(), err error) {
	id := rv.Pointer()
	if _, ok := visited[id]; ok {
		return nil, ErrRecursion.F("%s value contains itself", rv.Type())
	}
	visited[id] = struct{}{}
	return func() { delete(visited, id) }, nil
}
