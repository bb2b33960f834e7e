// Package readonly provides a recursive read-only view over a dynamic table.
//
// A View is a lens, not a copy: it shares the underlying table with its
// owner, rejects every write, and wraps nested tables on read so that the
// whole reachable structure is immutable through it.
// A method table can expose callables on keys the raw data does not have.
//
// Only a tablekit.Table value counts as a nested container.
// Slices are plain values under the Table convention:
// a slice read through a view comes back as is, sharing its backing array.
// Callers needing an immutable sequence store it as a table with an array part.
package readonly

import (
	"fmt"
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/tablekit/pkg/tablekit"
)

const (
	// ErrInvalidTable is returned when the wrapped value is not a table.
	ErrInvalidTable errorkit.Error = "readonly: table expected"
	// ErrInvalidKey is returned when a key can not index a table.
	ErrInvalidKey errorkit.Error = "readonly: uncomparable key"
	// ErrInvalidMethods is returned when the method table is malformed.
	ErrInvalidMethods errorkit.Error = "readonly: malformed method table"
	// ErrNotFound is returned on reading an absent value while nil reads are disabled.
	ErrNotFound errorkit.Error = "readonly: attempted to read inexistent value"
	// ErrReadOnly is returned on any write attempt against a View.
	ErrReadOnly errorkit.Error = "readonly: write attempted on read-only view"
)

// Func is a callback registered in a method table.
// It receives the raw underlying table as its receiver argument.
type Func func(self tablekit.Table, args ...any) (any, error)

// Methods maps method names to their callbacks.
type Methods map[string]Func

// Bound is a method resolved against a given view,
// already bound to the underlying table of that view.
type Bound func(args ...any) (any, error)

// Option configures a View construction.
type Option = option.Option[config]

type config struct {
	methods       Methods
	stringer      func(tablekit.Table) string
	allowNilReads bool
}

// WithMethods registers the method table of the view.
// Methods resolve only on keys absent from the raw data,
// and propagate to the nested views.
func WithMethods(ms Methods) Option {
	return option.Func[config](func(c *config) { c.methods = ms })
}

// WithStringer registers the stringification function of the view.
// The stringer always receives the raw underlying table, never a view.
func WithStringer(fn func(tablekit.Table) string) Option {
	return option.Func[config](func(c *config) { c.stringer = fn })
}

// AllowNilReads makes reading an absent key yield absence instead of ErrNotFound.
func AllowNilReads() Option {
	return option.Func[config](func(c *config) { c.allowNilReads = true })
}

// View is an immutable projection of a table.
type View struct {
	data tablekit.Table
	conf config
}

// Wrap constructs a read-only view over a table.
//
// Preconditions are checked up front, before any access:
// the table must not be nil, and every method table entry must be callable.
func Wrap(t tablekit.Table, opts ...Option) (*View, error) {
	if t == nil {
		return nil, ErrInvalidTable.F("got nil table")
	}
	c := option.ToConfig(opts)
	for name, fn := range c.methods {
		if fn == nil {
			return nil, ErrInvalidMethods.F("nil method: %s", name)
		}
	}
	return &View{data: t, conf: c}, nil
}

// WrapAny is the dynamic-argument variant of Wrap,
// for callers that hold the table as an untyped value.
func WrapAny(v any, opts ...Option) (*View, error) {
	t, ok := tablekit.AsTable(v)
	if !ok {
		return nil, ErrInvalidTable.F("got %T", v)
	}
	return Wrap(t, opts...)
}

// WrapEx constructs a read-only view and also returns the raw table,
// for callers that keep mutating the source while exposing the view.
// The view has no storage of its own, raw writes are visible through it.
func WrapEx(t tablekit.Table, opts ...Option) (*View, tablekit.Table, error) {
	v, err := Wrap(t, opts...)
	if err != nil {
		return nil, nil, err
	}
	return v, t, nil
}

// Get reads a key of the underlying table.
//
// A nested table value comes back freshly wrapped with the same
// configuration. An absent key resolves against the method table first,
// returning a Bound callable on match. An absent key without a method
// fails with ErrNotFound, unless nil reads are allowed.
//
// An uncomparable key can not index a table and fails with ErrInvalidKey.
func (v *View) Get(key any) (any, error) {
	if key != nil && !reflect.TypeOf(key).Comparable() {
		return nil, ErrInvalidKey.F("%T", key)
	}
	raw, ok := v.data[key]
	if ok {
		if sub, isTable := tablekit.AsTable(raw); isTable {
			return &View{data: sub, conf: v.conf}, nil
		}
		return raw, nil
	}
	if name, isName := key.(string); isName {
		if fn, found := v.conf.methods[name]; found {
			self := v.data
			return Bound(func(args ...any) (any, error) {
				return fn(self, args...)
			}), nil
		}
	}
	if v.conf.allowNilReads {
		return nil, nil
	}
	return nil, ErrNotFound.F("key: %v", key)
}

// Set always fails, regardless of key and value.
func (v *View) Set(key, val any) error {
	return ErrReadOnly.F("key: %v", key)
}

// Len returns the number of entries of the underlying table.
func (v *View) Len() int { return len(v.data) }

// Unwrap returns the raw underlying table the view projects.
func (v *View) Unwrap() tablekit.Table { return v.data }

func (v *View) String() string {
	if v.conf.stringer != nil {
		return v.conf.stringer(v.data)
	}
	return fmt.Sprintf("readonly.View(%d)", len(v.data))
}
