package liquid

import (
	"sort"
	"strings"
)

// PathSeparator separates segments of a dotted variable path
const PathSeparator = "."

// Context holds the variables and filters a template renders against.
// A Context is single-owner: do not share one between concurrent renders.
// It may be reused across renders.
type Context struct {
	vars     map[string]Value
	filters  map[string]FilterFunc
	builtins bool // Built-in filters installed
	depth    int  // Current template render depth
}

// NewContext creates an empty context
func NewContext() *Context {
	return &Context{
		vars:    make(map[string]Value),
		filters: make(map[string]FilterFunc),
	}
}

// NewContextFromMap creates a context holding converted copies of data
func NewContextFromMap(data map[string]any) (*Context, error) {
	ctx := NewContext()
	for name, v := range data {
		if err := ctx.SetAny(name, v); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// Set binds name to a copy of v
func (c *Context) Set(name string, v Value) {
	c.vars[name] = v.Clone()
}

// SetAny converts v with FromAny and binds it to name
func (c *Context) SetAny(name string, v any) error {
	value, err := FromAny(v)
	if err != nil {
		return err
	}
	c.vars[name] = value
	return nil
}

// Get returns the value bound to name. Lookups never create variables.
func (c *Context) Get(name string) (Value, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Has reports whether name is bound
func (c *Context) Has(name string) bool {
	_, ok := c.vars[name]
	return ok
}

// Delete removes the binding for name
func (c *Context) Delete(name string) {
	delete(c.vars, name)
}

// Keys returns the bound variable names in sorted order
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.vars))
	for k := range c.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup resolves a dotted path such as "user.name" or "items.first".
// A missing variable or member is an undefined_variable error; stepping
// into a number, string or boolean is a type_mismatch error.
func (c *Context) Lookup(path string) (Value, error) {
	parts := strings.Split(path, PathSeparator)
	current, ok := c.vars[parts[0]]
	if !ok {
		return Value{}, NewUndefinedVariableError(path)
	}

	for _, part := range parts[1:] {
		next, ok := current.Field(part)
		if ok {
			current = next
			continue
		}
		if k := current.Kind(); k == KindObject || k == KindArray {
			return Value{}, NewUndefinedVariableError(path)
		}
		return Value{}, NewTypeMismatchError(path, KindNameObject, current.Kind().String())
	}
	return current, nil
}

// SetFilter registers a filter; an existing filter with the same name is replaced
func (c *Context) SetFilter(name string, fn FilterFunc) {
	c.filters[name] = fn
}

// Filter returns the filter registered under name
func (c *Context) Filter(name string) (FilterFunc, bool) {
	fn, ok := c.filters[name]
	return fn, ok
}

// FilterNames returns the registered filter names in sorted order
func (c *Context) FilterNames() []string {
	names := make([]string, 0, len(c.filters))
	for name := range c.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// installBuiltinFilters adds the built-in filters once, keeping any filter
// the caller registered under the same name.
func (c *Context) installBuiltinFilters() {
	if c.builtins {
		return
	}
	for name, fn := range builtinFilters() {
		if _, exists := c.filters[name]; !exists {
			c.filters[name] = fn
		}
	}
	c.builtins = true
}
