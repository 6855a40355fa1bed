package liquid

// FilterFunc transforms a value during output rendering. args are the
// evaluated arguments written after the filter name (`x | f: a, b`).
type FilterFunc func(input Value, args []Value) (Value, error)

// builtinFilters returns the filters every render context starts with
func builtinFilters() map[string]FilterFunc {
	return map[string]FilterFunc{
		FilterNameSize: filterSize,
	}
}

// filterSize returns the element count of an Array or Object, or the
// character count of a String.
func filterSize(input Value, _ []Value) (Value, error) {
	n, ok := input.Len()
	if !ok {
		return Value{}, NewFilterTypeMismatchError(FilterNameSize, KindNameArray, input.Kind().String())
	}
	return NewNumber(float64(n)), nil
}
