package ptr

// Ptr returns a pointer to v. Useful for building optional filter fields inline.
func Ptr[T any](v T) *T {
	return &v
}
