package ptr

// Ptr returns a pointer to v. Useful for optional fields in filters and requests.
func Ptr[T any](v T) *T {
	return &v
}
