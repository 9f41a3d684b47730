package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Map converts an optional field, keeping nil as "not sent".
func Map[T, U any](ptr *T, f func(T) U) *U {
	if ptr == nil {
		return nil
	}
	v := f(*ptr)
	return &v
}
