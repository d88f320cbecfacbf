package vars

// FirstNonZero picks the first value that is set, in precedence order such
// as flag, config file, default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
