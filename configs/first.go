package configs

import (
	"errors"
	"fmt"
)

// First returns the value at path from the first config file defining it,
// or the zero value if none does. Invalid config files panic, since the
// providers using First cannot return errors.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	switch {
	case err == nil:
		return ret
	case errors.Is(err, ErrValueNotFound):
		var zero T
		return zero
	}
	panic(fmt.Errorf("config %s: %w", path, err))
}
