//go:build darwin || freebsd || linux

package loader

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// linkLibrary loads the shared library at path into the process and returns
// its handle. Symbols are bound eagerly so ABI mismatches surface here
// rather than on first call.
func linkLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("cannot load shared library %s: %w", path, err)
	}
	if handle == 0 {
		return 0, fmt.Errorf("shared library handle is nil after loading %s", path)
	}
	return handle, nil
}
