//go:build windows

package loader

import (
	"fmt"
	"syscall"
)

func linkLibrary(path string) (uintptr, error) {
	handle, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("cannot load shared library %s: %w", path, err)
	}
	return uintptr(handle), nil
}
