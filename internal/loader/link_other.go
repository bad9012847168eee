//go:build !darwin && !freebsd && !linux && !windows

package loader

import "fmt"

func linkLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("dynamic linking is not supported on this platform (wanted %s)", path)
}
