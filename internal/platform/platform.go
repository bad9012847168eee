// Package platform resolves the running OS and CPU architecture into the
// canonical token used to locate the matching pre-built native library,
// and applies platform naming conventions to logical library names.
package platform

import (
	"fmt"
	"runtime"
)

// archNames maps Go architecture names to the names used when the native
// binaries were packaged.
var archNames = map[string]string{
	"amd64":   "x86_64",
	"386":     "x86",
	"arm64":   "aarch64",
	"arm":     "arm",
	"ppc64":   "ppc64",
	"ppc64le": "ppc64le",
	"s390x":   "s390x",
	"riscv64": "riscv64",
}

// OSFamily returns the OS component of the platform token (e.g. "linux",
// "darwin", "windows"). Unknown systems return runtime.GOOS as-is.
func OSFamily() string {
	return runtime.GOOS
}

// Arch returns the architecture component of the platform token
// (e.g. "x86_64", "aarch64"). Unknown architectures return runtime.GOARCH.
func Arch() string {
	if name, ok := archNames[runtime.GOARCH]; ok {
		return name
	}
	return runtime.GOARCH
}

// Token returns the folder-path token identifying the current platform,
// e.g. "linux-x86_64". It must match the layout used when the native
// binaries were packaged.
func Token() string {
	return fmt.Sprintf("%s-%s", OSFamily(), Arch())
}

// IsDarwin reports whether the current OS is macOS.
func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

// MapLibraryName converts a logical library name into the platform-conventional
// file name: lib<name>.so on Unix-like systems, lib<name>.dylib on macOS,
// <name>.dll on Windows.
func MapLibraryName(name string) string {
	switch runtime.GOOS {
	case "windows":
		return name + ".dll"
	case "darwin":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}
