package platform

import (
	"runtime"
	"strings"
	"testing"
)

func TestToken(t *testing.T) {
	token := Token()
	if token == "" {
		t.Fatal("token should never be empty")
	}
	if !strings.Contains(token, "-") {
		t.Errorf("token %q should contain an OS-arch separator", token)
	}
	if !strings.HasPrefix(token, OSFamily()+"-") {
		t.Errorf("token %q should start with OS family %q", token, OSFamily())
	}
	if !strings.HasSuffix(token, "-"+Arch()) {
		t.Errorf("token %q should end with architecture %q", token, Arch())
	}
}

func TestArchKnownNames(t *testing.T) {
	arch := Arch()
	if arch == "" {
		t.Fatal("arch should never be empty")
	}
	// amd64 and arm64 are the only architectures CI runs on; both have
	// packaging names that differ from the Go names.
	switch runtime.GOARCH {
	case "amd64":
		if arch != "x86_64" {
			t.Errorf("expected x86_64 for amd64, got %q", arch)
		}
	case "arm64":
		if arch != "aarch64" {
			t.Errorf("expected aarch64 for arm64, got %q", arch)
		}
	}
}

func TestMapLibraryName(t *testing.T) {
	got := MapLibraryName("foo")
	var want string
	switch runtime.GOOS {
	case "windows":
		want = "foo.dll"
	case "darwin":
		want = "libfoo.dylib"
	default:
		want = "libfoo.so"
	}
	if got != want {
		t.Errorf("MapLibraryName(foo) = %q, want %q", got, want)
	}
}
