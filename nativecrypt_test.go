package nativecrypt

import (
	"sync"
	"testing"
)

// A source checkout embeds no native binaries, so the process-wide loader
// must settle on the pure-Go fallback without panicking or erroring.
func TestIsNativeLoadedNeverPanics(t *testing.T) {
	first := IsNativeLoaded()
	for i := 0; i < 10; i++ {
		if IsNativeLoaded() != first {
			t.Fatal("capability flag changed between calls")
		}
	}
}

func TestIsNativeLoadedConcurrent(t *testing.T) {
	first := IsNativeLoaded()

	var wg sync.WaitGroup
	results := make([]bool, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = IsNativeLoaded()
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != first {
			t.Fatalf("caller %d saw a different capability flag", i)
		}
	}
}

func TestNativeLibraryPathConsistent(t *testing.T) {
	if IsNativeLoaded() {
		if NativeLibraryPath() == "" {
			t.Error("loaded but no library path")
		}
	} else if NativeLibraryPath() != "" {
		t.Errorf("not loaded but library path is %q", NativeLibraryPath())
	}
}

func TestNativeVersionFromPackagedMetadata(t *testing.T) {
	// META/metadata.toml is committed, so the version resolves even when
	// no native binary is embedded.
	if got := NativeVersion(); got != "1.2.0" {
		t.Errorf("NativeVersion = %q, want 1.2.0", got)
	}
}

func TestCleanupSafeWithoutExtraction(t *testing.T) {
	Cleanup()
	Cleanup()
}
