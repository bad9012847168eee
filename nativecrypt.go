// Package nativecrypt exposes whether the platform's native crypto library
// was loaded into the process. The library is resolved once, from an
// explicit filesystem path or the embedded resource tree, extracted to a
// temporary file and dynamically linked. Every failure along the way is
// absorbed: callers only ever see a capability flag and pick the
// native-accelerated or pure-Go code path from it.
package nativecrypt

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nativecrypt/nativecrypt/internal/config"
	"github.com/nativecrypt/nativecrypt/internal/loader"
	"github.com/nativecrypt/nativecrypt/internal/resources"
)

var (
	initOnce      sync.Once
	processLoader *loader.Loader
)

func processLoad() *loader.Loader {
	initOnce.Do(func() {
		cfg := config.Load()
		processLoader = loader.New(loader.Options{
			Resources: resources.FS,
			LibDir:    cfg.LibPath,
			LibName:   cfg.LibName,
			TempDir:   cfg.LibTempDir,
			Log:       logrus.WithField("component", "nativecrypt"),
		})
	})
	return processLoader
}

// IsNativeLoaded reports whether the native library is linked into this
// process. The first call runs the load protocol; concurrent callers block
// until it finishes and every later call is a lock-free read. The answer
// never changes for the process lifetime.
func IsNativeLoaded() bool {
	return processLoad().Loaded()
}

// NativeLibraryPath returns the path of the linked library, or "" when
// native acceleration is unavailable.
func NativeLibraryPath() string {
	return processLoad().LibraryPath()
}

// NativeVersion returns the packaged native library version, or "unknown".
func NativeVersion() string {
	return processLoad().Version()
}

// Cleanup deletes extracted library files, best effort. Call it once when
// the host process is shutting down.
func Cleanup() {
	loader.Cleanup()
}
