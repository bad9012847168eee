package loader

import (
	"os"
	"sync"
)

// cleanupRegistry tracks extracted library files for best-effort deletion
// when the host process shuts down. Files are never deleted mid-run; the
// dynamic linker may still have them mapped.
type cleanupRegistry struct {
	mu    sync.Mutex
	paths []string
}

var extractedFiles cleanupRegistry

func (r *cleanupRegistry) add(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *cleanupRegistry) removeAll() {
	r.mu.Lock()
	paths := r.paths
	r.paths = nil
	r.mu.Unlock()

	for _, p := range paths {
		// Best effort: a mapped or already-removed file is fine to skip.
		_ = os.Remove(p)
	}
}

// removeAtCleanup registers a path for deletion by Cleanup.
func removeAtCleanup(path string) {
	extractedFiles.add(path)
}

// Cleanup deletes every extracted library file registered so far, best
// effort. Hosts should call it once on shutdown; Go has no process-exit
// hook, so deferred deletion is the caller's responsibility.
func Cleanup() {
	extractedFiles.removeAll()
}
