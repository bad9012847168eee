// Package loader resolves, extracts and dynamically links the platform's
// pre-built native library. Loading is attempted exactly once per Loader;
// every failure is absorbed into a permanent not-loaded state so the host
// can fall back to its pure-Go implementation instead of crashing.
package loader

import (
	"io/fs"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nativecrypt/nativecrypt/internal/platform"
)

// DefaultLogicalName is the logical library identifier mapped to the
// platform-conventional file name (libnativecrypt.so, nativecrypt.dll, ...).
const DefaultLogicalName = "nativecrypt"

// Options configures a Loader. The zero value of every field has a working
// default.
type Options struct {
	// Resources is the embedded tree searched for pre-built libraries.
	Resources fs.FS

	// LibDir is an explicit directory searched on disk before Resources.
	LibDir string

	// LibName overrides the platform-conventional library file name.
	LibName string

	// TempDir is where embedded libraries are extracted. Defaults to the
	// system temporary directory.
	TempDir string

	// LogicalName is the library identifier; defaults to DefaultLogicalName.
	LogicalName string

	// Link loads a shared library from a filesystem path. Defaults to the
	// platform dynamic linker; tests substitute a fake.
	Link func(path string) (uintptr, error)

	// Log receives diagnostics for absorbed failures.
	Log *logrus.Entry
}

// Loader runs the native library load protocol once and remembers the
// outcome for the process lifetime.
type Loader struct {
	opts Options

	once    sync.Once
	loaded  bool
	handle  uintptr
	libPath string
	version string
}

// New returns a Loader with defaults applied. Nothing is resolved until the
// first call to Loaded.
func New(opts Options) *Loader {
	if opts.Resources == nil {
		opts.Resources = emptyFS{}
	}
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}
	if opts.LogicalName == "" {
		opts.LogicalName = DefaultLogicalName
	}
	if opts.Link == nil {
		opts.Link = linkLibrary
	}
	if opts.Log == nil {
		opts.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Loader{opts: opts}
}

// Loaded reports whether the native library is linked into the process.
// The first caller runs the load attempt; concurrent callers block until it
// finishes, after which reads are lock-free. The outcome never changes.
func (l *Loader) Loaded() bool {
	l.once.Do(l.attempt)
	return l.loaded
}

// LibraryPath returns the path that was dynamically linked, or "" when the
// native library is not loaded.
func (l *Loader) LibraryPath() string {
	l.once.Do(l.attempt)
	return l.libPath
}

// Version returns the packaged version string used in extracted file names,
// or "unknown".
func (l *Loader) Version() string {
	l.once.Do(l.attempt)
	if l.version == "" {
		return unknownVersion
	}
	return l.version
}

// emptyFS stands in when no embedded resource tree is supplied.
type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// attempt runs the full resolution protocol. It never lets an error or
// panic escape; any failure leaves the loader permanently not loaded.
func (l *Loader) attempt() {
	defer func() {
		if r := recover(); r != nil {
			l.loaded = false
			l.opts.Log.WithField("panic", r).Warn("native library load panicked; using pure-Go fallback")
		}
	}()

	name := resolveName(l.opts.LibName, l.opts.LogicalName)
	token := platform.Token()
	l.version = resolveVersion(l.opts.Resources)

	result := locate(l.opts.Resources, l.opts.LibDir, name, token, platform.OSFamily())

	var libPath string
	switch result.Kind {
	case NotFound:
		l.opts.Log.WithFields(logrus.Fields{
			"os":   platform.OSFamily(),
			"arch": platform.Arch(),
			"name": name,
		}).Warn("no native library found; using pure-Go fallback")
		return

	case FoundOnDisk:
		libPath = result.DiskPath

	case FoundEmbedded, FoundEmbeddedAlt:
		extracted, err := extract(l.opts.Resources, result.ResourcePath, result.FileName,
			l.opts.TempDir, l.opts.LogicalName, l.version)
		if err != nil {
			l.opts.Log.WithError(err).WithField("resource", result.ResourcePath).
				Warn("cannot extract native library; using pure-Go fallback")
			return
		}
		libPath = extracted
	}

	handle, err := l.opts.Link(libPath)
	if err != nil {
		l.opts.Log.WithError(err).WithField("path", libPath).
			Warn("cannot link native library; using pure-Go fallback")
		return
	}

	l.handle = handle
	l.libPath = libPath
	l.loaded = true
	l.opts.Log.WithField("path", libPath).Debug("native library loaded")
}
