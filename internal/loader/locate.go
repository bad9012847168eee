package loader

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nativecrypt/nativecrypt/internal/platform"
)

// nativePrefix is the root of the embedded native library tree.
const nativePrefix = "native"

// altExtension is the alternate library extension tried on macOS when the
// conventional name is not packaged. A single-OS special case inherited from
// the packaging pipeline; broader coverage would need a per-platform table.
const altExtension = ".jnilib"

// LocateKind discriminates the variants of a LocateResult.
type LocateKind int

const (
	// NotFound means no library exists for the platform on disk or embedded.
	NotFound LocateKind = iota
	// FoundOnDisk means the explicit path override contains the library.
	FoundOnDisk
	// FoundEmbedded means the conventional name exists in the embedded tree.
	FoundEmbedded
	// FoundEmbeddedAlt means only the macOS alternate-extension name exists.
	FoundEmbeddedAlt
)

// LocateResult describes where a native library was found.
type LocateResult struct {
	Kind LocateKind

	// DiskPath is the full filesystem path (FoundOnDisk only).
	DiskPath string

	// ResourcePath is the embedded resource path (embedded variants only).
	ResourcePath string

	// FileName is the file name actually resolved; differs from the
	// requested name when the alternate extension matched.
	FileName string
}

// resolveName returns the library file name to search for: the explicit
// override verbatim when set, else the platform-conventional mapping of the
// logical name.
func resolveName(override, logical string) string {
	if override != "" {
		return override
	}
	return platform.MapLibraryName(logical)
}

// locate searches for the native library in fixed priority order: the
// explicit directory on disk, then the embedded resource tree for the given
// platform token, then (macOS only) the alternate-extension name at the same
// embedded prefix. The disk override wins unconditionally when both exist.
func locate(res fs.FS, explicitDir, name, token, osFamily string) LocateResult {
	if explicitDir != "" {
		diskPath := filepath.Join(explicitDir, name)
		if info, err := os.Stat(diskPath); err == nil && info.Mode().IsRegular() {
			return LocateResult{Kind: FoundOnDisk, DiskPath: diskPath, FileName: name}
		}
	}

	resourcePath := path.Join(nativePrefix, token, name)
	if hasResource(res, resourcePath) {
		return LocateResult{Kind: FoundEmbedded, ResourcePath: resourcePath, FileName: name}
	}

	if osFamily == "darwin" {
		altName := altLibraryName(name)
		altPath := path.Join(nativePrefix, token, altName)
		if hasResource(res, altPath) {
			return LocateResult{Kind: FoundEmbeddedAlt, ResourcePath: altPath, FileName: altName}
		}
	}

	return LocateResult{Kind: NotFound}
}

// altLibraryName swaps the file extension for the macOS alternate.
func altLibraryName(name string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + altExtension
}

// hasResource reports whether the embedded tree contains a regular file at
// the given path.
func hasResource(res fs.FS, p string) bool {
	info, err := fs.Stat(res, p)
	return err == nil && info.Mode().IsRegular()
}
