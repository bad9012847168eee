package loader

import (
	"bufio"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	// metadataResource is the primary version source: release metadata
	// packaged with the distribution.
	metadataResource = "META/metadata.toml"

	// versionMarkerResource is the secondary source: a plain-text marker
	// whose first line is the version.
	versionMarkerResource = "META/VERSION"

	// unknownVersion is returned when neither source yields a usable value.
	unknownVersion = "unknown"
)

type releaseMetadata struct {
	Version string `toml:"version"`
}

// resolveVersion derives the version string embedded in extracted library
// file names. It never fails: unreadable or absent metadata degrades to
// "unknown".
func resolveVersion(res fs.FS) string {
	if raw, ok := metadataVersion(res); ok {
		if v := normalizeVersion(raw); v != "" {
			return v
		}
	}
	if raw, ok := markerVersion(res); ok {
		if v := normalizeVersion(raw); v != "" {
			return v
		}
	}
	return unknownVersion
}

func metadataVersion(res fs.FS) (string, bool) {
	data, err := fs.ReadFile(res, metadataResource)
	if err != nil {
		return "", false
	}
	var meta releaseMetadata
	if err := toml.Unmarshal(data, &meta); err != nil {
		return "", false
	}
	return meta.Version, meta.Version != ""
}

func markerVersion(res fs.FS) (string, bool) {
	f, err := res.Open(versionMarkerResource)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", false
	}
	line := strings.TrimSpace(scanner.Text())
	return line, line != ""
}

// normalizeVersion strips every rune except digits, 'M' and '.' so the
// version is safe to embed in a file name ("1.2.0-SNAPSHOT" becomes "1.2.0").
func normalizeVersion(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if (r >= '0' && r <= '9') || r == 'M' || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
