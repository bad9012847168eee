package loader

import (
	"testing"
	"testing/fstest"
)

func TestResolveVersionFromMetadata(t *testing.T) {
	res := fstest.MapFS{
		"META/metadata.toml": {Data: []byte("version = \"1.2.0\"\n")},
	}
	if got := resolveVersion(res); got != "1.2.0" {
		t.Errorf("resolveVersion = %q, want 1.2.0", got)
	}
}

func TestResolveVersionNormalizesSnapshot(t *testing.T) {
	res := fstest.MapFS{
		"META/metadata.toml": {Data: []byte("version = \"1.2.0-SNAPSHOT\"\n")},
	}
	if got := resolveVersion(res); got != "1.2.0" {
		t.Errorf("resolveVersion = %q, want 1.2.0", got)
	}
}

func TestResolveVersionFallsBackToMarker(t *testing.T) {
	res := fstest.MapFS{
		"META/VERSION": {Data: []byte("2.0.0M1\nignored second line\n")},
	}
	if got := resolveVersion(res); got != "2.0.0M1" {
		t.Errorf("resolveVersion = %q, want 2.0.0M1", got)
	}
}

func TestResolveVersionMetadataWinsOverMarker(t *testing.T) {
	res := fstest.MapFS{
		"META/metadata.toml": {Data: []byte("version = \"3.1.4\"\n")},
		"META/VERSION":       {Data: []byte("9.9.9\n")},
	}
	if got := resolveVersion(res); got != "3.1.4" {
		t.Errorf("resolveVersion = %q, want 3.1.4", got)
	}
}

func TestResolveVersionAbsentSources(t *testing.T) {
	if got := resolveVersion(fstest.MapFS{}); got != "unknown" {
		t.Errorf("resolveVersion = %q, want unknown", got)
	}
}

func TestResolveVersionMalformedMetadata(t *testing.T) {
	res := fstest.MapFS{
		"META/metadata.toml": {Data: []byte("version = \n not toml at all")},
		"META/VERSION":       {Data: []byte("5.0.1")},
	}
	if got := resolveVersion(res); got != "5.0.1" {
		t.Errorf("malformed metadata should fall back to marker, got %q", got)
	}
}

func TestResolveVersionNothingUsableAfterNormalization(t *testing.T) {
	res := fstest.MapFS{
		"META/metadata.toml": {Data: []byte("version = \"beta\"\n")},
	}
	if got := resolveVersion(res); got != "unknown" {
		t.Errorf("fully stripped version should degrade to unknown, got %q", got)
	}
}

func TestNormalizeVersion(t *testing.T) {
	cases := map[string]string{
		"1.2.0-SNAPSHOT": "1.2.0",
		"1.2.0":          "1.2.0",
		" 2.0.0M1 ":      "2.0.0M1",
		"v3.4.5":         "3.4.5",
		"beta":           "",
	}
	for in, want := range cases {
		if got := normalizeVersion(in); got != want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", in, got, want)
		}
	}
}
