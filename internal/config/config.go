// Package config reads the process-wide settings controlling native library
// resolution. Settings come from environment variables with the NATIVECRYPT
// prefix and are read once at load time.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "NATIVECRYPT"

// Recognized keys. With the env prefix and key replacer these resolve to
// NATIVECRYPT_LIB_PATH, NATIVECRYPT_LIB_NAME and NATIVECRYPT_LIB_TEMPDIR.
const (
	KeyLibPath    = "lib.path"
	KeyLibName    = "lib.name"
	KeyLibTempDir = "lib.tempdir"
)

// Config holds the resolved native-library settings.
type Config struct {
	// LibPath is a directory searched for the library before any embedded
	// resource is consulted. Empty means no disk search.
	LibPath string

	// LibName is an exact file name to use, bypassing platform naming
	// conventions. Empty means derive the name from the platform.
	LibName string

	// LibTempDir is the directory extracted libraries are written to.
	// Defaults to the system temporary directory.
	LibTempDir string
}

// Load reads the recognized keys from the environment. Absent keys fall back
// to their documented defaults; Load itself never fails.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		LibPath:    v.GetString(KeyLibPath),
		LibName:    v.GetString(KeyLibName),
		LibTempDir: v.GetString(KeyLibTempDir),
	}
	if cfg.LibTempDir == "" {
		cfg.LibTempDir = os.TempDir()
	}
	return cfg
}
