package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nativecrypt/nativecrypt/internal/config"
	"github.com/nativecrypt/nativecrypt/internal/loader"
	"github.com/nativecrypt/nativecrypt/internal/platform"
	"github.com/nativecrypt/nativecrypt/internal/resources"
)

func main() {
	var libPath string
	var libName string
	var tempDir string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "nativecrypt",
		Short: "Probe native crypto library resolution for this platform",
		Long: `nativecrypt resolves the platform's native crypto library the same way
the library does at runtime: an explicit filesystem path is searched first,
then the embedded resource tree, and the result is extracted and dynamically
linked. The probe prints each resolution step so packaging problems can be
diagnosed without running a host application.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(libPath, libName, tempDir, verbose)
		},
	}

	rootCmd.Flags().StringVar(&libPath, "lib-path", "", "Directory searched for the library before embedded resources")
	rootCmd.Flags().StringVar(&libName, "lib-name", "", "Exact library file name, bypassing platform conventions")
	rootCmd.Flags().StringVar(&tempDir, "temp-dir", "", "Directory extracted libraries are written to")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log every resolution step")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(libPath, libName, tempDir string, verbose bool) error {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	// Flags win over the environment-backed configuration.
	cfg := config.Load()
	if libPath == "" {
		libPath = cfg.LibPath
	}
	if libName == "" {
		libName = cfg.LibName
	}
	if tempDir == "" {
		tempDir = cfg.LibTempDir
	}

	fmt.Printf("os:       %s\n", platform.OSFamily())
	fmt.Printf("arch:     %s\n", platform.Arch())
	fmt.Printf("token:    %s\n", platform.Token())
	fmt.Printf("name:     %s\n", resolvedName(libName))
	fmt.Printf("lib path: %s\n", orNone(libPath))
	fmt.Printf("temp dir: %s\n", tempDir)

	l := loader.New(loader.Options{
		Resources: resources.FS,
		LibDir:    libPath,
		LibName:   libName,
		TempDir:   tempDir,
		Log:       logrus.NewEntry(log),
	})
	defer loader.Cleanup()

	fmt.Printf("version:  %s\n", l.Version())
	if l.Loaded() {
		fmt.Printf("loaded:   true (%s)\n", l.LibraryPath())
	} else {
		fmt.Println("loaded:   false (pure-Go fallback would be used)")
	}
	return nil
}

func resolvedName(override string) string {
	if override != "" {
		return override
	}
	return platform.MapLibraryName(loader.DefaultLogicalName)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
