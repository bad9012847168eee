// Package resources holds the files packaged into the nativecrypt binary:
// the pre-built native libraries under native/<platform-token>/ and the
// release metadata under META/. The build pipeline drops the compiled
// libraries into native/ before release builds; a source checkout contains
// only the metadata.
package resources

import "embed"

//go:embed all:native all:META
var FS embed.FS
