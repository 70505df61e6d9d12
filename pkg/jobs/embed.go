package jobs

import (
	"embed"
	"io/fs"
)

//go:embed defaults/jobs.yaml defaults/templates/*.tpl
var embeddedDefaults embed.FS

// DefaultManifest is the manifest file name inside EmbeddedFS.
const DefaultManifest = "jobs.yaml"

// EmbeddedFS returns the bundled manifest and templates.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// LoadDefault parses the bundled manifest.
func LoadDefault() (*Manifest, error) {
	return LoadFS(EmbeddedFS(), DefaultManifest)
}
