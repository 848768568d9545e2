package fsops

import (
	"path/filepath"
	"strings"
)

// PathInput identifies a filesystem location. It is a closed set: plain Path
// literals and the results of previous operations (which point at the path
// they acted on). Inputs are resolved against the base directory exactly
// once, at the operation boundary.
type PathInput interface {
	pathRef() string
}

// Path is a literal path, relative to the base directory unless absolute.
type Path string

func (p Path) pathRef() string {
	return string(p)
}

// resolve turns a PathInput into an absolute cleaned path. Absolute inputs
// pass through unchanged; relative inputs are joined to the base directory.
func resolve(baseDir string, in PathInput) string {
	p := strings.TrimSpace(in.pathRef())
	if p == "" {
		return filepath.Clean(baseDir)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
