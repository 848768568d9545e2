// Package utils holds small helpers shared across the CLI and services.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/term"
)

// Terminal utilities

// IsTerminal checks if the given file descriptor is a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// StdoutIsTerminal reports whether stdout is attached to a terminal. The
// CLI uses this to pick between text and JSON log output.
func StdoutIsTerminal() bool {
	return IsTerminal(int(os.Stdout.Fd()))
}

// Path utilities

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "ducktyper", "config.yaml"), nil
}

// Filename sanitization utilities

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	multipleUnderscores  = regexp.MustCompile(`_+`)
)

// SanitizeFilename removes or replaces invalid characters from filenames
func SanitizeFilename(filename string) string {
	sanitized := invalidFilenameChars.ReplaceAllString(filename, "_")
	sanitized = multipleUnderscores.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, "_")

	if sanitized == "" {
		sanitized = "unnamed"
	}
	return sanitized
}
