//go:build !linux

package fsops

import (
	"os"
	"time"
)

// ownerName is unavailable on platforms without a passwd-style lookup; the
// absence is not an error.
func ownerName(os.FileInfo) string {
	return ""
}

func createdTime(os.FileInfo) time.Time {
	return time.Time{}
}
