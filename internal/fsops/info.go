package fsops

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"ducktyper/internal/errors"
)

// GetFileInfo gathers a metadata snapshot of path. A missing path is a
// successful result with Exists=false; only I/O failures while checking are
// reported as errors.
func (o *Operations) GetFileInfo(path PathInput) FileInfoResult {
	target := o.Resolve(path)

	linfo, err := o.fs.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return FileInfoResult{
				Outcome: succeeded(target, "path does not exist"),
				Exists:  false,
			}
		}
		return FileInfoResult{Outcome: failed(target, errors.FromOS("stat", target, err))}
	}

	isSymlink := linfo.Mode()&os.ModeSymlink != 0
	info := linfo
	if isSymlink {
		// Follow the link for size and times; a broken link falls back to
		// the link's own metadata.
		if followed, err := o.fs.Stat(target); err == nil {
			info = followed
		}
	}

	result := FileInfoResult{
		Outcome:     succeeded(target, fmt.Sprintf("stat %s", target)),
		Exists:      true,
		IsFile:      info.Mode().IsRegular(),
		IsDir:       info.IsDir(),
		IsSymlink:   isSymlink,
		Size:        info.Size(),
		Modified:    info.ModTime(),
		Permissions: info.Mode().Perm(),
	}

	// Owner and creation time are platform dependent and best effort.
	result.Owner = ownerName(info)
	result.Created = createdTime(info)

	if result.IsFile {
		if mt, err := mimetype.DetectFile(target); err == nil {
			result.MimeType = mt.String()
		}
	}
	return result
}
