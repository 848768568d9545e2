//go:build linux

package fsops

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
	"time"
)

// ownerName resolves the Unix owner of a file, falling back to the numeric
// uid when the passwd lookup fails.
func ownerName(info os.FileInfo) string {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return ""
	}
	uid := strconv.FormatUint(uint64(st.Uid), 10)
	if u, err := user.LookupId(uid); err == nil {
		return u.Username
	}
	return uid
}

// createdTime returns the inode change time, the closest thing Linux has to
// a creation timestamp.
func createdTime(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}
	}
	return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
}
