//go:build linux || darwin

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

func diskUsage(path string) (DiskUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskUsage{}, err
	}
	bsize := uint64(st.Bsize)
	usage := DiskUsage{
		Total:     st.Blocks * bsize,
		Free:      st.Bfree * bsize,
		Available: st.Bavail * bsize,
	}
	usage.Used = usage.Total - usage.Free
	return usage, nil
}

func accessWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// probeLock attempts a non-blocking exclusive flock; EWOULDBLOCK means some
// other process holds the lock.
func probeLock(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	err = unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err == unix.EWOULDBLOCK || err == unix.EAGAIN {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return false, nil
}
