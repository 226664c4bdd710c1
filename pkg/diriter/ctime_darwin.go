//go:build darwin

package diriter

import (
	"os"
	"syscall"
	"time"
)

// changeTime returns the inode change time, or the zero time when the
// FileInfo carries no platform stat data (remote or in-memory filesystems).
func changeTime(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}
	}

	return time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
}
