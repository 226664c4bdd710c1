package diriter

import (
	"os"
	"time"
)

// stamp is a directory's change signature: its cached children stay valid
// while the stamp is unchanged.
type stamp struct {
	modified time.Time
	changed  time.Time
}

func stampOf(info os.FileInfo) stamp {
	return stamp{
		modified: info.ModTime(),
		changed:  changeTime(info),
	}
}

func (s stamp) equal(other stamp) bool {
	return s.modified.Equal(other.modified) && s.changed.Equal(other.changed)
}
