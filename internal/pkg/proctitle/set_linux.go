//go:build linux

package proctitle

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Set renames the calling thread via PR_SET_NAME.
func Set(title string) error {
	name := normalize(title)
	if name == "" {
		return errors.New("proctitle: empty title")
	}
	buf := make([]byte, maxName+1)
	copy(buf, name)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
}
