// Package proctitle names the running process so that ps and top show the
// service instead of the binary path.
package proctitle

import "strings"

// maxName is the kernel limit for a thread name, excluding the NUL byte.
const maxName = 15

// normalize trims title and cuts it to the kernel limit on a byte boundary
// that keeps it valid UTF-8.
func normalize(title string) string {
	title = strings.TrimSpace(title)
	if len(title) <= maxName {
		return title
	}
	cut := maxName
	for cut > 0 && !startsRune(title[cut]) {
		cut--
	}
	return title[:cut]
}

func startsRune(b byte) bool { return b&0xC0 != 0x80 }
