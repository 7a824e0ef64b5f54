package logger

import "os"

// isTerminal reports whether fd refers to a character device, which is the
// portable signal that it is a terminal rather than a file or pipe.
func isTerminal(fd uintptr) bool {
	info, err := os.NewFile(fd, "").Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
