//go:build unix

package termhost

import "golang.org/x/sys/unix"

// TerminalSize returns the column and row count of the terminal on fd.
func TerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
