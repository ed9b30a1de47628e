//go:build !unix && !windows

package termhost

import "errors"

// TerminalSize is unsupported on this platform.
func TerminalSize(fd int) (width, height int, err error) {
	return 0, 0, errors.New("termhost: terminal size unsupported")
}
