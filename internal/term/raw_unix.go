//go:build linux || darwin

package term

import "golang.org/x/sys/unix"

// enterRawMode disables canonical processing and echo on fd, leaving signal
// generation intact, and returns a function that restores the captured
// attributes.
func enterRawMode(fd int) (func() error, error) {
	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}

	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}

	return func() error {
		return unix.IoctlSetTermios(fd, ioctlWriteTermios, saved)
	}, nil
}
