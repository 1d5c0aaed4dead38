// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"os"
	"syscall"
	"unsafe"

	"github.com/pkg/term/termios"
)

// winsize mirrors struct winsize from <sys/ioctl.h>, used with TIOCGWINSZ
// to query the controlling terminal's column count for the headless
// status line (spec §6.4: "no user-facing CLI flags at the core level" —
// this lives in the host driver, not core).
type winsize struct {
	rows, cols, xPixel, yPixel uint16
}

// terminalWidth reports the output terminal's column count, falling back
// to 80 when stdout isn't a terminal (piped output, CI logs).
func terminalWidth() int {
	ws := winsize{}
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, os.Stdout.Fd(), syscall.TIOCGWINSZ, uintptr(unsafe.Pointer(&ws)))
	if errno != 0 || ws.cols == 0 {
		return 80
	}
	return int(ws.cols)
}

// withRawStdin puts stdin into raw mode (no line buffering, no echo) for
// the duration of fn, using pkg/term/termios directly the way the
// teacher's easyterm package does (spec DOMAIN STACK: pkg/term).
// Restoring the saved attributes on return keeps a crashed headless
// driver from leaving the operator's shell in raw mode.
func withRawStdin(fn func()) error {
	var saved, raw syscall.Termios
	if err := termios.Tcgetattr(os.Stdin.Fd(), &saved); err != nil {
		return err
	}
	defer termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &saved)

	raw = saved
	termios.Cfmakeraw(&raw)
	if err := termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &raw); err != nil {
		return err
	}

	fn()
	return nil
}
