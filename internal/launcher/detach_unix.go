//go:build !windows

// /internal/launcher/detach_unix.go
package launcher

import (
	"os/exec"
	"syscall"
)

// detach puts the game in its own session so closing the launcher's
// terminal does not take the game down with it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
