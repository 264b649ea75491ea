//go:build !windows

package spawn

import "syscall"

// sysProcAttr detaches the child into its own session so it has no
// controlling terminal and outlives the launcher.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
