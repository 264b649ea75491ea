//go:build windows

package spawn

import "syscall"

// detachedProcess is the CreationFlags bit that starts the child
// without a console; syscall does not name it.
const detachedProcess = 0x00000008

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | detachedProcess,
	}
}
