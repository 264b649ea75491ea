// Package spawn starts the instance executable as a detached process.
// The launcher's responsibility ends once the OS confirms the process
// image has begun executing; it never waits for the instance to exit
// and never inherits its console.
package spawn

import (
	"os/exec"

	"github.com/inkwell-app/inkwell-launch/internal/domain"
)

// Start launches path with argv = [path] ++ args. All three standard
// streams are discarded and the child runs in its own session, so the
// launcher can exit immediately without tearing the instance down.
// Failure to start is SpawnFailed and is never retried.
func Start(path string, args []string) error {
	cmd := exec.Command(path, args...)

	// Leaving the std streams nil connects them to the null device;
	// the instance must not write through the launcher's terminal.
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		return domain.Wrap(domain.KindSpawnFailed, err)
	}

	// Drop the handle so no zombie bookkeeping outlives this process.
	if err := cmd.Process.Release(); err != nil {
		return domain.Wrap(domain.KindSpawnFailed, err)
	}
	return nil
}
