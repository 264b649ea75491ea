// Package invocation resolves the environment-derived state for one
// launcher run: where the instance's socket lives, where the instance
// binary lives, and the argument vector to hand over. Resolution reads
// process state and environment only; it never writes anything.
package invocation

import (
	"path/filepath"
)

// Fixed per-application names. The socket lives under the user cache
// directory so it survives neither reboots nor cache cleanup, which is
// exactly the lifetime a liveness marker should have.
const (
	appName      = "inkwell"
	socketName   = "inkwell.sock"
	instanceName = "inkwell"
)

// Context is the immutable snapshot owned by the coordinator for the
// duration of one invocation.
type Context struct {
	socketPath   string
	instancePath string
	args         []string
}

// NewContext builds a Context from already-resolved values. The
// argument vector is copied so later mutation of the caller's slice
// cannot reach the snapshot.
func NewContext(socketPath, instancePath string, args []string) Context {
	return Context{
		socketPath:   socketPath,
		instancePath: instancePath,
		args:         append([]string(nil), args...),
	}
}

// SocketPath is the channel address of the running instance, if any.
func (c Context) SocketPath() string { return c.socketPath }

// InstancePath is the executable to spawn when no instance is running.
func (c Context) InstancePath() string { return c.instancePath }

// Args returns a copy of the argument vector, program name excluded,
// order and byte content preserved.
func (c Context) Args() []string {
	return append([]string(nil), c.args...)
}

// Resolve computes the invocation context from the launcher's own
// executable path, the OS identity, an environment lookup, and the raw
// argument vector (program name already stripped). Arguments are
// copied verbatim: no re-splitting, no trimming.
func Resolve(execPath, goos string, getenv func(string) string, args []string) (Context, error) {
	cache, err := cacheDir(goos, getenv)
	if err != nil {
		return Context{}, err
	}

	socket := filepath.Join(cache, appName, socketName)

	instance := filepath.Join(filepath.Dir(execPath), instanceName)
	if goos == "windows" {
		instance += ".exe"
	}

	return NewContext(socket, instance, args), nil
}
