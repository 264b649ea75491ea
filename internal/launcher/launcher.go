// Package launcher makes the connect-or-spawn decision for one
// invocation: if an instance is listening on the socket, hand it the
// argument vector over the four-message handshake; otherwise start a
// fresh instance carrying the same vector.
package launcher

import (
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-app/inkwell-launch/internal/cliconfig"
	"github.com/inkwell-app/inkwell-launch/internal/handshake"
	"github.com/inkwell-app/inkwell-launch/internal/invocation"
	"github.com/inkwell-app/inkwell-launch/internal/readiness"
	"github.com/inkwell-app/inkwell-launch/internal/spawn"
)

// Outcome reports which of the two paths an invocation took.
type Outcome int

const (
	// OutcomeForwarded means a running instance accepted the argument
	// vector over the handshake.
	OutcomeForwarded Outcome = iota

	// OutcomeSpawned means no instance was reachable and a fresh one
	// was started with the argument vector on its command line.
	OutcomeSpawned
)

// Coordinator owns one invocation's connect-or-spawn decision.
type Coordinator struct {
	cfg cliconfig.Config
	log zerolog.Logger
}

// New creates a Coordinator with the given configuration and logger.
func New(cfg cliconfig.Config, log zerolog.Logger) *Coordinator {
	return &Coordinator{cfg: cfg, log: log}
}

// Run executes the invocation to its single terminal outcome.
//
// The connect attempt is deliberately cause-blind: no listener, a
// stale socket file, and a permission problem all read as "no instance
// is running" and route to the spawn path. Every failure after a
// connection is established is terminal and surfaced, never rerouted
// to spawn, never retried.
//
// If two launchers race past this check neither sees a listener and
// both spawn. True mutual exclusion lives in the instance's exclusive
// bind on the socket; the launcher cannot enforce it and does not try.
func (c *Coordinator) Run(ctx invocation.Context) (Outcome, error) {
	socket := ctx.SocketPath()

	conn, err := c.dial(socket)
	if err != nil {
		c.log.Debug().Err(err).Str("socket", socket).Msg("connect failed, spawning instance")
		return OutcomeSpawned, c.spawnInstance(ctx)
	}
	defer conn.Close()

	c.log.Debug().Str("socket", socket).Msg("instance is running, forwarding arguments")
	client := handshake.New(conn,
		handshake.WithTimeout(c.cfg.HandshakeTimeout),
		handshake.WithLogger(c.log),
	)
	if err := client.Run(ctx.Args()); err != nil {
		return OutcomeForwarded, err
	}
	return OutcomeForwarded, nil
}

func (c *Coordinator) dial(socket string) (net.Conn, error) {
	if c.cfg.HandshakeTimeout > 0 {
		return net.DialTimeout("unix", socket, c.cfg.HandshakeTimeout)
	}
	return net.Dial("unix", socket)
}

func (c *Coordinator) spawnInstance(ctx invocation.Context) error {
	instance := ctx.InstancePath()
	args := ctx.Args()

	c.log.Debug().Str("instance", instance).Strs("args", args).Msg("spawning")
	if err := spawn.Start(instance, args); err != nil {
		return err
	}

	if c.cfg.WaitReady {
		c.waitReady(ctx.SocketPath())
	}
	return nil
}

// waitReady watches for the spawned instance's socket. Failure is only
// worth a warning: the spawn already succeeded, and by contract that
// is where the launcher's responsibility ends.
func (c *Coordinator) waitReady(socket string) {
	start := time.Now()
	if err := readiness.WaitForSocket(socket, c.cfg.WaitReadyTimeout, c.log); err != nil {
		c.log.Warn().Err(err).Msg("spawned instance did not bind its socket")
		return
	}
	c.log.Debug().Dur("elapsed", time.Since(start)).Msg("spawned instance is ready")
}
