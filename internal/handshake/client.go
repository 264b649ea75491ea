// Package handshake drives the client side of the four-message
// exchange that hands an argument vector to a running instance:
//
//	client → HELLO → instance
//	client ← READY ← instance
//	client → ARGS  → instance
//	client ← OK    ← instance
//
// The exchange is single-shot. Any mismatch or I/O failure after the
// connection is open is terminal; the client never re-sends HELLO and
// never attempts a second exchange on the same connection.
package handshake

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-app/inkwell-launch/internal/domain"
	"github.com/inkwell-app/inkwell-launch/internal/protocol"
)

// State identifies a position in the client state machine. Done and
// Failed are terminal.
type State int

const (
	StateStart State = iota
	StateHelloSent
	StateAwaitingReady
	StateArgsSent
	StateAwaitingOK
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateHelloSent:
		return "hello-sent"
	case StateAwaitingReady:
		return "awaiting-ready"
	case StateArgsSent:
		return "args-sent"
	case StateAwaitingOK:
		return "awaiting-ok"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// deadlineConn is the subset of net.Conn the client uses for read
// deadlines. Plain io.ReadWriter doubles without deadline support
// simply run unbounded.
type deadlineConn interface {
	SetReadDeadline(t time.Time) error
}

// Client runs one exchange over an already-open connection.
type Client struct {
	conn    io.ReadWriter
	reader  *bufio.Reader
	timeout time.Duration
	log     zerolog.Logger
	state   State
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each blocking read. Zero leaves reads unbounded,
// which reproduces the original hang-forever behavior and should only
// be chosen deliberately.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger attaches a logger for state-transition diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New wraps an open connection. The Client owns read buffering but not
// the connection's lifetime; closing is the caller's job.
func New(conn io.ReadWriter, opts ...Option) *Client {
	c := &Client{
		conn:   conn,
		reader: bufio.NewReader(conn),
		log:    zerolog.Nop(),
		state:  StateStart,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the machine's current position.
func (c *Client) State() State { return c.state }

// Run performs the exchange, carrying the given argument vector. A nil
// return means the instance accepted the arguments; what it does with
// them is its own business. On error the returned kind is one of
// UnknownReady, UnknownOk, MalformedPayload, MessageTooLarge,
// ChannelIo, or Timeout.
func (c *Client) Run(args []string) error {
	if err := c.writeHello(); err != nil {
		return c.fail(err)
	}
	if err := c.awaitLiteral(protocol.ReadyLiteral, domain.KindUnknownReady, StateAwaitingReady); err != nil {
		return c.fail(err)
	}
	if err := c.writeArgs(args); err != nil {
		return c.fail(err)
	}
	if err := c.awaitLiteral(protocol.OKLiteral, domain.KindUnknownOk, StateAwaitingOK); err != nil {
		return c.fail(err)
	}
	c.transition(StateDone)
	return nil
}

func (c *Client) writeHello() error {
	c.transition(StateHelloSent)
	return protocol.WriteLine(c.conn, []byte(protocol.HelloLiteral))
}

func (c *Client) writeArgs(args []string) error {
	payload, err := protocol.EncodeArgs(args)
	if err != nil {
		return err
	}
	c.transition(StateArgsSent)
	return protocol.WriteLine(c.conn, payload)
}

// awaitLiteral reads one line and compares it byte-for-byte against
// the expected literal. Any divergence (wrong bytes, short read, EOF,
// oversize line) maps to mismatchKind. A deadline expiry is the one
// exception: it gets its own kind so a hung peer is distinguishable
// from a misbehaving one.
func (c *Client) awaitLiteral(want string, mismatchKind domain.Kind, reading State) error {
	c.transition(reading)
	c.armDeadline()

	line, err := protocol.ReadLine(c.reader)
	if err != nil {
		if isTimeout(err) {
			return domain.Wrap(domain.KindTimeout, err)
		}
		return domain.Wrap(mismatchKind, err)
	}
	if !bytes.Equal(line, []byte(want)) {
		c.log.Debug().Str("expected", want).Str("received", string(line)).Msg("handshake reply mismatch")
		return domain.New(mismatchKind, "peer replied %q", line)
	}
	return nil
}

func (c *Client) armDeadline() {
	if c.timeout <= 0 {
		return
	}
	if dc, ok := c.conn.(deadlineConn); ok {
		if err := dc.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			c.log.Debug().Err(err).Msg("set read deadline failed")
		}
	}
}

func (c *Client) fail(err error) error {
	c.transition(StateFailed)
	return err
}

func (c *Client) transition(next State) {
	c.log.Debug().Stringer("from", c.state).Stringer("to", next).Msg("handshake transition")
	c.state = next
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
