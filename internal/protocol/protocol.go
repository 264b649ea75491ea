// Package protocol implements the wire codec for the launcher↔instance
// handshake. Every message is one line: payload bytes followed by a
// single LF, no CR. The three control messages are fixed byte literals
// compared by identity; only the args message carries structure.
package protocol

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/inkwell-app/inkwell-launch/internal/domain"
)

// Control message literals. Client and instance must produce these
// byte-for-byte; anything else on the wire is a protocol violation,
// not a variant spelling.
const (
	HelloLiteral = `{"msg":"HELLO"}`
	ReadyLiteral = `{"msg":"READY"}`
	OKLiteral    = `{"msg":"OK"}`
)

// MaxLineBytes bounds a single line's payload, terminator excluded.
// Lines past the bound are rejected whole, never truncated.
const MaxLineBytes = 65536

// argsPayload is the one structured wire shape. Args is a pointer so
// decoding can tell an absent field from an empty array: absent means
// the line is not an args message at all.
type argsPayload struct {
	Args *[]string `json:"args"`
}

// EncodeArgs renders an argument vector as an args line payload,
// terminator excluded. A nil vector encodes as an empty array, never
// as an omitted field.
func EncodeArgs(args []string) ([]byte, error) {
	if args == nil {
		args = []string{}
	}
	b, err := json.Marshal(argsPayload{Args: &args})
	if err != nil {
		return nil, domain.Wrap(domain.KindMalformedPayload, err)
	}
	if len(b) > MaxLineBytes {
		return nil, domain.New(domain.KindMessageTooLarge, "args payload is %d bytes, limit %d", len(b), MaxLineBytes)
	}
	return b, nil
}

// DecodeArgs parses an args line payload back into the original
// argument vector. Order, length, and exact byte content round-trip.
// Any payload that is not a JSON object carrying an "args" array of
// strings fails with MalformedPayload.
func DecodeArgs(line []byte) ([]string, error) {
	var p argsPayload
	if err := json.Unmarshal(line, &p); err != nil {
		return nil, domain.Wrap(domain.KindMalformedPayload, err)
	}
	if p.Args == nil {
		return nil, domain.New(domain.KindMalformedPayload, "payload has no args field")
	}
	return *p.Args, nil
}

// WriteLine frames a payload onto the wire: payload bytes plus one LF.
func WriteLine(w io.Writer, payload []byte) error {
	if len(payload) > MaxLineBytes {
		return domain.New(domain.KindMessageTooLarge, "payload is %d bytes, limit %d", len(payload), MaxLineBytes)
	}
	buf := make([]byte, 0, len(payload)+1)
	buf = append(buf, payload...)
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return domain.Wrap(domain.KindChannelIO, err)
	}
	return nil
}

// ReadLine reads one line from the wire, returning the payload up to
// and excluding the LF terminator. Exceeding MaxLineBytes before the
// terminator fails with MessageTooLarge; the connection is then
// unusable for further framing and the caller must abandon it.
func ReadLine(r *bufio.Reader) ([]byte, error) {
	buf := make([]byte, 0, 64)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == '\n' {
			return buf, nil
		}
		buf = append(buf, b)
		if len(buf) > MaxLineBytes {
			return nil, domain.New(domain.KindMessageTooLarge, "line exceeds %d bytes", MaxLineBytes)
		}
	}
}
