package protocol

import (
	"bufio"
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/inkwell-app/inkwell-launch/internal/domain"
)

func TestLiterals(t *testing.T) {
	// The literals are part of the external contract; a change here is
	// a protocol break, not a refactor.
	if HelloLiteral != `{"msg":"HELLO"}` {
		t.Fatalf("hello literal = %q", HelloLiteral)
	}
	if ReadyLiteral != `{"msg":"READY"}` {
		t.Fatalf("ready literal = %q", ReadyLiteral)
	}
	if OKLiteral != `{"msg":"OK"}` {
		t.Fatalf("ok literal = %q", OKLiteral)
	}
}

func TestArgsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "nil vector", args: nil},
		{name: "empty vector", args: []string{}},
		{name: "single", args: []string{"foo"}},
		{name: "three plain", args: []string{"foo", "bar", "baz"}},
		{name: "empty string element", args: []string{"", "x", ""}},
		{name: "quotes", args: []string{`say "hello"`, `'single'`}},
		{name: "backslashes", args: []string{`C:\Users\me`, `\\share\dir`}},
		{name: "whitespace and newlines", args: []string{"a b", "line1\nline2", "\ttab"}},
		{name: "control bytes", args: []string{"bell\x07", "nul-adjacent\x01"}},
		{name: "unicode", args: []string{"héllo", "寿司", "🙂"}},
		{name: "order significant", args: []string{"z", "a", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := EncodeArgs(tt.args)
			if err != nil {
				t.Fatalf("EncodeArgs: %v", err)
			}
			got, err := DecodeArgs(line)
			if err != nil {
				t.Fatalf("DecodeArgs: %v", err)
			}
			want := tt.args
			if want == nil {
				want = []string{}
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip = %#v, want %#v", got, want)
			}
		})
	}
}

func TestEncodeArgsEmptyIsArray(t *testing.T) {
	line, err := EncodeArgs(nil)
	if err != nil {
		t.Fatalf("EncodeArgs: %v", err)
	}
	if string(line) != `{"args":[]}` {
		t.Fatalf("empty vector encodes to %q, want %q", line, `{"args":[]}`)
	}
}

func TestDecodeArgsRejects(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "hello literal", line: HelloLiteral},
		{name: "ready literal", line: ReadyLiteral},
		{name: "ok literal", line: OKLiteral},
		{name: "bare array", line: `["foo"]`},
		{name: "args not array", line: `{"args":"foo"}`},
		{name: "args wrong element type", line: `{"args":[1,2]}`},
		{name: "empty object", line: `{}`},
		{name: "empty line", line: ``},
		{name: "garbage", line: `not json at all`},
		{name: "truncated json", line: `{"args":["foo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeArgs([]byte(tt.line))
			if err == nil {
				t.Fatalf("DecodeArgs(%q) succeeded, want MalformedPayload", tt.line)
			}
			if !errors.Is(err, domain.ErrMalformedPayload) {
				t.Fatalf("DecodeArgs(%q) error = %v, want MalformedPayload", tt.line, err)
			}
		})
	}
}

func TestWriteLineFraming(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLine(&buf, []byte(HelloLiteral)); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	want := HelloLiteral + "\n"
	if buf.String() != want {
		t.Fatalf("wire bytes = %q, want %q", buf.String(), want)
	}
}

func TestWriteLineTooLarge(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLine(&buf, bytes.Repeat([]byte("x"), MaxLineBytes+1))
	if !errors.Is(err, domain.ErrMessageTooLarge) {
		t.Fatalf("error = %v, want MessageTooLarge", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("oversize write emitted %d bytes, want none", buf.Len())
	}
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("{\"msg\":\"READY\"}\n{\"msg\":\"OK\"}\n"))

	first, err := ReadLine(r)
	if err != nil {
		t.Fatalf("first ReadLine: %v", err)
	}
	if string(first) != ReadyLiteral {
		t.Fatalf("first line = %q, want %q", first, ReadyLiteral)
	}

	second, err := ReadLine(r)
	if err != nil {
		t.Fatalf("second ReadLine: %v", err)
	}
	if string(second) != OKLiteral {
		t.Fatalf("second line = %q, want %q", second, OKLiteral)
	}
}

func TestReadLineEOFWithoutTerminator(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("partial"))
	if _, err := ReadLine(r); err == nil {
		t.Fatalf("unterminated line succeeded, want error")
	}
}

func TestReadLineTooLarge(t *testing.T) {
	long := strings.Repeat("y", MaxLineBytes+10) + "\n"
	_, err := ReadLine(bufio.NewReader(strings.NewReader(long)))
	if !errors.Is(err, domain.ErrMessageTooLarge) {
		t.Fatalf("error = %v, want MessageTooLarge", err)
	}
}

func TestReadLineAtExactBound(t *testing.T) {
	payload := strings.Repeat("z", MaxLineBytes)
	line, err := ReadLine(bufio.NewReader(strings.NewReader(payload + "\n")))
	if err != nil {
		t.Fatalf("ReadLine at bound: %v", err)
	}
	if len(line) != MaxLineBytes {
		t.Fatalf("line length = %d, want %d", len(line), MaxLineBytes)
	}
}
