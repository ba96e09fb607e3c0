package host

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mcpdev/hello-mcp/protocol"
)

// Stdio serves the invocation contract over stdin/stdout as
// newline-delimited JSON: one request per line in, one envelope per
// line out.
type Stdio struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	mu sync.Mutex
}

// StdioOption configures a Stdio host.
type StdioOption func(*Stdio)

// WithStdin sets a custom stdin reader.
func WithStdin(r io.Reader) StdioOption {
	return func(s *Stdio) {
		s.in = r
	}
}

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) StdioOption {
	return func(s *Stdio) {
		s.out = w
	}
}

// WithStderr sets a custom stderr writer.
func WithStderr(w io.Writer) StdioOption {
	return func(s *Stdio) {
		s.errOut = w
	}
}

// NewStdio creates a new stdio host.
func NewStdio(opts ...StdioOption) *Stdio {
	s := &Stdio{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Addr returns the host address.
func (s *Stdio) Addr() string {
	return "stdio"
}

// Serve starts processing requests from stdin. It returns nil on EOF.
func (s *Stdio) Serve(ctx context.Context, handler Handler) error {
	scanner := bufio.NewScanner(s.in)

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			scanErr <- err
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-scanErr:
			return err
		case line, ok := <-lines:
			if !ok {
				return nil // EOF
			}
			s.handleLine(ctx, handler, line)
		}
	}
}

func (s *Stdio) handleLine(ctx context.Context, handler Handler, line string) {
	var req protocol.Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		s.writeResponse(protocol.Fail("malformed request: " + err.Error()))
		return
	}

	resp, err := handler.HandleRequest(ctx, &req)
	s.writeResponse(envelopeFor(resp, err))
}

func (s *Stdio) writeResponse(resp *protocol.Response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintf(s.errOut, "failed to marshal response: %v\n", err)
		return
	}

	_, _ = s.out.Write(data)
	_, _ = s.out.Write([]byte("\n"))
}
