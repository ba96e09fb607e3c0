package middleware

import (
	"context"
	"testing"

	"github.com/mcpdev/hello-mcp/protocol"
)

func TestRateLimit(t *testing.T) {
	okHandler := func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
		return protocol.OK(nil), nil
	}

	t.Run("allows invocations within the limit", func(t *testing.T) {
		handler := RateLimit(100, 10)(okHandler)

		resp, err := handler(context.Background(), &protocol.Request{Tool: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Success {
			t.Errorf("Success = false, want true")
		}
	})

	t.Run("limited invocation receives failure envelope", func(t *testing.T) {
		handler := RateLimit(1, 1)(okHandler)

		// Exhaust the bucket, then expect a failure envelope.
		_, _ = handler(context.Background(), &protocol.Request{Tool: "hello"})

		var limited *protocol.Response
		for i := 0; i < 5; i++ {
			resp, err := handler(context.Background(), &protocol.Request{Tool: "hello"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !resp.Success {
				limited = resp
				break
			}
		}

		if limited == nil {
			t.Fatal("expected at least one rate-limited invocation")
		}
		if limited.Err != "rate limit exceeded" {
			t.Errorf("Err = %q, want %q", limited.Err, "rate limit exceeded")
		}
	})

	t.Run("per-tool keys are independent", func(t *testing.T) {
		handler := RateLimitByTool(1, 1)(okHandler)

		// Exhaust one tool's bucket.
		_, _ = handler(context.Background(), &protocol.Request{Tool: "hello"})

		resp, err := handler(context.Background(), &protocol.Request{Tool: "get_env_info"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Success {
			t.Error("different tool should not share the bucket")
		}
	})
}
